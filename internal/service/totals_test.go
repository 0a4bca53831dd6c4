package service

import (
	"testing"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/google/uuid"
)

func mustOrder(t *testing.T, draft map[int]string) Order {
	t.Helper()
	o, err := BuildOrder(catalog.Default(), basicReq(draft), uuid.New(), testNow)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	return *o
}

func TestTotalsByItem_Empty(t *testing.T) {
	totals := TotalsByItem(nil)
	if totals == nil {
		t.Fatal("expected non-nil map")
	}
	if len(totals) != 0 {
		t.Errorf("expected empty totals, got %v", totals)
	}
}

func TestTotalsByItem_SumsAcrossOrders(t *testing.T) {
	orders := []Order{
		mustOrder(t, map[int]string{1: "2.5"}),
		mustOrder(t, map[int]string{1: "2.5", 8: "2"}),
		mustOrder(t, map[int]string{8: "1", 5: "0.5"}),
	}

	totals := TotalsByItem(orders)

	want := map[int]string{1: "5", 8: "3", 5: "0.5"}
	if len(totals) != len(want) {
		t.Fatalf("keys: got %d, want %d (%v)", len(totals), len(want), totals)
	}
	for id, w := range want {
		if !totals[id].Equal(dec(w)) {
			t.Errorf("item %d: got %s, want %s", id, totals[id], w)
		}
	}
}

func TestTotalsByItem_OrderIndependent(t *testing.T) {
	a := mustOrder(t, map[int]string{1: "1.5", 2: "3"})
	b := mustOrder(t, map[int]string{2: "0.5", 3: "4"})

	forward := TotalsByItem([]Order{a, b})
	reverse := TotalsByItem([]Order{b, a})
	for id, q := range forward {
		if !reverse[id].Equal(q) {
			t.Errorf("item %d: forward %s, reverse %s", id, q, reverse[id])
		}
	}
}

func TestTotalsByItem_Idempotent(t *testing.T) {
	orders := []Order{
		mustOrder(t, map[int]string{1: "3"}),
		mustOrder(t, map[int]string{4: "1"}),
	}

	first := TotalsByItem(orders)
	second := TotalsByItem(orders)
	if len(first) != len(second) {
		t.Fatalf("len: %d vs %d", len(first), len(second))
	}
	for id, q := range first {
		if !second[id].Equal(q) {
			t.Errorf("item %d: %s vs %s", id, q, second[id])
		}
	}
	if len(orders[0].Items) != 1 || !orders[0].Items[0].Quantity.Equal(dec("3")) {
		t.Error("aggregation mutated orders")
	}
}

func TestTotalsByItem_PommesScenario(t *testing.T) {
	totals := TotalsByItem([]Order{mustOrder(t, map[int]string{1: "3"})})
	if len(totals) != 1 || !totals[1].Equal(dec("3")) {
		t.Fatalf("got %v, want {1: 3}", totals)
	}
}

func TestTotalRows(t *testing.T) {
	orders := []Order{
		mustOrder(t, map[int]string{14: "1", 1: "2"}),
		mustOrder(t, map[int]string{1: "1"}),
	}

	rows := TotalRows(orders, catalog.Default())
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0].Item.ID != 1 || rows[1].Item.ID != 14 {
		t.Fatalf("order: got %d, %d", rows[0].Item.ID, rows[1].Item.ID)
	}
	if !rows[0].Quantity.Equal(dec("3")) || !rows[0].EstimatedCost.Equal(dec("7.5")) {
		t.Errorf("pommes: qty %s cost %s", rows[0].Quantity, rows[0].EstimatedCost)
	}
	if !rows[1].EstimatedCost.Equal(dec("6")) {
		t.Errorf("cerises cost: got %s, want 6", rows[1].EstimatedCost)
	}
}

func TestGrandTotal(t *testing.T) {
	orders := []Order{
		mustOrder(t, map[int]string{1: "2"}),   // 5.00
		mustOrder(t, map[int]string{9: "2"}),   // 7.00
		mustOrder(t, map[int]string{2: "0.5"}), // 0.90
	}
	if got := GrandTotal(orders); !got.Equal(dec("12.9")) {
		t.Errorf("grand total: got %s, want 12.9", got)
	}
}
