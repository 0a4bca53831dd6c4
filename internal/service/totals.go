package service

import (
	"sort"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/shopspring/decimal"
)

// TotalsByItem sums ordered quantities per catalog item id across orders.
func TotalsByItem(orders []Order) map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal)
	for _, o := range orders {
		for _, l := range o.Items {
			totals[l.Item.ID] = totals[l.Item.ID].Add(l.Quantity)
		}
	}
	return totals
}

// TotalRow is one line of the purchasing summary.
type TotalRow struct {
	Item          catalog.Item
	Quantity      decimal.Decimal
	EstimatedCost decimal.Decimal
}

// TotalRows returns the per-item totals in catalog order, priced with the
// current catalog. Items nobody ordered are omitted.
func TotalRows(orders []Order, cat *catalog.Catalog) []TotalRow {
	totals := TotalsByItem(orders)

	rows := make([]TotalRow, 0, len(totals))
	for id, qty := range totals {
		item, ok := cat.Get(id)
		if !ok {
			continue
		}
		rows = append(rows, TotalRow{
			Item:          item,
			Quantity:      qty,
			EstimatedCost: qty.Mul(item.UnitPrice),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Item.ID < rows[j].Item.ID })
	return rows
}

// GrandTotal sums the totals of every order.
func GrandTotal(orders []Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total())
	}
	return total
}
