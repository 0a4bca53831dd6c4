package catalog

import (
	"github.com/fruit-order/api/internal/enum"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// defaultItems is the built-in fruit list used when no catalog file is set.
var defaultItems = []Item{
	{ID: 1, Name: "Pommes", Unit: enum.UnitKilogram, UnitPrice: price("2.50"), Glyph: "🍎"},
	{ID: 2, Name: "Bananes", Unit: enum.UnitKilogram, UnitPrice: price("1.80"), Glyph: "🍌"},
	{ID: 3, Name: "Oranges", Unit: enum.UnitKilogram, UnitPrice: price("2.00"), Glyph: "🍊"},
	{ID: 4, Name: "Poires", Unit: enum.UnitKilogram, UnitPrice: price("2.30"), Glyph: "🍐"},
	{ID: 5, Name: "Raisins", Unit: enum.UnitKilogram, UnitPrice: price("4.50"), Glyph: "🍇"},
	{ID: 6, Name: "Fraises", Unit: enum.UnitKilogram, UnitPrice: price("5.00"), Glyph: "🍓"},
	{ID: 7, Name: "Kiwis", Unit: enum.UnitKilogram, UnitPrice: price("3.50"), Glyph: "🥝"},
	{ID: 8, Name: "Mangues", Unit: enum.UnitPiece, UnitPrice: price("2.00"), Glyph: "🥭"},
	{ID: 9, Name: "Ananas", Unit: enum.UnitPiece, UnitPrice: price("3.50"), Glyph: "🍍"},
	{ID: 10, Name: "Pastèques", Unit: enum.UnitPiece, UnitPrice: price("5.00"), Glyph: "🍉"},
	{ID: 11, Name: "Melons", Unit: enum.UnitPiece, UnitPrice: price("4.00"), Glyph: "🍈"},
	{ID: 12, Name: "Citrons", Unit: enum.UnitKilogram, UnitPrice: price("1.50"), Glyph: "🍋"},
	{ID: 13, Name: "Pêches", Unit: enum.UnitKilogram, UnitPrice: price("3.80"), Glyph: "🍑"},
	{ID: 14, Name: "Cerises", Unit: enum.UnitKilogram, UnitPrice: price("6.00"), Glyph: "🍒"},
	{ID: 15, Name: "Noix de Coco", Unit: enum.UnitPiece, UnitPrice: price("3.00"), Glyph: "🥥"},
}

// Default returns the built-in fruit catalog.
func Default() *Catalog {
	c, err := New(defaultItems)
	if err != nil {
		panic("catalog: invalid default items: " + err.Error())
	}
	return c
}
