package handler

import (
	"html/template"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display formatting follows fr-FR: comma decimal separator, euro suffix,
// day/month/year timestamps.
var frPrinter = message.NewPrinter(language.French)

const orderTimeLayout = "02/01/2006 15:04:05"

func formatQuantity(d decimal.Decimal) string {
	return frPrinter.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}

func formatMoney(d decimal.Decimal) string {
	return frPrinter.Sprintf("%v", number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2))) + " €"
}

func formatTime(t time.Time) string {
	return t.Local().Format(orderTimeLayout)
}

var templateFuncs = template.FuncMap{
	"qty":   formatQuantity,
	"money": formatMoney,
	"when":  formatTime,
}
