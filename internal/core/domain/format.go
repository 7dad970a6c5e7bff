package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Цены выводятся с разделителями разрядов, как в en-US локали браузера.
var pricePrinter = message.NewPrinter(language.English)

// PriceLabel форматирует цену: 15000000 -> "Rs. 15,000,000".
func PriceLabel(price float64) string {
	return pricePrinter.Sprintf("Rs. %v", number.Decimal(price, number.MaxFractionDigits(2)))
}

// FormatCount форматирует целое число с разделителями разрядов.
func FormatCount(n int) string {
	return pricePrinter.Sprintf("%v", number.Decimal(n))
}
