package pricing

import (
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
)

// UnitPrice is computed from the snapshots captured at add-time: base price
// of the product, plus the fabric surcharge, plus all selected style
// modifiers. Modifiers may be negative (discounts); nothing is clamped here,
// presentation decides how to render negative amounts.
func UnitPrice(item cartmodel.CartItem) int {
	price := item.Product.BasePrice + item.Fabric.Price
	for _, style := range item.Styles {
		price += style.PriceModifier
	}

	return price
}

func ItemTotal(item cartmodel.CartItem) int {
	return UnitPrice(item) * item.Quantity
}

func CartTotal(items []cartmodel.CartItem) int {
	total := 0
	for _, item := range items {
		total += ItemTotal(item)
	}

	return total
}
