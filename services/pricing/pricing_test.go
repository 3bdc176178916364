package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
)

var (
	linenShirt = cartmodel.CartItem{
		UID:        "item_1",
		ProductUID: "product_linen_shirt",
		Product:    cartmodel.ProductSnapshot{Name: "Linen shirt", BasePrice: 4500000},
		FabricUID:  "fabric_irish_linen",
		Fabric:     cartmodel.FabricSnapshot{Name: "Irish linen", Price: 500000},
		Quantity:   1,
	}

	winterCoat = cartmodel.CartItem{
		UID:        "item_2",
		ProductUID: "product_winter_coat",
		Product:    cartmodel.ProductSnapshot{Name: "Winter coat", BasePrice: 9000000},
		FabricUID:  "fabric_wool",
		Fabric:     cartmodel.FabricSnapshot{Name: "Merino wool", Price: 1200000},
		StyleOptionUIDs: []string{
			"style_double_breasted", "style_horn_buttons",
		},
		Styles: []cartmodel.StyleSnapshot{
			{UID: "style_double_breasted", Name: "Double breasted", PriceModifier: 300000},
			{UID: "style_horn_buttons", Name: "Horn buttons", PriceModifier: 150000},
		},
		Quantity: 2,
	}
)

func TestUnitPrice(t *testing.T) {
	t.Run("Base plus fabric", func(t *testing.T) {
		assert.Equal(t, 5000000, UnitPrice(linenShirt))
	})

	t.Run("Style modifiers included", func(t *testing.T) {
		assert.Equal(t, 10650000, UnitPrice(winterCoat))
	})

	t.Run("Negative modifiers are discounts, not clamped", func(t *testing.T) {
		item := linenShirt
		item.Styles = []cartmodel.StyleSnapshot{
			{UID: "style_promo", Name: "Promo", PriceModifier: -6000000},
		}
		assert.Equal(t, -1000000, UnitPrice(item))
	})

	t.Run("Duplicate style counts twice", func(t *testing.T) {
		item := linenShirt
		item.Styles = []cartmodel.StyleSnapshot{
			{UID: "style_monogram", PriceModifier: 100000},
			{UID: "style_monogram", PriceModifier: 100000},
		}
		assert.Equal(t, 5200000, UnitPrice(item))
	})
}

func TestItemTotal(t *testing.T) {
	t.Run("Linear in quantity", func(t *testing.T) {
		for qty := 1; qty <= 10; qty++ {
			item := winterCoat
			item.Quantity = qty
			assert.Equal(t, qty*UnitPrice(item), ItemTotal(item))
		}
	})
}

func TestCartTotal(t *testing.T) {
	t.Run("Empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, 0, CartTotal(nil))
		assert.Equal(t, 0, CartTotal([]cartmodel.CartItem{}))
	})

	t.Run("Single item equals its item total", func(t *testing.T) {
		assert.Equal(t, ItemTotal(linenShirt), CartTotal([]cartmodel.CartItem{linenShirt}))
	})

	t.Run("Commutative under reordering", func(t *testing.T) {
		assert.Equal(t,
			CartTotal([]cartmodel.CartItem{linenShirt, winterCoat}),
			CartTotal([]cartmodel.CartItem{winterCoat, linenShirt}))
	})
}
