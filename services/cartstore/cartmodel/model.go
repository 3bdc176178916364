package cartmodel

import "time"

// ProductSnapshot is the price-relevant product data captured when the item
// was added to the cart. It is never re-fetched; reconciliation only checks
// that the referenced product still exists.
type ProductSnapshot struct {
	Name      string
	ImageURL  string
	BasePrice int
}

type FabricSnapshot struct {
	Name  string
	Price int
}

type StyleSnapshot struct {
	UID           string
	Name          string
	PriceModifier int
}

type CartItem struct {
	UID             string
	ProductUID      string
	Product         ProductSnapshot
	FabricUID       string
	Fabric          FabricSnapshot
	StyleOptionUIDs []string
	Styles          []StyleSnapshot
	Quantity        int
}

// Cart is the single persisted slot holding a shopper's cart items.
type Cart struct {
	ShopperUID   string
	Items        []CartItem
	CreatedAt    time.Time
	LastModified *time.Time
}

func (c Cart) Timestamp() string {
	return c.CreatedAt.Format("2006-01-02 15:04:05")
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
