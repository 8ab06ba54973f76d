package entity

// ItemCustomization is the size/addon/note selection made for one add-to-cart.
// Names reference the menu item's option names; unknown names price as zero.
type ItemCustomization struct {
	Size   string   `json:"size,omitempty"`
	Addons []string `json:"addons,omitempty"`
	Note   string   `json:"note,omitempty"`
}

// CartItem is one addition-to-cart event. Lines are never merged: adding the
// same menu item twice, even with the same customization, makes two lines.
// ID is a synthetic line id assigned by the cart, stable across mutations.
type CartItem struct {
	ID            int64              `json:"id"`
	MenuItem      MenuItem           `json:"menuItem"`
	Restaurant    Restaurant         `json:"restaurant"`
	Qty           int                `json:"qty"`
	Customization *ItemCustomization `json:"customization,omitempty"`
}

type CartSummary struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}
