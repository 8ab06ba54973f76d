package services

import "storefront/entity"

// Fixed tax rate applied to the cart subtotal.
const TaxRatePercent = 10

// UnitPrice prices one cart line: base price plus the matched size delta plus
// each matched addon delta. Names with no matching option are ignored, and a
// duplicated addon name counts once. All values are cents, so accumulation is
// exact; nothing rounds here.
func UnitPrice(item entity.CartItem) int64 {
	price := item.MenuItem.Price
	c := item.Customization
	if c == nil {
		return price
	}

	if c.Size != "" {
		for _, s := range item.MenuItem.Sizes {
			if s.Name == c.Size {
				price += s.PriceDelta
				break
			}
		}
	}

	seen := make(map[string]bool, len(c.Addons))
	for _, name := range c.Addons {
		if seen[name] {
			continue
		}
		seen[name] = true
		for _, a := range item.MenuItem.Addons {
			if a.Name == name {
				price += a.PriceDelta
				break
			}
		}
	}
	return price
}

// Aggregate derives the cart totals. The delivery fee comes from the first
// line's restaurant (zero for an empty cart); a cart that somehow mixes
// restaurants still charges only the first one's fee. Tax is the single
// rounding point, half-up on the percentage of the subtotal.
func Aggregate(items []entity.CartItem) entity.CartSummary {
	var subtotal int64
	for _, it := range items {
		subtotal += UnitPrice(it) * int64(it.Qty)
	}

	var fee int64
	if len(items) > 0 {
		fee = items[0].Restaurant.DeliveryFee
	}

	tax := (subtotal*TaxRatePercent + 50) / 100

	return entity.CartSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}
