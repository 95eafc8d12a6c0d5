// Package pricing applies the storefront's order math. The same rules are
// used by the cart summary and the checkout review so the two never disagree.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/shopwave/storefront-api/internal/config"
)

// Quote breaks an amount down into its charged parts. Tax is rounded to
// cents; shipping is waived above the free-shipping threshold (strictly
// greater than) and for empty carts.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type Calculator struct {
	freeShippingOver decimal.Decimal
	shippingFee      decimal.Decimal
	taxRate          decimal.Decimal
}

func NewCalculator(cfg config.PricingConfig) *Calculator {
	return &Calculator{
		freeShippingOver: cfg.FreeShippingOver,
		shippingFee:      cfg.ShippingFee,
		taxRate:          cfg.TaxRate,
	}
}

func (c *Calculator) Quote(subtotal decimal.Decimal) Quote {
	shipping := c.shippingFee
	if subtotal.GreaterThan(c.freeShippingOver) || subtotal.IsZero() {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(c.taxRate).Round(2)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
