package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sciencekitconnect/storefront/internal/cart"
	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// Summary is the order math shown before payment. All amounts are decimal
// strings with two fraction digits.
type Summary struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// Order is the contact and shipping information a customer submits. Card
// fields are accepted for the simulated flow and discarded; nothing is charged.
type Order struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	ZipCode    string `json:"zipCode" validate:"required"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	CardName   string `json:"cardName"`
}

// Confirmation is returned after the simulated payment succeeds.
type Confirmation struct {
	OrderID  string    `json:"orderId"`
	Summary  Summary   `json:"summary"`
	PlacedAt time.Time `json:"placedAt"`
}

// Processor runs the simulated checkout flow with injected rates: free
// shipping at or above a threshold, a flat rate below it, and a tax rate
// applied to the subtotal.
type Processor struct {
	FreeShippingMin decimal.Decimal
	ShippingFlat    decimal.Decimal
	TaxRate         decimal.Decimal
	Delay           time.Duration

	validate *validator.Validate
}

// NewProcessor builds a processor from string rates so the config layer stays
// free of decimal types.
func NewProcessor(freeShippingMin, shippingFlat, taxRate string, delay time.Duration) (*Processor, error) {
	min, err := decimal.NewFromString(freeShippingMin)
	if err != nil {
		return nil, fmt.Errorf("invalid free shipping threshold %q: %w", freeShippingMin, err)
	}
	flat, err := decimal.NewFromString(shippingFlat)
	if err != nil {
		return nil, fmt.Errorf("invalid shipping rate %q: %w", shippingFlat, err)
	}
	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", taxRate, err)
	}
	return &Processor{
		FreeShippingMin: min,
		ShippingFlat:    flat,
		TaxRate:         rate,
		Delay:           delay,
		validate:        validator.New(),
	}, nil
}

// Summarize computes the order summary for the given cart state. It is a pure
// function of the cart total and the processor's rates.
func (p *Processor) Summarize(c models.Cart) Summary {
	subtotal, err := decimal.NewFromString(c.Total)
	if err != nil {
		subtotal = decimal.Zero
	}

	shipping := p.ShippingFlat
	if subtotal.GreaterThanOrEqual(p.FreeShippingMin) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate).Round(2)

	return Summary{
		Subtotal: subtotal.StringFixed(2),
		Shipping: shipping.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    subtotal.Add(shipping).Add(tax).StringFixed(2),
	}
}

// Place validates the order, simulates payment by waiting the configured
// delay, then clears the cart. The context can cancel the wait.
func (p *Processor) Place(ctx context.Context, session *cart.Session, order Order) (Confirmation, error) {
	if len(session.Cart().Items) == 0 {
		return Confirmation{}, ErrEmptyCart
	}
	if err := p.validate.Struct(order); err != nil {
		return Confirmation{}, fmt.Errorf("invalid order details: %w", err)
	}

	summary := p.Summarize(session.Cart())

	// Simulated payment processing, nothing real happens here.
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return Confirmation{}, ctx.Err()
		}
	}

	if _, err := session.Clear(); err != nil {
		return Confirmation{}, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	return Confirmation{
		OrderID:  uuid.NewString(),
		Summary:  summary,
		PlacedAt: time.Now().UTC(),
	}, nil
}
