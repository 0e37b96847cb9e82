package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartsvc "github.com/threadline-co/threadline-backend/internal/cart"
	sessionsvc "github.com/threadline-co/threadline-backend/internal/session"
	"github.com/threadline-co/threadline-backend/pkg/config"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
)

// ContactInput is the shipping step of the checkout form.
type ContactInput struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

// PaymentInput is the mock payment step. Nothing is charged; the fields
// are only checked for presence.
type PaymentInput struct {
	CardNumber string `json:"card_number" validate:"required"`
	NameOnCard string `json:"name_on_card" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// PlaceOrderInput bundles both steps for the final submit.
type PlaceOrderInput struct {
	Contact ContactInput `json:"contact" validate:"required"`
	Payment PaymentInput `json:"payment" validate:"required"`
}

// PrefillDTO carries the session-derived defaults for the contact form.
type PrefillDTO struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// QuoteDTO is the order summary math over the current cart.
type QuoteDTO struct {
	Items      []cartsvc.Item  `json:"items"`
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

// OrderDTO confirms a placed mock order.
type OrderDTO struct {
	Number     string          `json:"number"`
	Email      string          `json:"email"`
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
	PlacedAt   time.Time       `json:"placed_at"`
}

// Service drives the mock checkout: summary math, session prefill, and
// order placement. No payment is processed anywhere here.
type Service interface {
	Prefill(ctx context.Context, clientID string) (PrefillDTO, error)
	Quote(ctx context.Context, clientID string) (QuoteDTO, error)
	PlaceOrder(ctx context.Context, clientID string, input PlaceOrderInput) (OrderDTO, error)
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Cart    cartsvc.Service
	Session sessionsvc.Service
	Config  config.CheckoutConfig
}

type service struct {
	cart    cartsvc.Service
	session sessionsvc.Service
	cfg     config.CheckoutConfig
}

// NewService builds a checkout service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart service is required")
	}
	if params.Session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session service is required")
	}
	return &service{
		cart:    params.Cart,
		session: params.Session,
		cfg:     params.Config,
	}, nil
}

// Prefill pulls contact defaults from the session. The display name is
// split on the first space into first and last name.
func (s *service) Prefill(ctx context.Context, clientID string) (PrefillDTO, error) {
	sess, err := s.session.Get(ctx, clientID)
	if err != nil {
		return PrefillDTO{}, err
	}
	if !sess.IsLoggedIn || sess.User == nil {
		return PrefillDTO{}, nil
	}

	first, last := splitName(sess.User.Name)
	return PrefillDTO{
		Email:     sess.User.Email,
		FirstName: first,
		LastName:  last,
	}, nil
}

// Quote computes the order summary over the current cart.
func (s *service) Quote(ctx context.Context, clientID string) (QuoteDTO, error) {
	cart, err := s.cart.Get(ctx, clientID)
	if err != nil {
		return QuoteDTO{}, err
	}
	if len(cart.Items) == 0 {
		return QuoteDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	return s.quoteFor(cart), nil
}

// PlaceOrder re-validates the cart, confirms the mock order, and clears
// the cart exactly as a successful real checkout would.
func (s *service) PlaceOrder(ctx context.Context, clientID string, input PlaceOrderInput) (OrderDTO, error) {
	cart, err := s.cart.Get(ctx, clientID)
	if err != nil {
		return OrderDTO{}, err
	}
	if len(cart.Items) == 0 {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	quote := s.quoteFor(cart)

	order := OrderDTO{
		Number:     s.orderNumber(),
		Email:      input.Contact.Email,
		TotalItems: quote.TotalItems,
		Subtotal:   quote.Subtotal,
		Tax:        quote.Tax,
		Shipping:   quote.Shipping,
		Total:      quote.Total,
		PlacedAt:   time.Now().UTC(),
	}

	if _, err := s.cart.Clear(ctx, clientID); err != nil {
		return OrderDTO{}, err
	}
	return order, nil
}

func (s *service) quoteFor(cart cartsvc.CartDTO) QuoteDTO {
	subtotal := cart.TotalPrice
	tax := subtotal.Mul(s.cfg.TaxRate).Round(2)

	shipping := s.cfg.ShippingFlatRate
	if subtotal.GreaterThan(s.cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return QuoteDTO{
		Items:      cart.Items,
		TotalItems: cart.TotalItems,
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		Total:      subtotal.Add(tax).Add(shipping),
	}
}

func (s *service) orderNumber() string {
	prefix := s.cfg.OrderNumberPrefix
	if prefix == "" {
		prefix = "TL"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + suffix
}

func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
