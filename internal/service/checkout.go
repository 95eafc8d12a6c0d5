package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/events"
	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/payment"
	"github.com/shopwave/storefront-api/internal/pricing"
	"github.com/shopwave/storefront-api/internal/repository"
)

type CheckoutStep string

const (
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepReview   CheckoutStep = "review"
)

const (
	PaymentMethodCard   = "credit_card"
	PaymentMethodUPI    = "upi"
	PaymentMethodPayPal = "paypal"
)

const (
	UpiStatusPending = "pending"
	UpiStatusSuccess = "success"
)

var (
	ErrIncompleteAddress = errors.New("all required shipping fields must be filled")
	ErrInvalidPayment    = errors.New("payment details are invalid")
	ErrPaymentPending    = errors.New("payment confirmation still pending")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrWrongStep         = errors.New("operation not allowed in current step")
)

// checkoutState is one wizard instance. The flow is strictly linear:
// shipping -> payment -> review, with backward moves always allowed and
// never discarding data.
type checkoutState struct {
	step      CheckoutStep
	address   model.Address
	payment   dto.PaymentRequest
	upiStatus string
}

// CheckoutService drives the three-step checkout wizard, one instance per
// session owner, and materializes an order on completion.
type CheckoutService struct {
	mu        sync.Mutex
	states    map[string]*checkoutState
	cartSvc   *CartService
	orderRepo repository.OrderRepository
	pricer    *pricing.Calculator
	gateway   payment.Gateway
	publisher events.Publisher
	log       *slog.Logger
}

func NewCheckoutService(
	cartSvc *CartService,
	orderRepo repository.OrderRepository,
	pricer *pricing.Calculator,
	gateway payment.Gateway,
	publisher events.Publisher,
	log *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		states:    make(map[string]*checkoutState),
		cartSvc:   cartSvc,
		orderRepo: orderRepo,
		pricer:    pricer,
		gateway:   gateway,
		publisher: publisher,
		log:       log,
	}
}

// State returns the wizard snapshot for owner, starting a fresh flow at the
// shipping step if none exists.
func (s *CheckoutService) State(owner string) (CheckoutStep, model.Address, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(owner)
	return st.step, st.address, st.payment.Method, st.upiStatus
}

// state must be called with s.mu held.
func (s *CheckoutService) state(owner string) *checkoutState {
	st, ok := s.states[owner]
	if !ok {
		st = &checkoutState{step: StepShipping}
		s.states[owner] = st
	}
	return st
}

// SubmitShipping validates the address and advances to the payment step. On
// rejection the wizard does not move.
func (s *CheckoutService) SubmitShipping(_ context.Context, owner string, req dto.ShippingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(owner)
	if st.step != StepShipping {
		return ErrWrongStep
	}
	if req.FullName == "" || req.Line1 == "" || req.City == "" || req.State == "" ||
		req.PostalCode == "" || req.Country == "" || req.Phone == "" {
		return ErrIncompleteAddress
	}

	st.address = model.Address{
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	}
	st.step = StepPayment
	return nil
}

// SubmitPayment validates the selected method and advances to review. A UPI
// selection also kicks off the asynchronous confirmation; the pending status
// does not block reaching review, only placing the order.
func (s *CheckoutService) SubmitPayment(_ context.Context, owner string, req dto.PaymentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(owner)
	if st.step != StepPayment {
		return ErrWrongStep
	}
	if !paymentValid(req) {
		return ErrInvalidPayment
	}

	st.payment = req
	st.step = StepReview

	if req.Method == PaymentMethodUPI {
		st.upiStatus = UpiStatusPending
		go s.confirmUpi(st, req.UpiID)
	} else {
		// A leftover confirmation from a previously selected UPI method
		// must not shadow the new choice.
		st.upiStatus = ""
	}
	return nil
}

func paymentValid(req dto.PaymentRequest) bool {
	switch req.Method {
	case PaymentMethodCard:
		return len(req.CardNumber) >= 16 && req.CardHolder != "" &&
			req.ExpiryDate != "" && len(req.CVV) >= 3
	case PaymentMethodUPI:
		return containsSeparator(req.UpiID)
	default:
		return true
	}
}

func containsSeparator(upiID string) bool {
	for _, r := range upiID {
		if r == '@' {
			return true
		}
	}
	return false
}

// confirmUpi runs detached from the originating request: once started the
// confirmation cannot be interrupted by the caller.
func (s *CheckoutService) confirmUpi(st *checkoutState, upiID string) {
	if err := s.gateway.Confirm(context.Background(), upiID); err != nil {
		s.log.Error("upi confirmation failed", "upi_id", upiID, "error", err)
		return
	}
	s.mu.Lock()
	st.upiStatus = UpiStatusSuccess
	s.mu.Unlock()
	s.log.Info("upi payment request confirmed", "upi_id", upiID)
}

// Back moves one step backward. It discards nothing and never re-validates;
// at the shipping step it is a no-op.
func (s *CheckoutService) Back(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(owner)
	switch st.step {
	case StepPayment:
		st.step = StepShipping
	case StepReview:
		st.step = StepPayment
	}
}

// PlaceOrder completes the wizard: it freezes the cart's line items at their
// quoted prices, creates the order with processing status at the head of the
// order collection, clears the cart, and resets the flow.
func (s *CheckoutService) PlaceOrder(ctx context.Context, owner string, userID uuid.UUID) (*model.Order, error) {
	s.mu.Lock()
	st := s.state(owner)
	if st.step != StepReview {
		s.mu.Unlock()
		return nil, ErrWrongStep
	}
	if st.payment.Method == PaymentMethodUPI && st.upiStatus == UpiStatusPending {
		s.mu.Unlock()
		return nil, ErrPaymentPending
	}
	address := st.address
	method := paymentMethodLabel(st.payment.Method)
	s.mu.Unlock()

	cart, err := s.cartSvc.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	quote := s.pricer.Quote(cart.Subtotal)
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, ci := range cart.Items {
		items = append(items, model.OrderItem{
			ID:        uuid.New(),
			ProductID: ci.ProductID,
			Product:   ci.Product,
			Quantity:  ci.Quantity,
			Price:     ci.Product.Price,
		})
	}

	order := &model.Order{
		UserID:          userID,
		Items:           items,
		Total:           quote.Total,
		Status:          model.OrderStatusProcessing,
		ShippingAddress: address,
		PaymentMethod:   method,
	}
	if err := s.orderRepo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if s.publisher != nil {
		msg := model.OrderMessage{OrderID: order.ID, UserID: userID}
		if err := s.publisher.OrderPlaced(ctx, msg); err != nil {
			s.log.Error("publish order placed", "order_id", order.ID, "error", err)
		}
	}

	if _, err := s.cartSvc.Clear(ctx, owner); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	s.mu.Lock()
	delete(s.states, owner)
	s.mu.Unlock()

	return order, nil
}

func paymentMethodLabel(method string) string {
	switch method {
	case PaymentMethodCard:
		return "Credit Card"
	case PaymentMethodUPI:
		return "UPI"
	default:
		return "PayPal"
	}
}
