package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"liana/cart"
	"liana/models"
	"liana/orders"
	"liana/pricing"
)

// Step is the position in the checkout flow.
type Step int

const (
	StepDeliveryDetails Step = iota + 1
	StepReview
	StepPayment
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepDeliveryDetails:
		return "delivery-details"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirm"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNoSession          = errors.New("no checkout in progress")
	ErrValidation         = errors.New("form has errors")
	ErrPaymentUnconfirmed = errors.New("payment and terms must be confirmed")
	ErrTerminalStep       = errors.New("checkout already at the confirm step")
	ErrNotReadyToConfirm  = errors.New("checkout has not reached the confirm step")
	ErrUnknownField       = errors.New("unknown form field")
)

// Session is one in-flight checkout. It exists from Begin until Confirm
// or Abandon; the delivery form dies with it.
type Session struct {
	Step             Step
	Form             models.DeliveryForm
	FieldErrors      map[string]string
	PaymentConfirmed bool
	TermsAccepted    bool
}

// Review is the pricing snapshot shown at the review step and embedded in
// the final message. It is recomputed from the live cart on every read so
// edits made after back-navigation are always reflected.
type Review struct {
	Items       []models.CartItem `json:"items"`
	Subtotal    int               `json:"subtotal"`
	DeliveryFee int               `json:"deliveryFee"`
	GrandTotal  int               `json:"grandTotal"`
}

// Manager drives checkout sessions. It composes the cart store, the
// validator and the pricing tables; all three are injected.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	Cart      *cart.Store
	Validator *Validator
	Orders    *orders.Registry
}

func NewManager(cartStore *cart.Store, validator *Validator, registry *orders.Registry) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		Cart:      cartStore,
		Validator: validator,
		Orders:    registry,
	}
}

// Begin starts (or restarts) a checkout for the session. The cart must be
// non-empty. IsGift defaults to true on a fresh form.
func (m *Manager) Begin(sessionID string) (Session, error) {
	if len(m.Cart.Items(sessionID)) == 0 {
		return Session{}, ErrEmptyCart
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		Step:        StepDeliveryDetails,
		Form:        models.DeliveryForm{IsGift: true},
		FieldErrors: map[string]string{},
	}
	m.sessions[sessionID] = s
	return *s, nil
}

// Get returns a copy of the session state. A checkout whose cart was
// emptied elsewhere is over; reading it aborts the session so the caller
// gets the redirect signal immediately instead of on the next mutation.
func (m *Manager) Get(sessionID string) (Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return Session{}, ErrNoSession
	}
	snap := snapshot(s)
	m.mu.Unlock()

	if len(m.Cart.Items(sessionID)) == 0 {
		m.drop(sessionID)
		return Session{}, ErrEmptyCart
	}
	return snap, nil
}

// SetFields applies field-by-field form updates. Setting a field clears
// its recorded error so the UI stops highlighting it, like the original
// input handler.
func (m *Manager) SetFields(sessionID string, fields map[string]any) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, ErrNoSession
	}

	for name, value := range fields {
		if err := setFormField(&s.Form, name, value); err != nil {
			return snapshot(s), err
		}
		delete(s.FieldErrors, name)
	}
	return snapshot(s), nil
}

// SetPayment records the two explicit affirmations of the payment step.
func (m *Manager) SetPayment(sessionID string, paymentConfirmed, termsAccepted bool) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, ErrNoSession
	}
	s.PaymentConfirmed = paymentConfirmed
	s.TermsAccepted = termsAccepted
	return snapshot(s), nil
}

// Next advances the flow one step. Delivery details must validate; the
// payment step requires both affirmations; an empty cart aborts the whole
// checkout.
func (m *Manager) Next(sessionID string) (Session, error) {
	if len(m.Cart.Items(sessionID)) == 0 {
		m.drop(sessionID)
		return Session{}, ErrEmptyCart
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, ErrNoSession
	}

	switch s.Step {
	case StepDeliveryDetails:
		errs := m.Validator.Validate(s.Form)
		if len(errs) > 0 {
			s.FieldErrors = errs
			return snapshot(s), ErrValidation
		}
		s.FieldErrors = map[string]string{}
		s.Step = StepReview
	case StepReview:
		s.Step = StepPayment
	case StepPayment:
		if !s.PaymentConfirmed || !s.TermsAccepted {
			return snapshot(s), ErrPaymentUnconfirmed
		}
		s.Step = StepConfirm
	case StepConfirm:
		return snapshot(s), ErrTerminalStep
	}

	return snapshot(s), nil
}

// Prev steps backwards. The first step stays put; the confirm step is
// terminal and refuses.
func (m *Manager) Prev(sessionID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, ErrNoSession
	}
	switch s.Step {
	case StepConfirm:
		return snapshot(s), ErrTerminalStep
	case StepReview, StepPayment:
		s.Step--
	}
	return snapshot(s), nil
}

// GetReview computes the pricing snapshot from the live cart and the
// currently selected area. An unknown area contributes a zero fee, as on
// the original review screen before an area is picked.
func (m *Manager) GetReview(sessionID string) (Review, error) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return Review{}, ErrNoSession
	}
	area := s.Form.DeliveryArea
	m.mu.Unlock()

	c := m.Cart.Get(sessionID)
	if len(c.Items) == 0 {
		return Review{}, ErrEmptyCart
	}

	fee, _ := pricing.DeliveryFee(area)
	subtotal := c.TotalPrice()
	return Review{
		Items:       c.Items,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		GrandTotal:  subtotal + fee,
	}, nil
}

// Confirm performs the handoff: it freezes the order, formats the
// WhatsApp message, records the order for receipt retrieval, clears the
// cart and ends the session. The cart is cleared when the handoff is
// invoked, not when delivery is confirmed; the stored order is the
// retry path if the external open fails.
func (m *Manager) Confirm(sessionID string) (models.Order, error) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return models.Order{}, ErrNoSession
	}
	if s.Step != StepConfirm {
		m.mu.Unlock()
		return models.Order{}, ErrNotReadyToConfirm
	}
	// The form can be edited after the details gate, so check it again
	// before freezing the order. A stale form sends the flow back to the
	// details step with the offending fields marked.
	if errs := m.Validator.Validate(s.Form); len(errs) > 0 {
		s.FieldErrors = errs
		s.Step = StepDeliveryDetails
		m.mu.Unlock()
		return models.Order{}, ErrValidation
	}
	form := s.Form
	m.mu.Unlock()

	c := m.Cart.Get(sessionID)
	if len(c.Items) == 0 {
		m.drop(sessionID)
		return models.Order{}, ErrEmptyCart
	}

	fee, _ := pricing.DeliveryFee(form.DeliveryArea)
	subtotal := c.TotalPrice()
	total := subtotal + fee

	now := time.Now()
	orderID := orders.GenerateOrderID()
	message := orders.FormatOrderMessage(c.Items, form, subtotal, fee, total, orderID, now)

	order := models.Order{
		OrderID:     orderID,
		Items:       c.Items,
		Form:        form,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       total,
		Message:     message,
		WhatsAppURL: orders.WhatsAppURL(message),
		CreatedAt:   now,
	}
	m.Orders.Save(order)

	m.Cart.Clear(sessionID)
	m.drop(sessionID)

	return order, nil
}

// Abandon discards the checkout session; the cart is untouched.
func (m *Manager) Abandon(sessionID string) {
	m.drop(sessionID)
}

func (m *Manager) drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func snapshot(s *Session) Session {
	out := *s
	out.FieldErrors = make(map[string]string, len(s.FieldErrors))
	for k, v := range s.FieldErrors {
		out.FieldErrors[k] = v
	}
	return out
}

// setFormField maps a JSON field name onto the form. isGift is the only
// boolean field; everything else is a string.
func setFormField(form *models.DeliveryForm, name string, value any) error {
	if name == "isGift" {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects a boolean", ErrUnknownField, name)
		}
		form.IsGift = b
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects a string", ErrUnknownField, name)
	}

	switch name {
	case "recipientName":
		form.RecipientName = str
	case "recipientPhone":
		form.RecipientPhone = str
	case "recipientEmail":
		form.RecipientEmail = str
	case "deliveryAddress":
		form.DeliveryAddress = str
	case "deliveryArea":
		form.DeliveryArea = str
	case "deliveryDate":
		form.DeliveryDate = str
	case "timeSlot":
		form.TimeSlot = str
	case "giftMessage":
		form.GiftMessage = str
	case "senderName":
		form.SenderName = str
	case "specialInstructions":
		form.SpecialInstructions = str
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}
