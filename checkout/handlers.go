package checkout

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"liana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes the checkout flow over HTTP.
type Handler struct {
	Manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{Manager: manager}
}

// stateView is the checkout read API: step, form, errors, affirmations
// and the live pricing snapshot.
type stateView struct {
	Step             int               `json:"step"`
	StepName         string            `json:"stepName"`
	Form             any               `json:"form"`
	FieldErrors      map[string]string `json:"fieldErrors"`
	PaymentConfirmed bool              `json:"paymentConfirmed"`
	TermsAccepted    bool              `json:"termsAccepted"`
	Review           *Review           `json:"review,omitempty"`
}

func (h *Handler) state(sessionID string, s Session) stateView {
	view := stateView{
		Step:             int(s.Step),
		StepName:         s.Step.String(),
		Form:             s.Form,
		FieldErrors:      s.FieldErrors,
		PaymentConfirmed: s.PaymentConfirmed,
		TermsAccepted:    s.TermsAccepted,
	}
	if review, err := h.Manager.GetReview(sessionID); err == nil {
		view.Review = &review
	}
	return view
}

// respondError maps orchestrator errors onto the API contract: validation
// blocks with field errors, preconditions redirect, everything else 400s.
func (h *Handler) respondError(w http.ResponseWriter, sessionID string, s Session, err error) {
	switch {
	case errors.Is(err, ErrEmptyCart):
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"error":    "Your cart is empty",
			"redirect": "/shop",
		})
	case errors.Is(err, ErrNoSession):
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"error":    "No checkout in progress",
			"redirect": "/shop",
		})
	case errors.Is(err, ErrValidation):
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"error":       "Please fill in all required fields",
			"fieldErrors": s.FieldErrors,
		})
	case errors.Is(err, ErrPaymentUnconfirmed):
		utils.RespondWithError(w, http.StatusBadRequest, "Confirm payment and accept the terms to continue")
	case errors.Is(err, ErrTerminalStep), errors.Is(err, ErrNotReadyToConfirm):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	}
}

// Begin starts checkout; the cart must not be empty.
func (h *Handler) Begin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	s, err := h.Manager.Begin(sessionID)
	if err != nil {
		h.respondError(w, sessionID, s, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.state(sessionID, s))
}

// GetState returns the current checkout state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	s, err := h.Manager.Get(sessionID)
	if err != nil {
		h.respondError(w, sessionID, s, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.state(sessionID, s))
}

// SetFields applies field-by-field form updates.
func (h *Handler) SetFields(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID := utils.GetSessionIDFromRequest(r)
	s, err := h.Manager.SetFields(sessionID, fields)
	if err != nil {
		h.respondError(w, sessionID, s, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.state(sessionID, s))
}

// Next advances one step.
func (h *Handler) Next(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	s, err := h.Manager.Next(sessionID)
	if err != nil {
		h.respondError(w, sessionID, s, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.state(sessionID, s))
}

// Prev steps backwards.
func (h *Handler) Prev(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	s, err := h.Manager.Prev(sessionID)
	if err != nil {
		h.respondError(w, sessionID, s, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.state(sessionID, s))
}

// SetPayment records the payment-made and terms-accepted affirmations.
func (h *Handler) SetPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		PaymentConfirmed bool `json:"paymentConfirmed"`
		TermsAccepted    bool `json:"termsAccepted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID := utils.GetSessionIDFromRequest(r)
	s, err := h.Manager.SetPayment(sessionID, payload.PaymentConfirmed, payload.TermsAccepted)
	if err != nil {
		h.respondError(w, sessionID, s, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.state(sessionID, s))
}

// Confirm finalizes the order and hands it off. The cart is cleared as
// soon as the handoff payload exists.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	order, err := h.Manager.Confirm(sessionID)
	if err != nil {
		s, _ := h.Manager.Get(sessionID)
		h.respondError(w, sessionID, s, err)
		return
	}

	log.Printf("order %s handed off (%d items, total %d)", order.OrderID, len(order.Items), order.Total)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"orderId":     order.OrderID,
		"message":     order.Message,
		"whatsappUrl": order.WhatsAppURL,
		"redirect":    "/",
	})
}

// Abandon discards the checkout; the cart is untouched.
func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	h.Manager.Abandon(sessionID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "abandoned"})
}
