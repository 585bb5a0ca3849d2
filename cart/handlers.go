package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"liana/models"
	"liana/orders"
	"liana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes the cart store over HTTP. The store reference is
// injected from main.
type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// cartView is the read API shape: items plus the derived totals.
type cartView struct {
	Items      []models.CartItem `json:"items"`
	IsCartOpen bool              `json:"isCartOpen"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int               `json:"totalPrice"`
}

func view(c models.Cart) cartView {
	return cartView{
		Items:      c.Items,
		IsCartOpen: c.IsCartOpen,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// GetCart returns the session's cart with derived totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	utils.RespondWithJSON(w, http.StatusOK, view(h.Store.Get(sessionID)))
}

// AddItem merges an item into the cart (quantity always starts at 1;
// repeats increment).
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if item.ID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing item id")
		return
	}
	if item.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	sessionID := utils.GetSessionIDFromRequest(r)
	h.Store.AddItem(sessionID, item)
	utils.RespondWithJSON(w, http.StatusCreated, view(h.Store.Get(sessionID)))
}

// UpdateQuantity sets an absolute quantity; zero or below removes the item.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID := utils.GetSessionIDFromRequest(r)
	h.Store.UpdateQuantity(sessionID, ps.ByName("id"), payload.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, view(h.Store.Get(sessionID)))
}

// RemoveItem deletes a line item; removing an absent id still returns 200.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	h.Store.RemoveItem(sessionID, ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, view(h.Store.Get(sessionID)))
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	h.Store.Clear(sessionID)
	utils.RespondWithJSON(w, http.StatusOK, view(h.Store.Get(sessionID)))
}

// WhatsAppLink builds the drawer quick-checkout message and deep link
// for the current cart. The cart is left as-is; only the full checkout
// flow clears it.
func (h *Handler) WhatsAppLink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GetSessionIDFromRequest(r)
	c := h.Store.Get(sessionID)
	if len(c.Items) == 0 {
		utils.RespondWithError(w, http.StatusConflict, "Your cart is empty")
		return
	}

	message := orders.QuickCartMessage(c.Items, c.TotalPrice())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":     message,
		"whatsappUrl": orders.WhatsAppURL(message),
	})
}

// SetOpen toggles the cart drawer flag.
func (h *Handler) SetOpen(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		IsCartOpen bool `json:"isCartOpen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID := utils.GetSessionIDFromRequest(r)
	h.Store.SetOpen(sessionID, payload.IsCartOpen)
	utils.RespondWithJSON(w, http.StatusOK, view(h.Store.Get(sessionID)))
}
