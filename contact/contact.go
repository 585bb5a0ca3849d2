package contact

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"liana/utils"

	"github.com/julienschmidt/httprouter"
)

// Message is a contact-form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// SubmitMessage accepts a contact-form submission. Intake is
// fire-and-forget: the message is logged for the shop to pick up and the
// caller gets an acknowledgement with no delivery guarantee.
func SubmitMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and message are required")
		return
	}

	log.Printf("contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Message)
	utils.RespondWithJSON(w, http.StatusAccepted, utils.M{
		"status": "received",
		"reply":  "Thank you for your message! We will get back to you soon.",
	})
}
