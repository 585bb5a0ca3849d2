package pricing

import (
	"net/http"

	"liana/utils"

	"github.com/julienschmidt/httprouter"
)

// GetDeliveryZones returns the coverage table for the checkout area picker.
func GetDeliveryZones(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Zones)
}

// GetTimeSlots returns the fixed delivery windows.
func GetTimeSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, TimeSlots)
}
