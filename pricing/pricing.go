package pricing

import (
	"strconv"

	"liana/models"
)

// Zones is the delivery coverage table: named Lagos areas with flat fees
// in naira. Read-only at runtime; fees are looked up, never entered.
var Zones = []models.DeliveryZone{
	{Area: "Lekki Phase 1", Fee: 2000},
	{Area: "Lekki Phase 2", Fee: 2500},
	{Area: "Victoria Island", Fee: 2000},
	{Area: "Ikoyi", Fee: 2000},
	{Area: "Ajah", Fee: 3000},
	{Area: "Ikeja", Fee: 2500},
	{Area: "Maryland", Fee: 2500},
	{Area: "Yaba", Fee: 2500},
	{Area: "Surulere", Fee: 2500},
}

// TimeSlots are the fixed delivery windows offered at checkout.
var TimeSlots = []models.TimeSlot{
	{ID: "morning", Label: "Morning (9 AM - 12 PM)", Value: "9:00 AM - 12:00 PM"},
	{ID: "afternoon", Label: "Afternoon (12 PM - 4 PM)", Value: "12:00 PM - 4:00 PM"},
	{ID: "evening", Label: "Evening (4 PM - 7 PM)", Value: "4:00 PM - 7:00 PM"},
}

// DeliveryFee returns the flat fee for a named zone.
func DeliveryFee(area string) (int, bool) {
	for _, z := range Zones {
		if z.Area == area {
			return z.Fee, true
		}
	}
	return 0, false
}

// ValidTimeSlot reports whether value matches one of the fixed windows.
func ValidTimeSlot(value string) bool {
	for _, s := range TimeSlots {
		if s.Value == value {
			return true
		}
	}
	return false
}

// FormatPrice renders whole naira with thousands separators, e.g. ₦276,000.
func FormatPrice(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + "₦" + string(out)
}
