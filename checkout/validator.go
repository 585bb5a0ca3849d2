package checkout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"liana/models"
	"liana/pricing"
)

// NigerianMobile matches local and +234 mobile numbers. The validator
// takes the pattern as a parameter so another locale swaps a regex, not
// code.
var NigerianMobile = regexp.MustCompile(`^(\+234|0)[789][01]\d{8}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator checks a DeliveryForm field by field. A zero FieldErrors map
// means the form may advance; the flow fails closed on any single error.
type Validator struct {
	phone *regexp.Regexp
}

func NewValidator(phone *regexp.Regexp) *Validator {
	if phone == nil {
		phone = NigerianMobile
	}
	return &Validator{phone: phone}
}

// Validate runs every field validator and returns the per-field error
// messages. An empty map means the form is valid.
func (v *Validator) Validate(form models.DeliveryForm) map[string]string {
	errs := make(map[string]string)

	if msg := v.validateRecipientName(form.RecipientName); msg != "" {
		errs["recipientName"] = msg
	}
	if msg := v.validateRecipientPhone(form.RecipientPhone); msg != "" {
		errs["recipientPhone"] = msg
	}
	if msg := v.validateRecipientEmail(form.RecipientEmail); msg != "" {
		errs["recipientEmail"] = msg
	}
	if msg := v.validateDeliveryAddress(form.DeliveryAddress); msg != "" {
		errs["deliveryAddress"] = msg
	}
	if msg := v.validateDeliveryArea(form.DeliveryArea); msg != "" {
		errs["deliveryArea"] = msg
	}
	if msg := v.validateDeliveryDate(form.DeliveryDate); msg != "" {
		errs["deliveryDate"] = msg
	}
	if msg := v.validateTimeSlot(form.TimeSlot); msg != "" {
		errs["timeSlot"] = msg
	}
	if msg := v.validateGiftMessage(form.GiftMessage); msg != "" {
		errs["giftMessage"] = msg
	}
	if msg := v.validateSenderName(form.SenderName); msg != "" {
		errs["senderName"] = msg
	}
	if msg := v.validateSpecialInstructions(form.SpecialInstructions); msg != "" {
		errs["specialInstructions"] = msg
	}

	return errs
}

func (v *Validator) validateRecipientName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return "Name must be at least 2 characters"
	}
	if utf8.RuneCountInString(name) > 100 {
		return "Name too long"
	}
	return ""
}

func (v *Validator) validateRecipientPhone(phone string) string {
	if !v.phone.MatchString(phone) {
		return "Enter a valid Nigerian phone number"
	}
	return ""
}

// Email is optional: empty passes, anything else must look like an email.
func (v *Validator) validateRecipientEmail(email string) string {
	if email == "" {
		return ""
	}
	if !emailPattern.MatchString(email) {
		return "Enter a valid email"
	}
	return ""
}

func (v *Validator) validateDeliveryAddress(address string) string {
	address = strings.TrimSpace(address)
	if utf8.RuneCountInString(address) < 10 {
		return "Please provide a complete address"
	}
	if utf8.RuneCountInString(address) > 300 {
		return "Address too long"
	}
	return ""
}

func (v *Validator) validateDeliveryArea(area string) string {
	if _, ok := pricing.DeliveryFee(area); !ok {
		return "Please select a delivery area"
	}
	return ""
}

func (v *Validator) validateDeliveryDate(date string) string {
	if date == "" {
		return "Please select a delivery date"
	}
	return ""
}

func (v *Validator) validateTimeSlot(slot string) string {
	if !pricing.ValidTimeSlot(slot) {
		return "Please select a time slot"
	}
	return ""
}

func (v *Validator) validateGiftMessage(message string) string {
	if utf8.RuneCountInString(message) > 500 {
		return "Message too long"
	}
	return ""
}

func (v *Validator) validateSenderName(name string) string {
	if utf8.RuneCountInString(name) > 100 {
		return "Name too long"
	}
	return ""
}

func (v *Validator) validateSpecialInstructions(instructions string) string {
	if utf8.RuneCountInString(instructions) > 500 {
		return "Instructions too long"
	}
	return ""
}
