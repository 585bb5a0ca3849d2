package checkout

import (
	"regexp"
	"strings"
	"testing"

	"liana/models"
)

func validForm() models.DeliveryForm {
	return models.DeliveryForm{
		RecipientName:   "Adaeze Obi",
		RecipientPhone:  "08031234567",
		DeliveryAddress: "12 Bourdillon Road, Ikoyi, Lagos",
		DeliveryArea:    "Ikoyi",
		DeliveryDate:    "2026-09-05",
		TimeSlot:        "9:00 AM - 12:00 PM",
		IsGift:          true,
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	v := NewValidator(nil)
	if errs := v.Validate(validForm()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSingleFieldErrors(t *testing.T) {
	v := NewValidator(nil)

	cases := []struct {
		name   string
		mutate func(*models.DeliveryForm)
		field  string
		msg    string
	}{
		{
			name:   "short name",
			mutate: func(f *models.DeliveryForm) { f.RecipientName = "A" },
			field:  "recipientName",
			msg:    "Name must be at least 2 characters",
		},
		{
			name:   "whitespace name",
			mutate: func(f *models.DeliveryForm) { f.RecipientName = "   " },
			field:  "recipientName",
			msg:    "Name must be at least 2 characters",
		},
		{
			name:   "long name",
			mutate: func(f *models.DeliveryForm) { f.RecipientName = strings.Repeat("a", 101) },
			field:  "recipientName",
			msg:    "Name too long",
		},
		{
			name:   "bad phone",
			mutate: func(f *models.DeliveryForm) { f.RecipientPhone = "12345" },
			field:  "recipientPhone",
			msg:    "Enter a valid Nigerian phone number",
		},
		{
			name:   "landline prefix",
			mutate: func(f *models.DeliveryForm) { f.RecipientPhone = "01234567890" },
			field:  "recipientPhone",
			msg:    "Enter a valid Nigerian phone number",
		},
		{
			name:   "bad email",
			mutate: func(f *models.DeliveryForm) { f.RecipientEmail = "not-an-email" },
			field:  "recipientEmail",
			msg:    "Enter a valid email",
		},
		{
			name:   "short address",
			mutate: func(f *models.DeliveryForm) { f.DeliveryAddress = "Lagos" },
			field:  "deliveryAddress",
			msg:    "Please provide a complete address",
		},
		{
			name:   "unknown area",
			mutate: func(f *models.DeliveryForm) { f.DeliveryArea = "Abuja" },
			field:  "deliveryArea",
			msg:    "Please select a delivery area",
		},
		{
			name:   "missing date",
			mutate: func(f *models.DeliveryForm) { f.DeliveryDate = "" },
			field:  "deliveryDate",
			msg:    "Please select a delivery date",
		},
		{
			name:   "unknown slot",
			mutate: func(f *models.DeliveryForm) { f.TimeSlot = "8:00 PM - 10:00 PM" },
			field:  "timeSlot",
			msg:    "Please select a time slot",
		},
		{
			name:   "long gift message",
			mutate: func(f *models.DeliveryForm) { f.GiftMessage = strings.Repeat("x", 501) },
			field:  "giftMessage",
			msg:    "Message too long",
		},
		{
			name:   "long sender name",
			mutate: func(f *models.DeliveryForm) { f.SenderName = strings.Repeat("x", 101) },
			field:  "senderName",
			msg:    "Name too long",
		},
		{
			name:   "long instructions",
			mutate: func(f *models.DeliveryForm) { f.SpecialInstructions = strings.Repeat("x", 501) },
			field:  "specialInstructions",
			msg:    "Instructions too long",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			form := validForm()
			c.mutate(&form)
			errs := v.Validate(form)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if errs[c.field] != c.msg {
				t.Fatalf("expected %q on %s, got %v", c.msg, c.field, errs)
			}
		})
	}
}

func TestValidatePhoneFormats(t *testing.T) {
	v := NewValidator(nil)

	for _, phone := range []string{"08031234567", "07011234567", "09012345678", "+2348031234567"} {
		form := validForm()
		form.RecipientPhone = phone
		if errs := v.Validate(form); len(errs) != 0 {
			t.Fatalf("%s: expected valid, got %v", phone, errs)
		}
	}
	for _, phone := range []string{"", "0803123456", "080312345678", "+2358031234567", "0603 123 4567"} {
		form := validForm()
		form.RecipientPhone = phone
		if errs := v.Validate(form); errs["recipientPhone"] == "" {
			t.Fatalf("%s: expected rejection", phone)
		}
	}
}

func TestValidateOptionalFieldsEmpty(t *testing.T) {
	v := NewValidator(nil)
	form := validForm()
	form.RecipientEmail = ""
	form.GiftMessage = ""
	form.SenderName = ""
	form.SpecialInstructions = ""
	if errs := v.Validate(form); len(errs) != 0 {
		t.Fatalf("optional fields empty must pass, got %v", errs)
	}
}

func TestValidateCustomPhonePattern(t *testing.T) {
	v := NewValidator(regexp.MustCompile(`^\d{4}$`))
	form := validForm()
	form.RecipientPhone = "1234"
	if errs := v.Validate(form); len(errs) != 0 {
		t.Fatalf("custom pattern should accept 1234, got %v", errs)
	}
	form.RecipientPhone = "08031234567"
	if errs := v.Validate(form); errs["recipientPhone"] == "" {
		t.Fatal("custom pattern should reject default-format number")
	}
}
