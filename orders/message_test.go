package orders

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"liana/models"
)

func sampleForm() models.DeliveryForm {
	return models.DeliveryForm{
		RecipientName:   "Adaeze Obi",
		RecipientPhone:  "08031234567",
		DeliveryAddress: "12 Bourdillon Road, Ikoyi, Lagos",
		DeliveryArea:    "Ikoyi",
		DeliveryDate:    "2026-09-05",
		TimeSlot:        "9:00 AM - 12:00 PM",
		IsGift:          true,
		SenderName:      "Chidi",
		GiftMessage:     "Happy birthday!",
	}
}

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{ID: "1", Name: "Classic Red Roses", Price: 85000, Quantity: 2},
		{ID: "24", Name: "Wine Add-on", Price: 15000, Quantity: 1},
	}
}

func TestGenerateOrderIDShape(t *testing.T) {
	id := GenerateOrderID()
	if !strings.HasPrefix(id, "LA") {
		t.Fatalf("expected LA prefix, got %q", id)
	}
	if len(id) < 10 {
		t.Fatalf("id too short: %q", id)
	}
	for _, r := range id[2:] {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
			t.Fatalf("non-base36 rune %q in %q", r, id)
		}
	}
}

func TestFormatOrderMessageDeterministic(t *testing.T) {
	at := time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC)
	a := FormatOrderMessage(sampleItems(), sampleForm(), 185000, 2000, 187000, "LATEST1234", at)
	b := FormatOrderMessage(sampleItems(), sampleForm(), 185000, 2000, 187000, "LATEST1234", at)
	if a != b {
		t.Fatal("same inputs must produce the same message")
	}
}

func TestFormatOrderMessageContent(t *testing.T) {
	at := time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC)
	msg := FormatOrderMessage(sampleItems(), sampleForm(), 185000, 2000, 187000, "LATEST1234", at)

	for _, want := range []string{
		"Hi Lian-Ana Flowers! 🌹",
		"Order ID: #LATEST1234",
		"Order Date: 01/09/2026, 14:30:05",
		"- Classic Red Roses x2 - ₦170,000",
		"- Wine Add-on x1 - ₦15,000",
		"Recipient: Adaeze Obi",
		"Phone: 08031234567",
		"Area: Ikoyi",
		"Time Slot: 9:00 AM - 12:00 PM",
		"🎁 This is a GIFT",
		"From: Chidi",
		"💌 Gift Message: \"Happy birthday!\"",
		"Subtotal: ₦185,000",
		"Delivery Fee (Ikoyi): ₦2,000",
		"TOTAL PAID: ₦187,000",
		"Bank: " + BankName,
		"Account Name: " + AccountName,
		"Account Number: " + AccountNumber,
		"Thank you! 💐",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatOrderMessageGiftFallbacks(t *testing.T) {
	form := sampleForm()
	form.SenderName = ""
	form.GiftMessage = ""
	msg := FormatOrderMessage(sampleItems(), form, 185000, 2000, 187000, "LATEST1234", time.Now())

	if !strings.Contains(msg, "From: Anonymous") {
		t.Fatal("empty sender must fall back to Anonymous")
	}
	if !strings.Contains(msg, "💌 Gift Message: \"No message\"") {
		t.Fatal("empty gift message must fall back to No message")
	}
}

func TestFormatOrderMessageOptionalBlocks(t *testing.T) {
	form := sampleForm()
	form.IsGift = false
	form.SpecialInstructions = ""
	msg := FormatOrderMessage(sampleItems(), form, 185000, 2000, 187000, "LATEST1234", time.Now())

	if strings.Contains(msg, "🎁") {
		t.Fatal("non-gift order must omit the gift block")
	}
	if strings.Contains(msg, "📝") {
		t.Fatal("empty instructions must omit the instructions block")
	}

	form.SpecialInstructions = "Leave at the gate"
	msg = FormatOrderMessage(sampleItems(), form, 185000, 2000, 187000, "LATEST1234", time.Now())
	if !strings.Contains(msg, "📝 Special Instructions: Leave at the gate") {
		t.Fatal("instructions block missing")
	}
}

func TestQuickCartMessage(t *testing.T) {
	msg := QuickCartMessage(sampleItems(), 185000)

	for _, want := range []string{
		"I'd like to order:",
		"• Classic Red Roses x2 - ₦170,000",
		"• Wine Add-on x1 - ₦15,000",
		"*Total: ₦185,000*",
		"Please confirm availability and delivery details.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("quick message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "DELIVERY INFORMATION") {
		t.Fatal("quick message must not carry delivery details")
	}
}

func TestWhatsAppURL(t *testing.T) {
	link := WhatsAppURL("Hello & welcome! 🌹")

	prefix := "https://wa.me/" + BusinessPhone + "?text="
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("unexpected link %q", link)
	}
	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, prefix))
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if decoded != "Hello & welcome! 🌹" {
		t.Fatalf("round trip mismatch: %q", decoded)
	}
}

func TestRegistrySaveGet(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Get("LAMISSING"); ok {
		t.Fatal("expected miss on empty registry")
	}

	order := models.Order{OrderID: "LATEST1234", Total: 187000}
	r.Save(order)

	got, ok := r.Get("LATEST1234")
	if !ok {
		t.Fatal("expected saved order")
	}
	if got.Total != 187000 {
		t.Fatalf("unexpected order: %+v", got)
	}
}
