package orders

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"liana/models"
	"liana/pricing"
	"liana/utils"
)

// Handoff destination and bank transfer details. Env vars override the
// defaults so a different shop front can reuse the flow.
var (
	BusinessPhone = "2347031677165"
	BankName      = "UBA"
	AccountName   = "Floral and Creations"
	AccountNumber = "1024612778"
)

func init() {
	if v := os.Getenv("WHATSAPP_NUMBER"); v != "" {
		BusinessPhone = v
	}
	if v := os.Getenv("BANK_NAME"); v != "" {
		BankName = v
	}
	if v := os.Getenv("BANK_ACCOUNT_NAME"); v != "" {
		AccountName = v
	}
	if v := os.Getenv("BANK_ACCOUNT_NUMBER"); v != "" {
		AccountNumber = v
	}
}

const divider = "━━━━━━━━━━━━━━━━━━━━"

// GenerateOrderID builds a short order identifier from a base36 timestamp
// and four random base36 characters, e.g. LAMK3J2P0XQ4F7. Collisions are
// acceptable at manual-fulfilment scale.
func GenerateOrderID() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	random := utils.GenerateBase36String(4)
	return "LA" + timestamp + random
}

// FormatOrderMessage renders the full handoff text for one order. It is a
// pure function of its inputs: the same cart, form, id and timestamp
// always produce the same bytes.
func FormatOrderMessage(items []models.CartItem, form models.DeliveryForm, subtotal, deliveryFee, grandTotal int, orderID string, at time.Time) string {
	var products strings.Builder
	for i, item := range items {
		if i > 0 {
			products.WriteString("\n")
		}
		fmt.Fprintf(&products, "- %s x%d - %s", item.Name, item.Quantity, pricing.FormatPrice(item.Price*item.Quantity))
	}

	giftBlock := ""
	if form.IsGift {
		sender := form.SenderName
		if sender == "" {
			sender = "Anonymous"
		}
		message := form.GiftMessage
		if message == "" {
			message = "No message"
		}
		giftBlock = fmt.Sprintf("\n🎁 This is a GIFT\nFrom: %s\n💌 Gift Message: \"%s\"", sender, message)
	}

	instructionsBlock := ""
	if form.SpecialInstructions != "" {
		instructionsBlock = fmt.Sprintf("\n📝 Special Instructions: %s", form.SpecialInstructions)
	}

	return fmt.Sprintf(`Hi Lian-Ana Flowers! 🌹

%[1]s
📦 ORDER DETAILS
%[1]s

Order ID: #%[2]s
Order Date: %[3]s

🌹 PRODUCTS:
%[4]s

%[1]s
🚚 DELIVERY INFORMATION
%[1]s

Recipient: %[5]s
Phone: %[6]s
Address: %[7]s
Area: %[8]s
Delivery Date: %[9]s
Time Slot: %[10]s
%[11]s
%[12]s

%[1]s
💳 PAYMENT SUMMARY
%[1]s

Subtotal: %[13]s
Delivery Fee (%[8]s): %[14]s
━━━━━━━━━━━━━━
TOTAL PAID: %[15]s

✅ Payment Made to:
Bank: %[16]s
Account Name: %[17]s
Account Number: %[18]s

I'll send my payment receipt now for confirmation.

Thank you! 💐`,
		divider,
		orderID,
		at.Format("02/01/2006, 15:04:05"),
		products.String(),
		form.RecipientName,
		form.RecipientPhone,
		form.DeliveryAddress,
		form.DeliveryArea,
		form.DeliveryDate,
		form.TimeSlot,
		giftBlock,
		instructionsBlock,
		pricing.FormatPrice(subtotal),
		pricing.FormatPrice(deliveryFee),
		pricing.FormatPrice(grandTotal),
		BankName,
		AccountName,
		AccountNumber,
	)
}

// QuickCartMessage is the short drawer-checkout text: itemized lines and a
// total, no delivery details. Used before checkout has collected a form.
func QuickCartMessage(items []models.CartItem, totalPrice int) string {
	var lines strings.Builder
	for i, item := range items {
		if i > 0 {
			lines.WriteString("\n")
		}
		fmt.Fprintf(&lines, "• %s x%d - %s", item.Name, item.Quantity, pricing.FormatPrice(item.Price*item.Quantity))
	}

	return fmt.Sprintf("Hi Lian-Ana Flowers! 🌹\n\nI'd like to order:\n\n%s\n\n*Total: %s*\n\nPlease confirm availability and delivery details.",
		lines.String(), pricing.FormatPrice(totalPrice))
}

// WhatsAppURL builds the wa.me deep link with the message pre-filled.
func WhatsAppURL(message string) string {
	return "https://wa.me/" + BusinessPhone + "?text=" + url.QueryEscape(message)
}
