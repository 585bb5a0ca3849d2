package models

import "time"

// Product is a catalog entry. Prices are whole naira.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice,omitempty"` // pre-discount, display only
	Category      string `json:"category"`                // "roses", "mixed", "boxes", "extras"
	Image         string `json:"image"`
	Description   string `json:"description"`
	Note          string `json:"note,omitempty"` // e.g. "per bottle"
	Featured      bool   `json:"featured,omitempty"`
	Sale          bool   `json:"sale,omitempty"`
}

// CartItem represents a single line item in a session's cart.
type CartItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"` // unit price
	OriginalPrice int    `json:"originalPrice,omitempty"`
	Image         string `json:"image,omitempty"`
	Category      string `json:"category,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Cart holds a session's line items in insertion order plus the
// drawer-visibility flag. Totals are derived, never stored.
type Cart struct {
	Items      []CartItem `json:"items"`
	IsCartOpen bool       `json:"isCartOpen"`
}

// TotalItems is the sum of quantities across all line items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price × quantity across all line items.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// DeliveryForm carries the recipient and scheduling details collected
// during checkout. IsGift defaults to true when a form is created.
type DeliveryForm struct {
	RecipientName       string `json:"recipientName"`
	RecipientPhone      string `json:"recipientPhone"`
	RecipientEmail      string `json:"recipientEmail,omitempty"`
	DeliveryAddress     string `json:"deliveryAddress"`
	DeliveryArea        string `json:"deliveryArea"`
	DeliveryDate        string `json:"deliveryDate"`
	TimeSlot            string `json:"timeSlot"`
	IsGift              bool   `json:"isGift"`
	GiftMessage         string `json:"giftMessage,omitempty"`
	SenderName          string `json:"senderName,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// DeliveryZone maps a named area to its flat delivery fee.
type DeliveryZone struct {
	Area string `json:"area"`
	Fee  int    `json:"fee"`
}

// TimeSlot is one of the fixed delivery windows offered at checkout.
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Order is a finalized, handed-off order. Orders live only for the
// lifetime of the process so receipts stay retrievable after handoff.
type Order struct {
	OrderID     string       `json:"orderId"`
	Items       []CartItem   `json:"items"`
	Form        DeliveryForm `json:"form"`
	Subtotal    int          `json:"subtotal"`
	DeliveryFee int          `json:"deliveryFee"`
	Total       int          `json:"total"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsappUrl"`
	CreatedAt   time.Time    `json:"createdAt"`
}
