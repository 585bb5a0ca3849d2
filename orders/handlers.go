package orders

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"liana/pricing"
	"liana/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Handler serves handoff artifacts for completed orders.
type Handler struct {
	Registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{Registry: registry}
}

// GetOrder returns the finalized order payload (message and deep link
// included) so a blocked handoff can be retried manually.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Registry.Get(ps.ByName("orderid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GetOrderQR renders the WhatsApp deep link as a scannable PNG.
func (h *Handler) GetOrderQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Registry.Get(ps.ByName("orderid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	png, err := qrcode.Encode(order.WhatsAppURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GetOrderReceipt produces a PDF summary of the order with the WhatsApp
// QR embedded, for customers whose browser blocked the deep link.
func (h *Handler) GetOrderReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Registry.Get(ps.ByName("orderid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	qrPNG, err := qrcode.Encode(order.WhatsAppURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Lian-Ana Flowers - Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: #%s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Order Date: %s", order.CreatedAt.Format("02/01/2006, 15:04:05")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Recipient: %s (%s)", order.Form.RecipientName, order.Form.RecipientPhone))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Delivery: %s, %s on %s (%s)", order.Form.DeliveryAddress, order.Form.DeliveryArea, order.Form.DeliveryDate, order.Form.TimeSlot))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.Cell(0, 8, fmt.Sprintf("%s x%d - NGN %s", item.Name, item.Quantity, plain(item.Price*item.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: NGN %s", plain(order.Subtotal)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Delivery Fee (%s): NGN %s", order.Form.DeliveryArea, plain(order.DeliveryFee)))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: NGN %s", plain(order.Total)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Scan to complete your order on WhatsApp:")

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=order-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// plain is FormatPrice without the naira sign; the core PDF fonts cannot
// encode ₦.
func plain(n int) string {
	s := pricing.FormatPrice(n)
	if strings.HasPrefix(s, "-") {
		return "-" + strings.TrimPrefix(s[1:], "₦")
	}
	return strings.TrimPrefix(s, "₦")
}
