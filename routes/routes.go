package routes

import (
	"liana/cart"
	"liana/catalog"
	"liana/checkout"
	"liana/contact"
	"liana/middleware"
	"liana/orders"
	"liana/pricing"
	"liana/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:id", catalog.GetProduct)
	router.GET("/api/products/:id/related", catalog.GetRelatedProducts)
	router.GET("/api/categories", catalog.GetCategories)
}

func AddDeliveryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/delivery/zones", pricing.GetDeliveryZones)
	router.GET("/api/delivery/slots", pricing.GetTimeSlots)
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/cart", middleware.EnsureSession(h.GetCart))
	router.POST("/api/cart/items", rl.Limit(middleware.EnsureSession(h.AddItem)))
	router.PATCH("/api/cart/items/:id", rl.Limit(middleware.EnsureSession(h.UpdateQuantity)))
	router.DELETE("/api/cart/items/:id", rl.Limit(middleware.EnsureSession(h.RemoveItem)))
	router.DELETE("/api/cart", rl.Limit(middleware.EnsureSession(h.ClearCart)))
	router.PUT("/api/cart/open", middleware.EnsureSession(h.SetOpen))
	router.POST("/api/cart/whatsapp-link", rl.Limit(middleware.EnsureSession(h.WhatsAppLink)))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *checkout.Handler) {
	router.POST("/api/checkout", rl.Limit(middleware.EnsureSession(h.Begin)))
	router.GET("/api/checkout", middleware.EnsureSession(h.GetState))
	router.PATCH("/api/checkout/form", middleware.EnsureSession(h.SetFields))
	router.POST("/api/checkout/next", rl.Limit(middleware.EnsureSession(h.Next)))
	router.POST("/api/checkout/prev", rl.Limit(middleware.EnsureSession(h.Prev)))
	router.PUT("/api/checkout/payment", middleware.EnsureSession(h.SetPayment))
	router.POST("/api/checkout/confirm", rl.Limit(middleware.EnsureSession(h.Confirm)))
	router.DELETE("/api/checkout", middleware.EnsureSession(h.Abandon))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *orders.Handler) {
	router.GET("/api/orders/:orderid", h.GetOrder)
	router.GET("/api/orders/:orderid/qr", h.GetOrderQR)
	router.GET("/api/orders/:orderid/receipt", h.GetOrderReceipt)
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.SubmitMessage))
}
