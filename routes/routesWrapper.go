package routes

import (
	"liana/cart"
	"liana/checkout"
	"liana/orders"
	"liana/ratelim"

	"github.com/julienschmidt/httprouter"
)

// Handlers groups the stateful handler objects built in main.
type Handlers struct {
	Cart     *cart.Handler
	Checkout *checkout.Handler
	Orders   *orders.Handler
}

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, h Handlers) {
	AddCatalogRoutes(router, rateLimiter)
	AddDeliveryRoutes(router, rateLimiter)
	AddCartRoutes(router, rateLimiter, h.Cart)
	AddCheckoutRoutes(router, rateLimiter, h.Checkout)
	AddOrderRoutes(router, rateLimiter, h.Orders)
	AddContactRoutes(router, rateLimiter)
}
