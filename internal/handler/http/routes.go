package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withMetrics)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	router.Use(h.authorize)

	// whitelist
	router.Get("/health", h.health)
	router.Get("/version", h.version)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// authentication
	router.Post("/login", h.login)
	router.HandleFunc("/logout", h.logout)
	router.Get("/token/refresh", h.refreshToken)

	router.Post("/registration", h.register)
	router.Get("/registration/username/{username}", h.checkUsername)

	router.Get("/users", h.listUsers)
	router.Post("/users", h.createUser)
	router.Get("/users/{id}", h.getUser)
	router.Put("/users/{id}", h.updateUser)
	router.Delete("/users/{id}", h.deleteUser)

	router.Get("/cars", h.listCars)
	router.Post("/cars", h.createCar)
	router.Get("/cars/packages", h.listCarPackages)
	router.Post("/cars/packages", h.createCarPackage)
	router.Delete("/cars/packages/{id}", h.deleteCarPackage)
	router.Get("/cars/{id}", h.getCar)
	router.Put("/cars/{id}", h.updateCar)
	router.Delete("/cars/{id}", h.deleteCar)

	router.Get("/orders", h.getOrders)
	router.Post("/orders", h.submitOrder)

	router.Post("/payment/credit-card", h.linkCreditCard)
	router.Get("/payment/balance", h.getBalance)

	router.Get("/delivery/access-keys", h.listAccessKeys)
	router.Post("/delivery/return/{orderID}", h.returnCar)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
