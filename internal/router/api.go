package router

import (
	"net/http"

	"github.com/SabihaEylul/nextjswebb/internal/handler"
	"github.com/SabihaEylul/nextjswebb/internal/middleware"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/labstack/echo/v4"
)

// Per client ip, per minute.
const (
	loginRatePerMinute   = 10
	loginBurst           = 5
	contactRatePerMinute = 5
)

func registerAPIRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	requireAdmin := m.Auth.RequireAdmin()

	services := api.Group("/services")
	services.GET("", handler.Handle(h.Offerings.Handler, h.Offerings.ListServices, http.StatusOK, &model.EmptyPayload{}))
	services.GET("/:id", handler.Handle(h.Offerings.Handler, h.Offerings.GetService, http.StatusOK, &model.IDPayload{}))
	services.POST("", handler.Handle(h.Offerings.Handler, h.Offerings.CreateService, http.StatusCreated, &model.CreateServicePayload{}), requireAdmin)
	services.PUT("/:id", handler.Handle(h.Offerings.Handler, h.Offerings.UpdateService, http.StatusOK, &model.UpdateServicePayload{}), requireAdmin)
	services.DELETE("/:id", handler.Handle(h.Offerings.Handler, h.Offerings.DeleteService, http.StatusOK, &model.IDPayload{}), requireAdmin)

	products := api.Group("/products")
	products.GET("", handler.Handle(h.Products.Handler, h.Products.ListProducts, http.StatusOK, &model.EmptyPayload{}))
	products.GET("/:id", handler.Handle(h.Products.Handler, h.Products.GetProduct, http.StatusOK, &model.IDPayload{}))
	products.POST("", handler.Handle(h.Products.Handler, h.Products.CreateProduct, http.StatusCreated, &model.CreateProductPayload{}), requireAdmin)
	products.PUT("/:id", handler.Handle(h.Products.Handler, h.Products.UpdateProduct, http.StatusOK, &model.UpdateProductPayload{}), requireAdmin)
	products.DELETE("/:id", handler.Handle(h.Products.Handler, h.Products.DeleteProduct, http.StatusOK, &model.IDPayload{}), requireAdmin)

	reviews := api.Group("/reviews")
	reviews.GET("", handler.Handle(h.Reviews.Handler, h.Reviews.ListReviews, http.StatusOK, &model.ListReviewsQuery{}))
	reviews.GET("/summary", handler.Handle(h.Reviews.Handler, h.Reviews.GetSummary, http.StatusOK, &model.ReviewSummaryQuery{}))
	reviews.GET("/:id", handler.Handle(h.Reviews.Handler, h.Reviews.GetReview, http.StatusOK, &model.IDPayload{}))
	reviews.POST("", handler.Handle(h.Reviews.Handler, h.Reviews.CreateReview, http.StatusCreated, &model.CreateReviewPayload{}))
	reviews.DELETE("/:id", handler.Handle(h.Reviews.Handler, h.Reviews.DeleteReview, http.StatusOK, &model.IDPayload{}), requireAdmin)

	contact := api.Group("/contact")
	contact.POST("", handler.Handle(h.Contacts.Handler, h.Contacts.SubmitMessage, http.StatusCreated, &model.CreateContactPayload{}),
		m.RateLimit.Limit("contact", contactRatePerMinute, contactRatePerMinute))
	contact.GET("", handler.Handle(h.Contacts.Handler, h.Contacts.ListMessages, http.StatusOK, &model.EmptyPayload{}), requireAdmin)
	contact.GET("/:id", handler.Handle(h.Contacts.Handler, h.Contacts.GetMessage, http.StatusOK, &model.IDPayload{}), requireAdmin)
	contact.DELETE("/:id", handler.Handle(h.Contacts.Handler, h.Contacts.DeleteMessage, http.StatusOK, &model.IDPayload{}), requireAdmin)

	auth := api.Group("/auth")
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK, &model.LoginPayload{}),
		m.RateLimit.Limit("login", loginRatePerMinute, loginBurst))
	auth.POST("/logout", handler.HandleNoContent(h.Auth.Handler, h.Auth.Logout, http.StatusNoContent, &model.EmptyPayload{}), requireAdmin)
	auth.GET("/me", handler.Handle(h.Auth.Handler, h.Auth.Me, http.StatusOK, &model.EmptyPayload{}), requireAdmin)
	auth.POST("/register", handler.Handle(h.Auth.Handler, h.Auth.Register, http.StatusCreated, &model.RegisterPayload{}), requireAdmin)
}
