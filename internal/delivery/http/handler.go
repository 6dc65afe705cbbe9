package http

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	_ "order-review-svc/docs"
	"order-review-svc/internal/auth"
	"order-review-svc/internal/models"
	"order-review-svc/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Tokens interface {
	Issue(email string, role auth.Role) (string, error)
	Parse(raw string) (auth.Claims, error)
}

type EventPublisher interface {
	Emit(ctx context.Context, eventType models.EventType, key string, payload any) error
}

type nopEvents struct{}

func (nopEvents) Emit(context.Context, models.EventType, string, any) error { return nil }

type Handler struct {
	svc     service.UseCases
	tokens  Tokens
	events  EventPublisher
	origins []string
	service string
}

type Option func(*Handler)

func WithEvents(p EventPublisher) Option { return func(h *Handler) { h.events = p } }

func WithCORSOrigins(origins []string) Option { return func(h *Handler) { h.origins = origins } }

func WithServiceName(name string) Option { return func(h *Handler) { h.service = name } }

func NewHandler(s service.UseCases, tokens Tokens, opts ...Option) *Handler {
	h := &Handler{
		svc:     s,
		tokens:  tokens,
		events:  nopEvents{},
		origins: []string{"*"},
		service: "order-review-svc",
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(h.origins) == 0 || slices.Contains(h.origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", headerRequestID}
	cfg.ExposeHeaders = []string{headerRequestID}
	return cfg
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(), metrics(), tracing(h.service), cors.New(h.corsConfig()))

	api := router.Group("/api")
	{
		api.POST("/customers", h.RegisterCustomer)
		api.POST("/restaurants", h.RegisterRestaurant)

		login := api.Group("/auth")
		login.POST("/customers/login", h.LoginCustomer)
		login.POST("/restaurants/login", h.LoginRestaurant)

		api.GET("/restaurants/:id", h.GetRestaurant)
		api.GET("/restaurants/:id/menu", h.ListMenu)
		api.GET("/dishes/:id", h.GetMenuItem)

		api.GET("/restaurants/:id/reviews", h.ListRestaurantReviews)
		api.GET("/dishes/:id/reviews", h.ListDishReviews)
		api.GET("/reviews/restaurants", h.ListAllRestaurantReviews)
		api.GET("/reviews/dishes", h.ListAllDishReviews)

		restaurant := api.Group("", h.requireRole(auth.RoleRestaurant))
		restaurant.PUT("/restaurants/:id", h.UpdateRestaurant)
		restaurant.DELETE("/restaurants/:id", h.DeleteRestaurant)
		restaurant.POST("/restaurants/menu", h.AddMenuItem)
		restaurant.PUT("/dishes/:id", h.UpdateMenuItem)
		restaurant.DELETE("/dishes/:id", h.DeleteMenuItem)

		customer := api.Group("", h.requireRole(auth.RoleCustomer))
		customer.GET("/customers/:id", h.GetCustomer)
		customer.PUT("/customers/:id", h.UpdateCustomer)
		customer.DELETE("/customers/:id", h.DeleteCustomer)
		customer.POST("/orders", h.PlaceOrder)
		customer.GET("/orders", h.ListOrders)
		customer.PATCH("/orders/:id/status", h.UpdateStatus)
		customer.GET("/orders/:id/history", h.OrderHistory)
		customer.POST("/restaurants/:id/reviews", h.SubmitRestaurantReview)
		customer.POST("/dishes/:id/reviews", h.SubmitDishReview)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Message: "not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// emit publishes after the write has succeeded. A failed publish is logged
// and does not fail the request.
func (h *Handler) emit(c *gin.Context, eventType models.EventType, key uint, payload any) {
	if err := h.events.Emit(c.Request.Context(), eventType, strconv.FormatUint(uint64(key), 10), payload); err != nil {
		logrus.WithError(err).
			WithField("event", eventType).
			WithField("request_id", c.GetString(ctxRequestID)).
			Error("publish event")
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		newErrorResponse(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
