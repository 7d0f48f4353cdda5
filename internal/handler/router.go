package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bounce-booking/internal/handler/api"
	"bounce-booking/internal/handler/middleware"
	"bounce-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Promo        *api.PromoHandler
	Webhook      *api.WebhookHandler
	Admin        *api.AdminHandler
}

func NewHandlers(
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	promo *api.PromoHandler,
	webhook *api.WebhookHandler,
	admin *api.AdminHandler,
) Handlers {
	return Handlers{Booking: booking, Availability: availability, Promo: promo, Webhook: webhook, Admin: admin}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, adminMiddleware *middleware.AdminMiddleware, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, adminMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, adminMiddleware *middleware.AdminMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings/checkout", Handler: h.Booking.Checkout},
			{Method: http.MethodGet, Path: "/bookings/:id/summary", Handler: h.Booking.Summary},
			{Method: http.MethodGet, Path: "/availability/date", Handler: h.Availability.Date},
			{Method: http.MethodGet, Path: "/availability/month", Handler: h.Availability.Month},
			{Method: http.MethodPost, Path: "/promo/validate", Handler: h.Promo.Validate},
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: h.Webhook.Stripe},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(adminMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Admin.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Admin.CompleteBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Admin.CancelBooking},
				{Method: http.MethodGet, Path: "/blocked-dates", Handler: h.Admin.ListBlockedDates},
				{Method: http.MethodPost, Path: "/blocked-dates", Handler: h.Admin.CreateBlockedDate},
				{Method: http.MethodDelete, Path: "/blocked-dates/:id", Handler: h.Admin.DeleteBlockedDate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
