package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	checkInHandler *api.CheckInHandler,
	statsHandler *api.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, paymentHandler, checkInHandler, statsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	checkInHandler *api.CheckInHandler,
	statsHandler *api.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	// Gateway-facing; authenticated by signature, not JWT.
	engine.POST("/webhooks/razorpay", paymentHandler.Webhook)

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodGet, Path: "/number/:number", Handler: bookingHandler.GetBookingByNumber},
				{Method: http.MethodPost, Path: "/:id/payment/order", Handler: paymentHandler.OpenOrder},
				{Method: http.MethodPost, Path: "/:id/payment/confirm", Handler: paymentHandler.ConfirmPayment},
				{Method: http.MethodPost, Path: "/:id/payment/fail", Handler: paymentHandler.MarkFailed},
			})

			staff := bookings.Group("")
			staff.Use(authMiddleware.RequireAuth())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodPost, Path: "/:id/credential/resend", Handler: checkInHandler.ResendCredential},
			})

			admin := bookings.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin))
			addRoutes(admin, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/release-expired", Handler: bookingHandler.ReleaseExpired},
			})
		}

		checkin := apiGroup.Group("/checkin")
		checkin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkin, []route{
				{Method: http.MethodPost, Path: "/redeem", Handler: checkInHandler.Redeem},
			})
		}

		stats := apiGroup.Group("/stats")
		stats.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin))
		{
			addRoutes(stats, []route{
				{Method: http.MethodGet, Path: "/daily", Handler: statsHandler.Daily},
				{Method: http.MethodGet, Path: "/activities", Handler: statsHandler.ByActivity},
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
