package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/config"
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
	venueHandler *api.VenueHandler,
	catalogHandler *api.CatalogHandler,
	adminBookingHandler *api.AdminBookingHandler,
	adminCatalogHandler *api.AdminCatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, venueHandler, catalogHandler, adminBookingHandler, adminCatalogHandler, authMiddleware)
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
	venueHandler *api.VenueHandler,
	catalogHandler *api.CatalogHandler,
	adminBookingHandler *api.AdminBookingHandler,
	adminCatalogHandler *api.AdminCatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.ListVenues},
				{Method: http.MethodGet, Path: "/:id", Handler: venueHandler.GetVenue},
				{Method: http.MethodGet, Path: "/:id/shifts", Handler: venueHandler.ListVenueShifts},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: venueHandler.GetAvailability},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/packages", Handler: catalogHandler.ListPackages},
			{Method: http.MethodGet, Path: "/packages/:id", Handler: catalogHandler.GetPackage},
			{Method: http.MethodGet, Path: "/menu-items", Handler: catalogHandler.ListMenuItems},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminBookingHandler.ListBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: adminBookingHandler.ConfirmBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: adminBookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: adminBookingHandler.CompleteBooking},

				{Method: http.MethodPost, Path: "/venues", Handler: adminCatalogHandler.CreateVenue},
				{Method: http.MethodPatch, Path: "/venues/:id", Handler: adminCatalogHandler.UpdateVenue},
				{Method: http.MethodGet, Path: "/shift-templates", Handler: adminCatalogHandler.ListShiftTemplates},
				{Method: http.MethodPost, Path: "/shift-templates", Handler: adminCatalogHandler.CreateShiftTemplate},
				{Method: http.MethodPut, Path: "/shift-templates/:id", Handler: adminCatalogHandler.UpdateShiftTemplate},
				{Method: http.MethodPost, Path: "/packages", Handler: adminCatalogHandler.CreatePackage},
				{Method: http.MethodPatch, Path: "/packages/:id", Handler: adminCatalogHandler.UpdatePackage},
				{Method: http.MethodPost, Path: "/menu-items", Handler: adminCatalogHandler.CreateMenuItem},
				{Method: http.MethodPatch, Path: "/menu-items/:id", Handler: adminCatalogHandler.UpdateMenuItem},
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
