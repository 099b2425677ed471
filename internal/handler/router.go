package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-front-desk/internal/handler/api"
	"hotel-front-desk/internal/handler/middleware"
	"hotel-front-desk/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	reservationHandler *api.ReservationHandler,
	frontDeskHandler *api.FrontDeskHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, reservationHandler, frontDeskHandler, checkoutHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	reservationHandler *api.ReservationHandler,
	frontDeskHandler *api.FrontDeskHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/staff/login", Handler: authHandler.StaffLogin},
				{Method: http.MethodPost, Path: "/customers", Handler: authHandler.RegisterCustomer},
				{Method: http.MethodPost, Path: "/customers/login", Handler: authHandler.CustomerLogin},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/units", Handler: catalogHandler.ListUnits},
				{Method: http.MethodGet, Path: "/units/:id", Handler: catalogHandler.GetUnit},
			})
		}

		// Intake is open: walk-in guests book without an account.
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
			})

			reservationsAuth := reservations.Group("")
			reservationsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(reservationsAuth, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: reservationHandler.MyReservations, Mw: []gin.HandlerFunc{authMiddleware.RequireCustomer()}},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			})
		}

		desk := apiGroup.Group("/desk")
		desk.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(desk, []route{
				{Method: http.MethodGet, Path: "/board", Handler: frontDeskHandler.Board},
				{Method: http.MethodGet, Path: "/reservations", Handler: frontDeskHandler.SearchReservations},
				{Method: http.MethodPost, Path: "/reservations/:id/check-in", Handler: frontDeskHandler.CheckIn},
				{Method: http.MethodPost, Path: "/reservations/:id/charges", Handler: frontDeskHandler.AddCharges},
				{Method: http.MethodDelete, Path: "/reservations/:id/charges/:seq", Handler: frontDeskHandler.RetractCharge},
				{Method: http.MethodPost, Path: "/reservations/:id/check-out", Handler: frontDeskHandler.CheckOut},
			})
		}

		// The kiosk is anonymous: guests identify their stay by code,
		// email or phone.
		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "/search", Handler: checkoutHandler.Search},
				{Method: http.MethodPost, Path: "/:id", Handler: checkoutHandler.Checkout},
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
