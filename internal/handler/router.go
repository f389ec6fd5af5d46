package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clubtab/internal/domain/member"
	"clubtab/internal/handler/api"
	"clubtab/internal/handler/middleware"
	"clubtab/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Tab     *api.TabHandler
	Payment *api.PaymentHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		apiGroup.POST("/terminal/session", h.Auth.TerminalSession)

		// Terminal tokens are allowed here: booking, own tab, catalog, pool.
		memberRoutes := apiGroup.Group("")
		memberRoutes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(memberRoutes, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Book},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Tab.MyLines},
				{Method: http.MethodGet, Path: "/tab", Handler: h.Tab.MyTab},
				{Method: http.MethodPost, Path: "/crates", Handler: h.Booking.ProvideCrate},
				{Method: http.MethodGet, Path: "/drinks", Handler: h.Tab.Catalog},
				{Method: http.MethodGet, Path: "/pool", Handler: h.Tab.PoolStatus},
			})
		}

		// Full-scope member routes; a kiosk session cannot report payments.
		fullScope := apiGroup.Group("")
		fullScope.Use(authMiddleware.RequireAuth(), authMiddleware.RequireFullScope())
		{
			addRoutes(fullScope, []route{
				{Method: http.MethodPost, Path: "/payments", Handler: h.Payment.Report},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Payment.MyPayments},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(
			authMiddleware.RequireAuth(),
			authMiddleware.RequireFullScope(),
			authMiddleware.RequireRoleAtLeast(member.RoleAdmin),
		)
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/drinks", Handler: h.Admin.CreateDrink},
				{Method: http.MethodPatch, Path: "/drinks/:id", Handler: h.Admin.UpdateDrink},
				{Method: http.MethodPost, Path: "/purchases", Handler: h.Admin.RecordPurchase},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Payment.List},
				{Method: http.MethodPost, Path: "/payments/:id/verify", Handler: h.Payment.Verify},
				{Method: http.MethodPost, Path: "/lines/:id/reverse", Handler: h.Admin.ReverseLine},
				{Method: http.MethodPost, Path: "/members", Handler: h.Admin.CreateMember},
				{Method: http.MethodPost, Path: "/members/:id/pin", Handler: h.Admin.ResetPIN},
				{Method: http.MethodPost, Path: "/members/:id/adjust", Handler: h.Admin.AdjustBalance},
				{Method: http.MethodGet, Path: "/reports/summary", Handler: h.Admin.Summary},
				{Method: http.MethodGet, Path: "/reports/leaderboard", Handler: h.Admin.Leaderboard},
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
