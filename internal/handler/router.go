package handler

import (
	"net/http"

	"table-booking/internal/handler/api"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, sessionHandler *api.SessionHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, sessionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, sessionHandler *api.SessionHandler) {
	engine.GET("/health", healthCheck)
	engine.NoRoute(notFound)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/sessions"), []route{
			{Method: http.MethodPost, Path: "", Handler: sessionHandler.Open},
			{Method: http.MethodDelete, Path: "/:id", Handler: sessionHandler.Close},
			{Method: http.MethodGet, Path: "/:id/notifications", Handler: sessionHandler.Notifications},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: sessionHandler.ListReservations},
		})

		addRoutes(apiGroup.Group("/sessions/:id/draft"), []route{
			{Method: http.MethodGet, Path: "", Handler: sessionHandler.GetDraft},
			{Method: http.MethodPatch, Path: "", Handler: sessionHandler.UpdateField, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
			{Method: http.MethodPost, Path: "/reset", Handler: sessionHandler.ResetDraft},
			{Method: http.MethodPost, Path: "/submit", Handler: sessionHandler.Submit},
		})
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

func notFound(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusNotFound}
	resp.Error.Code = httperr.CodeNotFound
	resp.Error.Message = "Page not found"
	c.JSON(http.StatusNotFound, resp)
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
