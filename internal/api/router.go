package api

import (
	"eld-trip-planner/internal/api/handlers"
	"eld-trip-planner/internal/config"
	"eld-trip-planner/internal/ports"
	"eld-trip-planner/internal/services"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

// Deps are the collaborators the router wires into handlers.
// History and Limiter may be nil.
type Deps struct {
	Config  *config.Config
	Planner *services.TripPlanner
	History ports.TripHistory
	Limiter *RateLimiter
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) (http.Handler, error) {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("new router: parse templates: %w", err)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(tmpl)
	r.Use(requestID(), loggingMiddleware(), recovery())

	tripHandler := &handlers.TripHandler{
		Planner: d.Planner,
		Cookies: handlers.Cookies{
			Secure: !d.Config.IsDevelopment(),
			MaxAge: int(d.Config.Sessions.TTL / time.Second),
		},
	}

	submit := []gin.HandlerFunc{tripHandler.Submit}
	if d.Limiter != nil {
		submit = append([]gin.HandlerFunc{d.Limiter.Middleware()}, submit...)
	}

	r.GET("/", tripHandler.Index)
	r.POST("/trips", submit...)
	r.POST("/trips/reset", tripHandler.Reset)
	r.GET("/eld-log", tripHandler.OpenLog)
	r.GET("/health", handlers.Health)

	if d.History != nil {
		historyHandler := &handlers.HistoryHandler{History: d.History}

		history := r.Group("/")
		history.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Accept"},
			MaxAge:          12 * time.Hour,
		}))
		history.GET("/history", historyHandler.List)
		history.GET("/history.csv", historyHandler.CSV)
	}

	if d.Config.IsDevelopment() {
		proxy, err := newDevProxy(d.Config.DevProxyTarget)
		if err != nil {
			return nil, fmt.Errorf("new router: %w", err)
		}
		r.Any("/api/*path", proxy)
		r.Any("/media/*path", proxy)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r, nil
}
