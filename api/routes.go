package api

import (
	"net/http"
	"path/filepath"

	"pdftoolbox/config"
	"pdftoolbox/logging"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter builds the gin engine serving the API, health check and web page
func NewRouter(cfg *config.Config, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.GinLogger(logger))
	r.MaxMultipartMemory = MaxMultipartMemory

	SetupRoutes(r, &Handlers{config: cfg, logger: logger})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdftoolbox",
		})
	})

	// The web page is optional; the API works without templates.
	pattern := filepath.Join(cfg.TemplateDir, "*.html")
	if matches, _ := filepath.Glob(pattern); len(matches) > 0 {
		r.LoadHTMLGlob(pattern)
		r.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", gin.H{
				"title":       "PDF Toolbox",
				"maxFileSize": cfg.MaxFileSize,
			})
		})
	} else {
		logger.Warn().Str("pattern", pattern).Msg("no templates found, web page disabled")
	}

	return r
}

func SetupRoutes(r *gin.Engine, h *Handlers) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/info", h.HandleInfo)
		apiGroup.POST("/merge", h.HandleMerge)
		apiGroup.POST("/split", h.HandleSplit)
		apiGroup.POST("/compress", h.HandleCompress)
	}
}
