package middleware

import (
	"slices"
	"time"

	"github.com/Piyush-Dabare/vikas/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets browser frontends call the API. A "*" origin (or no origin at
// all) opens the API to everyone, in which case credentials are not allowed.
func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	origins := cfg.GetConfig().FrontendUrls
	allowAll := len(origins) == 0 || slices.Contains(origins, "*")

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}

	return cors.New(corsCfg)
}
