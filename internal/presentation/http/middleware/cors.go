package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
)

var defaultAllowedHeaders = []string{
	"Accept",
	"Authorization",
	"Content-Type",
	"X-Request-ID",
	"Origin",
	IdempotencyKeyHeader,
}

// CORSMiddleware creates a CORS middleware with the provided configuration.
// An origin of "*" allows every origin without credentials.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: cfg.AllowedMethods,
		AllowHeaders: cfg.AllowedHeaders,
		ExposeHeaders: []string{
			"Content-Length", "Content-Type", "Content-Disposition",
			"X-Request-ID", "X-Idempotency-Replayed",
		},
		MaxAge: 12 * time.Hour,
	}

	origins := lo.Compact(cfg.AllowedOrigins)
	if len(origins) == 0 || lo.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}

	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = defaultAllowedHeaders
	} else if !lo.Contains(corsConfig.AllowHeaders, IdempotencyKeyHeader) {
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, IdempotencyKeyHeader)
	}

	return cors.New(corsConfig)
}
