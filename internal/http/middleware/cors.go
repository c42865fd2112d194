package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/config"
)

// CORS applies the configured cross-origin policy.
//
// A "*" in the origin or header allow list admits everything. Origins
// and requested headers are then echoed back instead of sending a
// literal "*", which browsers do not treat as a wildcard when
// credentials are allowed.
func CORS(cfg config.CORS) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowOriginFunc = func(string) bool { return true }
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}

	// With no AllowHeaders the library leaves Access-Control-Allow-Headers
	// unset, so the reflected value below survives the preflight.
	reflectHeaders := slices.Contains(cfg.AllowHeaders, "*")
	if !reflectHeaders {
		c.AllowHeaders = cfg.AllowHeaders
	}

	handler := cors.New(c)
	if !reflectHeaders {
		return handler
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Origin") != "" {
			if requested := ctx.GetHeader("Access-Control-Request-Headers"); requested != "" {
				ctx.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(ctx)
	}
}
