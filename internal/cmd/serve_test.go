package cmd

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/logger"
)

func TestGinMode(t *testing.T) {
	tests := map[string]string{
		logger.EnvDev:     gin.DebugMode,
		logger.EnvStaging: gin.ReleaseMode,
		logger.EnvProd:    gin.ReleaseMode,
	}

	for env, want := range tests {
		if got := ginMode(env); got != want {
			t.Errorf("ginMode(%q) = %q, want %q", env, got, want)
		}
	}
}
