// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/storage/database"
	"github.com/aanand-mishra/campus-api/internal/utils/response"
)

// Session pins one database connection to the request.
//
// The connection is acquired before the handler runs and released by a
// deferred call, so it goes back to the pool on every exit path: normal
// return, an aborted chain, or a panic caught further out by
// gin.Recovery.
func Session(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := db.Acquire(c.Request.Context())
		if err != nil {
			slog.Error("cannot acquire database connection", slog.String("error", err.Error()))
			response.WriteError(c, http.StatusServiceUnavailable,
				errors.New("database unavailable"))
			return
		}
		defer func() {
			if err := session.Release(); err != nil {
				slog.Error("cannot release database connection", slog.String("error", err.Error()))
			}
		}()

		c.Request = c.Request.WithContext(database.WithSession(c.Request.Context(), session))
		c.Next()
	}
}
