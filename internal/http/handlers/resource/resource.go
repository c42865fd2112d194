// Package resource contains the HTTP handlers shared by every resource.
//
// The handlers follow the factory pattern: each function receives its
// dependencies once, when the route is registered, and returns the
// gin.HandlerFunc that runs on every request.
//
//	books.POST("", resource.New[types.Book, types.BookInput](res))
//
// T is the record type, I the input payload type that overwrites a T.
package resource

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/utils/response"
)

// Resource names a resource for log lines and carries its storage.
type Resource[T any] struct {
	Name    string // singular, e.g. "book"
	Storage storage.Storage[T]
}

var validate = newValidator()

// newValidator reports field errors under their JSON names, so a client
// sees "field is_published is required" rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// GetList handles GET /api/v1/{resource}.
// Responds 200 with a JSON array, [] when the table is empty.
func GetList[T any](r Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		slog.Info("listing " + r.Name + "s")

		records, err := r.Storage.GetList(c.Request.Context())
		if err != nil {
			slog.Error("error listing "+r.Name+"s", slog.String("error", err.Error()))
			response.WriteError(c, http.StatusInternalServerError, err)
			return
		}

		response.WriteJSON(c, http.StatusOK, records)
	}
}

// GetByID handles GET /api/v1/{resource}/{id}.
// Responds 200 with the record, or 200 with null when no row has the id.
func GetByID[T any](r Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		slog.Info("getting a "+r.Name, slog.Int64("id", id))

		record, err := r.Storage.GetByID(c.Request.Context(), id)
		if err != nil {
			slog.Error("error getting "+r.Name,
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteError(c, http.StatusInternalServerError, err)
			return
		}

		// A nil *T encodes as null.
		response.WriteJSON(c, http.StatusOK, record)
	}
}

// New handles POST /api/v1/{resource}.
// Responds 201 with the stored record, 400 on an empty, malformed or
// incomplete body.
func New[T any, I storage.Fields[T]](r Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		slog.Info("creating a " + r.Name)

		in, ok := bind[I](c)
		if !ok {
			return
		}

		record, err := r.Storage.Create(c.Request.Context(), in)
		if err != nil {
			slog.Error("error creating "+r.Name, slog.String("error", err.Error()))
			response.WriteError(c, statusFor(err), err)
			return
		}

		slog.Info(r.Name + " created")
		response.WriteJSON(c, http.StatusCreated, record)
	}
}

// Update handles PATCH /api/v1/{resource}/{id}.
// Every field is replaced from the body; there is no partial update.
// Responds 200 with the updated record, 404 if the id does not exist.
func Update[T any, I storage.Fields[T]](r Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		slog.Info("updating a "+r.Name, slog.Int64("id", id))

		in, ok := bind[I](c)
		if !ok {
			return
		}

		record, err := r.Storage.Update(c.Request.Context(), id, in)
		if err != nil {
			slog.Error("error updating "+r.Name,
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteError(c, statusFor(err), err)
			return
		}

		slog.Info(r.Name+" updated", slog.Int64("id", id))
		response.WriteJSON(c, http.StatusOK, record)
	}
}

// Delete handles DELETE /api/v1/{resource}/{id}.
// Responds with status and an empty body, 404 if the id does not exist.
// The status differs per resource (200 for most, 204 for students).
func Delete[T any](r Resource[T], status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		slog.Info("deleting a "+r.Name, slog.Int64("id", id))

		if err := r.Storage.Delete(c.Request.Context(), id); err != nil {
			slog.Error("error deleting "+r.Name,
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteError(c, statusFor(err), err)
			return
		}

		slog.Info(r.Name+" deleted", slog.Int64("id", id))
		c.Status(status)
	}
}

// parseID reads the {id} path segment. On failure it writes a 400 and
// reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, http.StatusBadRequest,
			errors.New("invalid id: must be an integer"))
		return 0, false
	}
	return id, true
}

// bind decodes and validates the JSON body into an I. On failure it
// writes a 400 and reports false. Unknown fields are ignored.
func bind[I any](c *gin.Context) (I, bool) {
	var in I

	err := c.ShouldBindJSON(&in)
	if errors.Is(err, io.EOF) {
		response.WriteError(c, http.StatusBadRequest, errors.New("request body is empty"))
		return in, false
	}
	if err != nil {
		response.WriteError(c, http.StatusBadRequest, err)
		return in, false
	}

	if err := validate.Struct(in); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ValidationError(validateErrs))
			return in, false
		}
		response.WriteError(c, http.StatusBadRequest, err)
		return in, false
	}

	return in, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
