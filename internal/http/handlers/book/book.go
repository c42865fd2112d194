// Package book contains the HTTP handlers for the Book resource.
package book

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/types"
)

func books(s storage.Storage[types.Book]) resource.Resource[types.Book] {
	return resource.Resource[types.Book]{Name: "book", Storage: s}
}

// GetList godoc
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} types.Book
// @Failure 500 {object} response.Response
// @Router /books [get]
func GetList(s storage.Storage[types.Book]) gin.HandlerFunc {
	return resource.GetList(books(s))
}

// GetByID godoc
// @Summary Get a book
// @Description Responds null when no book has the id.
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} types.Book
// @Failure 400 {object} response.Response
// @Router /books/{id} [get]
func GetByID(s storage.Storage[types.Book]) gin.HandlerFunc {
	return resource.GetByID(books(s))
}

// New godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param input body types.BookInput true "Book"
// @Success 201 {object} types.Book
// @Failure 400 {object} response.Response
// @Router /books [post]
func New(s storage.Storage[types.Book]) gin.HandlerFunc {
	return resource.New[types.Book, types.BookInput](books(s))
}

// Update godoc
// @Summary Replace every field of a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param input body types.BookInput true "Book"
// @Success 200 {object} types.Book
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [patch]
func Update(s storage.Storage[types.Book]) gin.HandlerFunc {
	return resource.Update[types.Book, types.BookInput](books(s))
}

// Delete godoc
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book ID"
// @Success 200
// @Failure 404 {object} response.Response
// @Router /books/{id} [delete]
func Delete(s storage.Storage[types.Book]) gin.HandlerFunc {
	return resource.Delete(books(s), http.StatusOK)
}
