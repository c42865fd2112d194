// Package beverage contains the HTTP handlers for the Beverage resource.
package beverage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/types"
)

func beverages(s storage.Storage[types.Beverage]) resource.Resource[types.Beverage] {
	return resource.Resource[types.Beverage]{Name: "beverage", Storage: s}
}

// GetList godoc
// @Summary List beverages
// @Tags beverages
// @Produce json
// @Success 200 {array} types.Beverage
// @Failure 500 {object} response.Response
// @Router /beverages [get]
func GetList(s storage.Storage[types.Beverage]) gin.HandlerFunc {
	return resource.GetList(beverages(s))
}

// GetByID godoc
// @Summary Get a beverage
// @Description Responds null when no beverage has the id.
// @Tags beverages
// @Produce json
// @Param id path int true "Beverage ID"
// @Success 200 {object} types.Beverage
// @Failure 400 {object} response.Response
// @Router /beverages/{id} [get]
func GetByID(s storage.Storage[types.Beverage]) gin.HandlerFunc {
	return resource.GetByID(beverages(s))
}

// New godoc
// @Summary Create a beverage
// @Tags beverages
// @Accept json
// @Produce json
// @Param input body types.BeverageInput true "Beverage"
// @Success 201 {object} types.Beverage
// @Failure 400 {object} response.Response
// @Router /beverages [post]
func New(s storage.Storage[types.Beverage]) gin.HandlerFunc {
	return resource.New[types.Beverage, types.BeverageInput](beverages(s))
}

// Update godoc
// @Summary Replace every field of a beverage
// @Tags beverages
// @Accept json
// @Produce json
// @Param id path int true "Beverage ID"
// @Param input body types.BeverageInput true "Beverage"
// @Success 200 {object} types.Beverage
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /beverages/{id} [patch]
func Update(s storage.Storage[types.Beverage]) gin.HandlerFunc {
	return resource.Update[types.Beverage, types.BeverageInput](beverages(s))
}

// Delete godoc
// @Summary Delete a beverage
// @Tags beverages
// @Param id path int true "Beverage ID"
// @Success 200
// @Failure 404 {object} response.Response
// @Router /beverages/{id} [delete]
func Delete(s storage.Storage[types.Beverage]) gin.HandlerFunc {
	return resource.Delete(beverages(s), http.StatusOK)
}
