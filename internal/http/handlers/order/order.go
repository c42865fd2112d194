// Package order contains the HTTP handlers for the Order resource.
//
// Orders can be created, read and deleted but not updated: there is no
// Update handler and no PATCH route.
package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/types"
)

func orders(s storage.Storage[types.Order]) resource.Resource[types.Order] {
	return resource.Resource[types.Order]{Name: "order", Storage: s}
}

// GetList godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} types.Order
// @Failure 500 {object} response.Response
// @Router /orders [get]
func GetList(s storage.Storage[types.Order]) gin.HandlerFunc {
	return resource.GetList(orders(s))
}

// GetByID godoc
// @Summary Get an order
// @Description Responds null when no order has the id.
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} types.Order
// @Failure 400 {object} response.Response
// @Router /orders/{id} [get]
func GetByID(s storage.Storage[types.Order]) gin.HandlerFunc {
	return resource.GetByID(orders(s))
}

// New godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body types.OrderInput true "Order"
// @Success 201 {object} types.Order
// @Failure 400 {object} response.Response
// @Router /orders [post]
func New(s storage.Storage[types.Order]) gin.HandlerFunc {
	return resource.New[types.Order, types.OrderInput](orders(s))
}

// Delete godoc
// @Summary Delete an order
// @Tags orders
// @Param id path int true "Order ID"
// @Success 200
// @Failure 404 {object} response.Response
// @Router /orders/{id} [delete]
func Delete(s storage.Storage[types.Order]) gin.HandlerFunc {
	return resource.Delete(orders(s), http.StatusOK)
}
