// Package router assembles the gin engine: middleware, the versioned
// resource routes and the supporting endpoints.
//
// Route table (under /api/v1):
//
//	GET    /books         GET    /beverages         GET    /orders         GET    /students
//	GET    /books/:id     GET    /beverages/:id     GET    /orders/:id     GET    /students/:id
//	POST   /books         POST   /beverages         POST   /orders         POST   /students
//	PATCH  /books/:id     PATCH  /beverages/:id                            PATCH  /students/:id
//	DELETE /books/:id     DELETE /beverages/:id     DELETE /orders/:id     DELETE /students/:id
//
// Plus GET /api/health and the Swagger UI at /swagger/index.html.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/aanand-mishra/campus-api/docs"
	"github.com/aanand-mishra/campus-api/internal/config"
	"github.com/aanand-mishra/campus-api/internal/http/handlers/beverage"
	"github.com/aanand-mishra/campus-api/internal/http/handlers/book"
	"github.com/aanand-mishra/campus-api/internal/http/handlers/order"
	"github.com/aanand-mishra/campus-api/internal/http/handlers/student"
	"github.com/aanand-mishra/campus-api/internal/http/middleware"
	"github.com/aanand-mishra/campus-api/internal/storage/database"
	"github.com/aanand-mishra/campus-api/internal/storage/gormstore"
	"github.com/aanand-mishra/campus-api/internal/types"
	"github.com/aanand-mishra/campus-api/internal/utils/response"
)

// BasePath prefixes every resource route.
const BasePath = "/api/v1"

// Version is reported by the health endpoint and the API docs.
const Version = "1.0.0"

// New builds the engine serving the whole API over db.
func New(cfg *config.Config, db *database.Database, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestLogger(log),
		gin.Recovery(),
		middleware.CORS(cfg.CORS),
	)

	r.GET("/api/health", health(db))

	docs.SwaggerInfo.BasePath = BasePath
	docs.SwaggerInfo.Version = Version
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group(BasePath, middleware.Session(db))

	books := gormstore.New[types.Book](db)
	{
		g := v1.Group("/books")
		g.GET("", book.GetList(books))
		g.GET("/:id", book.GetByID(books))
		g.POST("", book.New(books))
		g.PATCH("/:id", book.Update(books))
		g.DELETE("/:id", book.Delete(books))
	}

	beverages := gormstore.New[types.Beverage](db)
	{
		g := v1.Group("/beverages")
		g.GET("", beverage.GetList(beverages))
		g.GET("/:id", beverage.GetByID(beverages))
		g.POST("", beverage.New(beverages))
		g.PATCH("/:id", beverage.Update(beverages))
		g.DELETE("/:id", beverage.Delete(beverages))
	}

	orders := gormstore.New[types.Order](db)
	{
		g := v1.Group("/orders")
		g.GET("", order.GetList(orders))
		g.GET("/:id", order.GetByID(orders))
		g.POST("", order.New(orders))
		g.DELETE("/:id", order.Delete(orders))
	}

	students := gormstore.New[types.Student](db)
	{
		g := v1.Group("/students")
		g.GET("", student.GetList(students))
		g.GET("/:id", student.GetByID(students))
		g.POST("", student.New(students))
		g.PATCH("/:id", student.Update(students))
		g.DELETE("/:id", student.Delete(students))
	}

	return r
}

// health reports whether the database answers a ping.
func health(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Status: response.StatusError,
				Error:  "database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  response.StatusOK,
			"service": "campus-api",
			"version": Version,
		})
	}
}
