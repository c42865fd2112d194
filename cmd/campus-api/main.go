// main is the entry point of the campus-api application.
//
// RUNNING THE SERVER:
//
//	go run ./cmd/campus-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/campus-api serve
//
// @title       campus-api
// @version     1.0.0
// @description CRUD API over books, beverages, orders and students.
// @BasePath    /api/v1
package main

import "github.com/aanand-mishra/campus-api/internal/cmd"

func main() {
	cmd.Execute()
}
