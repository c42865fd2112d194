// Package student contains all HTTP handlers related to the Student resource.
//
// Students differ from the other resources in two ways:
//
//   - the id is chosen by the client on create (types.NewStudentInput);
//   - a successful delete answers 204 No Content instead of 200.
package student

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aanand-mishra/campus-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/types"
)

func students(s storage.Storage[types.Student]) resource.Resource[types.Student] {
	return resource.Resource[types.Student]{Name: "student", Storage: s}
}

// GetList handles GET /api/v1/students
// Returns a JSON array of all students in the database.
//
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} types.Student
// @Failure 500 {object} response.Response
// @Router /students [get]
func GetList(s storage.Storage[types.Student]) gin.HandlerFunc {
	return resource.GetList(students(s))
}

// GetByID handles GET /api/v1/students/{id}
// Fetches a single student by primary key; null if there is none.
//
// @Summary Get a student
// @Description Responds null when no student has the id.
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} types.Student
// @Failure 400 {object} response.Response
// @Router /students/{id} [get]
func GetByID(s storage.Storage[types.Student]) gin.HandlerFunc {
	return resource.GetByID(students(s))
}

// New handles POST /api/v1/students
//
// Request body (JSON):
//
//	{ "id": 5, "name": "Rakesh", "lastname": "Kumar", "dob": "2001-04-12",
//	  "gender": "m", "email": "rakesh@test.com" }
//
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param input body types.NewStudentInput true "Student"
// @Success 201 {object} types.Student
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response "id already taken"
// @Router /students [post]
func New(s storage.Storage[types.Student]) gin.HandlerFunc {
	return resource.New[types.Student, types.NewStudentInput](students(s))
}

// Update handles PATCH /api/v1/students/{id}
// Replaces ALL fields of an existing student except the id.
//
// @Summary Replace every field of a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param input body types.StudentInput true "Student"
// @Success 200 {object} types.Student
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /students/{id} [patch]
func Update(s storage.Storage[types.Student]) gin.HandlerFunc {
	return resource.Update[types.Student, types.StudentInput](students(s))
}

// Delete handles DELETE /api/v1/students/{id}
// Permanently removes a student record and answers 204 No Content.
//
// @Summary Delete a student
// @Tags students
// @Param id path int true "Student ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /students/{id} [delete]
func Delete(s storage.Storage[types.Student]) gin.HandlerFunc {
	return resource.Delete(students(s), http.StatusNoContent)
}
