// Package types holds the records and request bodies of every resource.
// It imports nothing from the application, so handlers and storage can
// both depend on it.
//
// Every resource has two shapes:
//
//  1. The record (Book, Beverage, Order, Student): one row of its table.
//     gorm:"..." tags describe the column, json:"..." tags the API field.
//
//  2. The input (BookInput, ...): what a client sends on POST / PATCH.
//     Every field is a pointer so that a MISSING field (nil) can be told
//     apart from a zero value such as false, 0 or "". validate:"required"
//     on a pointer only checks that the field was present.
package types

// ─────────────────────────────────────────────────────────────────────────────
// Book
// ─────────────────────────────────────────────────────────────────────────────

// Book is a row of the books table. The id is assigned by the database.
type Book struct {
	ID          int64  `gorm:"primaryKey"  json:"id"`
	Title       string `gorm:"index"       json:"title"`
	Author      string `gorm:"index"       json:"author"`
	Year        int    `gorm:"index"       json:"year"`
	IsPublished bool   `gorm:"index"       json:"is_published"`
	Detail      string `gorm:"index"       json:"detail"`
	Info        string `gorm:"index"       json:"info"`
	Category    string `gorm:"index"       json:"category"`
}

// TableName pins the table name instead of relying on gorm's pluralizer.
func (Book) TableName() string { return "books" }

// BookInput is the request body for POST /books and PATCH /books/{id}.
type BookInput struct {
	Title       *string `json:"title"        validate:"required"`
	Author      *string `json:"author"       validate:"required"`
	Year        *int    `json:"year"         validate:"required"`
	IsPublished *bool   `json:"is_published" validate:"required"`
	Detail      *string `json:"detail"       validate:"required"`
	Info        *string `json:"info"         validate:"required"`
	Category    *string `json:"category"     validate:"required"`
}

// Apply overwrites every field of b. The id is left untouched.
// The input must have passed validation (no nil fields).
func (in BookInput) Apply(b *Book) {
	b.Title = *in.Title
	b.Author = *in.Author
	b.Year = *in.Year
	b.IsPublished = *in.IsPublished
	b.Detail = *in.Detail
	b.Info = *in.Info
	b.Category = *in.Category
}

// ─────────────────────────────────────────────────────────────────────────────
// Beverage
// ─────────────────────────────────────────────────────────────────────────────

// Beverage is a row of the beverages table.
type Beverage struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"index"      json:"name"`
	Price  int    `gorm:"index"      json:"price"`
	Detail string `gorm:"index"      json:"detail"`
}

func (Beverage) TableName() string { return "beverages" }

// BeverageInput is the request body for POST /beverages and PATCH /beverages/{id}.
type BeverageInput struct {
	Name   *string `json:"name"   validate:"required"`
	Price  *int    `json:"price"  validate:"required"`
	Detail *string `json:"detail" validate:"required"`
}

func (in BeverageInput) Apply(b *Beverage) {
	b.Name = *in.Name
	b.Price = *in.Price
	b.Detail = *in.Detail
}

// ─────────────────────────────────────────────────────────────────────────────
// Order
// ─────────────────────────────────────────────────────────────────────────────

// Order is a row of the orders table. Orders have no update endpoint.
type Order struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"index"      json:"name"`
	Price  int    `gorm:"index"      json:"price"`
	Amount int    `gorm:"index"      json:"amount"`
	PS     string `gorm:"column:ps;index" json:"ps"`
}

func (Order) TableName() string { return "orders" }

// OrderInput is the request body for POST /orders.
type OrderInput struct {
	Name   *string `json:"name"   validate:"required"`
	Price  *int    `json:"price"  validate:"required"`
	Amount *int    `json:"amount" validate:"required"`
	PS     *string `json:"ps"     validate:"required"`
}

func (in OrderInput) Apply(o *Order) {
	o.Name = *in.Name
	o.Price = *in.Price
	o.Amount = *in.Amount
	o.PS = *in.PS
}

// ─────────────────────────────────────────────────────────────────────────────
// Student
// ─────────────────────────────────────────────────────────────────────────────

// Student is a row of the students table.
//
// Unlike the other resources the id is chosen by the client on create,
// so auto-increment is switched off for the column. dob and email are
// stored as plain strings and are not checked for format.
type Student struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"index" json:"name"`
	Lastname string `gorm:"index" json:"lastname"`
	DOB      string `gorm:"column:dob;index" json:"dob"`
	Gender   string `gorm:"index" json:"gender"`
	Email    string `gorm:"index" json:"email"`
}

func (Student) TableName() string { return "students" }

// StudentInput is the request body for PATCH /students/{id}.
// The id comes from the path and can not be changed.
type StudentInput struct {
	Name     *string `json:"name"     validate:"required"`
	Lastname *string `json:"lastname" validate:"required"`
	DOB      *string `json:"dob"      validate:"required"`
	Gender   *string `json:"gender"   validate:"required"`
	Email    *string `json:"email"    validate:"required"`
}

func (in StudentInput) Apply(s *Student) {
	s.Name = *in.Name
	s.Lastname = *in.Lastname
	s.DOB = *in.DOB
	s.Gender = *in.Gender
	s.Email = *in.Email
}

// NewStudentInput is the request body for POST /students: the student
// fields plus the client-assigned id.
type NewStudentInput struct {
	ID *int64 `json:"id" validate:"required"`
	StudentInput
}

func (in NewStudentInput) Apply(s *Student) {
	s.ID = *in.ID
	in.StudentInput.Apply(s)
}
