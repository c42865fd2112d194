package gormstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aanand-mishra/campus-api/internal/config"
	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/storage/database"
	"github.com/aanand-mishra/campus-api/internal/types"
)

func setupDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.New(&config.Config{
		Env: "prod",
		Storage: config.Storage{
			Driver:       config.DriverSQLite,
			DSN:          filepath.Join(t.TempDir(), "campus.db"),
			MaxOpenConns: 4,
			MaxIdleConns: 2,
		},
	})
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

func dune() types.BookInput {
	return types.BookInput{
		Title:       ptr("Dune"),
		Author:      ptr("Frank Herbert"),
		Year:        ptr(1965),
		IsPublished: ptr(true),
		Detail:      ptr("desert planet"),
		Info:        ptr("first novel"),
		Category:    ptr("sf"),
	}
}

func TestBookRoundTrip(t *testing.T) {
	s := New[types.Book](setupDB(t))
	ctx := context.Background()

	created, err := s.Create(ctx, dune())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("expected the created book, got nil")
	}
	if *got != *created {
		t.Fatalf("read back %+v, created %+v", *got, *created)
	}
}

func TestGetByIDMissing(t *testing.T) {
	s := New[types.Book](setupDB(t))

	got, err := s.GetByID(context.Background(), 999999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", *got)
	}
}

func TestUpdateOverwritesEveryField(t *testing.T) {
	s := New[types.Book](setupDB(t))
	ctx := context.Background()

	created, err := s.Create(ctx, dune())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Zero values must be written too.
	in := types.BookInput{
		Title:       ptr(""),
		Author:      ptr("Someone Else"),
		Year:        ptr(0),
		IsPublished: ptr(false),
		Detail:      ptr(""),
		Info:        ptr("second"),
		Category:    ptr("other"),
	}
	updated, err := s.Update(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := types.Book{ID: created.ID, Author: "Someone Else", Info: "second", Category: "other"}
	if *updated != want {
		t.Fatalf("Update returned %+v, want %+v", *updated, want)
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v %v", got, err)
	}
	if *got != want {
		t.Fatalf("stored %+v, want %+v", *got, want)
	}
}

func TestUpdateMissing(t *testing.T) {
	s := New[types.Book](setupDB(t))

	_, err := s.Update(context.Background(), 42, dune())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := New[types.Beverage](setupDB(t))
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"Tea", "Coffee", "Juice"} {
		b, err := s.Create(ctx, types.BeverageInput{Name: ptr(name), Price: ptr(3), Detail: ptr("")})
		if err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
		ids = append(ids, b.ID)
	}

	if err := s.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := s.GetByID(ctx, ids[1])
	if err != nil || got != nil {
		t.Fatalf("expected deleted beverage to be absent, got %v %v", got, err)
	}

	list, err := s.GetList(ctx)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if len(list) != 2 || list[0].ID != ids[0] || list[1].ID != ids[2] {
		t.Fatalf("unexpected list after delete: %+v", list)
	}

	if err := s.Delete(ctx, ids[1]); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestGetListEmpty(t *testing.T) {
	s := New[types.Order](setupDB(t))

	list, err := s.GetList(context.Background())
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected an empty non-nil list, got %#v", list)
	}
}

func TestStudentClientAssignedID(t *testing.T) {
	s := New[types.Student](setupDB(t))
	ctx := context.Background()

	in := types.NewStudentInput{
		ID: ptr(int64(5)),
		StudentInput: types.StudentInput{
			Name:     ptr("Rakesh"),
			Lastname: ptr("Kumar"),
			DOB:      ptr("2001-04-12"),
			Gender:   ptr("m"),
			Email:    ptr("rakesh@test.com"),
		},
	}
	created, err := s.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5, got %d", created.ID)
	}

	if _, err := s.Create(ctx, in); err == nil {
		t.Fatal("expected an error for a duplicate id")
	}

	updated, err := s.Update(ctx, 5, types.StudentInput{
		Name:     ptr("Rakesh"),
		Lastname: ptr("Sharma"),
		DOB:      ptr("2001-04-12"),
		Gender:   ptr("m"),
		Email:    ptr("rakesh@campus.edu"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != 5 || updated.Lastname != "Sharma" {
		t.Fatalf("unexpected update result %+v", *updated)
	}
}

func TestScopedSessionIsUsed(t *testing.T) {
	db := setupDB(t)
	s := New[types.Book](db)

	session, err := db.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	ctx := database.WithSession(context.Background(), session)

	created, err := s.Create(ctx, dune())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Update(ctx, created.ID, dune()); err != nil {
		t.Fatalf("Update in session: %v", err)
	}
	if got := db.Stats().InUse; got != 1 {
		t.Fatalf("expected only the pinned connection in use, got %d", got)
	}

	if err := session.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if got := db.Stats().InUse; got != 0 {
		t.Fatalf("expected 0 connections in use, got %d", got)
	}
}
