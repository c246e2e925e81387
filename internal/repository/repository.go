// Package repository provides access to the catalog and credential stores.
// Two backends implement the same interfaces: PostgreSQL (production) and a
// mutex-guarded in-memory map (tests, or running without a database).
package repository

import (
	"context"

	"GameCatalogAPI/internal/model"
)

// ListFilter narrows a catalog query. Zero/nil fields are ignored; set
// fields combine with AND.
type ListFilter struct {
	Title    string // case-insensitive substring match
	Year     *int
	MinPrice *float64
	MaxPrice *float64
}

// Page selects one page of a query result. Number is 1-based; both fields
// are expected to be normalized by the caller.
type Page struct {
	Number int
	Size   int
}

func (p Page) offset() int {
	return (p.Number - 1) * p.Size
}

type GameRepository interface {
	Create(ctx context.Context, g *model.Game) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Game, error)
	// Update overwrites the full record. Returns apperr.ErrNotFound when
	// the id is absent.
	Update(ctx context.Context, g *model.Game) error
	Delete(ctx context.Context, id int64) error
	// Query returns one page of matching games ordered by id, plus the
	// total number of matches before paging.
	Query(ctx context.Context, f ListFilter, p Page) ([]model.Game, int, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (int64, error)
	// FindByEmail matches the email exactly and case-sensitively.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
