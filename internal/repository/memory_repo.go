package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"GameCatalogAPI/internal/apperr"
	"GameCatalogAPI/internal/model"
)

// MemoryGameRepository keeps the catalog in a mutex-guarded map. Used by
// tests and when no database DSN is configured.
type MemoryGameRepository struct {
	mu     sync.Mutex
	nextID int64
	games  map[int64]model.Game
}

func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{games: make(map[int64]model.Game)}
}

func (r *MemoryGameRepository) Create(_ context.Context, g *model.Game) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	g.ID = r.nextID
	r.games[g.ID] = *g
	return g.ID, nil
}

func (r *MemoryGameRepository) FindByID(_ context.Context, id int64) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &g, nil
}

func (r *MemoryGameRepository) Update(_ context.Context, g *model.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[g.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.games[g.ID] = *g
	return nil
}

func (r *MemoryGameRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.games, id)
	return nil
}

func (r *MemoryGameRepository) Query(_ context.Context, f ListFilter, p Page) ([]model.Game, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]model.Game, 0, len(r.games))
	for _, g := range r.games {
		if matches(f, g) {
			matched = append(matched, g)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := p.offset()
	if start >= total {
		return []model.Game{}, total, nil
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	page := make([]model.Game, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

func matches(f ListFilter, g model.Game) bool {
	if f.Title != "" && !strings.Contains(strings.ToLower(g.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Year != nil && g.Year != *f.Year {
		return false
	}
	if f.MinPrice != nil && g.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && g.Price > *f.MaxPrice {
		return false
	}
	return true
}

// MemoryUserRepository keeps users in a mutex-guarded map keyed by email.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *model.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	r.users[u.Email] = *u
	return u.ID, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &u, nil
}
