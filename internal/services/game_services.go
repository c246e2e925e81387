package services

import (
	"context"
	"strings"

	"GameCatalogAPI/internal/model"
	"GameCatalogAPI/internal/repository"
	"GameCatalogAPI/internal/validation"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type GameService struct {
	Repo repository.GameRepository
}

func NewGameService(r repository.GameRepository) *GameService {
	return &GameService{Repo: r}
}

// GameList is the paginated response envelope for the listing endpoint.
type GameList struct {
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
	Data       []model.Game `json:"data"`
}

func (s *GameService) Create(ctx context.Context, p validation.GamePayload) (int64, error) {
	if err := validation.ValidateGame(p, false); err != nil {
		return 0, err
	}
	g := &model.Game{
		Title: strings.TrimSpace(*p.Title),
		Year:  *p.Year,
		Price: *p.Price,
	}
	return s.Repo.Create(ctx, g)
}

func (s *GameService) Get(ctx context.Context, id int64) (*model.Game, error) {
	return s.Repo.FindByID(ctx, id)
}

// List returns one page of the catalog. Page defaults to 1, perPage to
// DefaultPerPage clamped to [1, MaxPerPage]; pass zero for either to get
// the default.
func (s *GameService) List(ctx context.Context, f repository.ListFilter, page, perPage int) (*GameList, error) {
	if page < 1 {
		page = 1
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	items, total, err := s.Repo.Query(ctx, f, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &GameList{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       items,
	}, nil
}

// Update applies a partial payload: only fields present in the payload
// overwrite the stored record.
func (s *GameService) Update(ctx context.Context, id int64, p validation.GamePayload) error {
	if err := validation.ValidateGame(p, true); err != nil {
		return err
	}
	g, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Title != nil {
		g.Title = strings.TrimSpace(*p.Title)
	}
	if p.Year != nil {
		g.Year = *p.Year
	}
	if p.Price != nil {
		g.Price = *p.Price
	}
	return s.Repo.Update(ctx, g)
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
