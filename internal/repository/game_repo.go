package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"GameCatalogAPI/internal/apperr"
	"GameCatalogAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresGameRepository struct {
	DB *pgxpool.Pool
}

func NewPostgresGameRepository(db *pgxpool.Pool) *PostgresGameRepository {
	return &PostgresGameRepository{DB: db}
}

func (r *PostgresGameRepository) Create(ctx context.Context, g *model.Game) (int64, error) {
	var id int64
	query := `INSERT INTO games (title, year, price) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, g.Title, g.Year, g.Price).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresGameRepository) FindByID(ctx context.Context, id int64) (*model.Game, error) {
	var g model.Game
	query := `SELECT id, title, year, price FROM games WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&g.ID, &g.Title, &g.Year, &g.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresGameRepository) Update(ctx context.Context, g *model.Game) error {
	query := `UPDATE games SET title=$1, year=$2, price=$3 WHERE id=$4`
	tag, err := r.DB.Exec(ctx, query, g.Title, g.Year, g.Price, g.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *PostgresGameRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM games WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *PostgresGameRepository) Query(ctx context.Context, f ListFilter, p Page) ([]model.Game, int, error) {
	where := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)

	if f.Title != "" {
		args = append(args, "%"+f.Title+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.Year != nil {
		args = append(args, *f.Year)
		where = append(where, fmt.Sprintf("year = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM games`+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, p.Size, p.offset())
	query := fmt.Sprintf(
		`SELECT id, title, year, price FROM games%s ORDER BY id LIMIT $%d OFFSET $%d`,
		cond, len(args)-1, len(args),
	)
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]model.Game, 0)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Year, &g.Price); err != nil {
			return nil, 0, err
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
