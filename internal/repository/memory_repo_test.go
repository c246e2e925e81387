package repository

import (
	"context"
	"sync"
	"testing"

	"GameCatalogAPI/internal/apperr"
	"GameCatalogAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestMemoryGameRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()

	id, err := repo.Create(ctx, &model.Game{Title: "Minecraft", Year: 2012, Price: 20})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	g, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Minecraft", g.Title)

	require.NoError(t, repo.Update(ctx, &model.Game{ID: id, Title: "Minecraft", Year: 2012, Price: 25}))
	g, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 25.0, g.Price)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, &model.Game{ID: id}), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), apperr.ErrNotFound)
}

func TestMemoryGameRepositoryConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, &model.Game{Title: "Game", Year: 2000, Price: 10})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryGameRepositoryQuery(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()

	games := []model.Game{
		{Title: "Call of Duty MW", Year: 2019, Price: 60},
		{Title: "Sea of Thieves", Year: 2018, Price: 40},
		{Title: "Minecraft", Year: 2012, Price: 20},
		{Title: "Minecraft Dungeons", Year: 2020, Price: 30},
	}
	for i := range games {
		_, err := repo.Create(ctx, &games[i])
		require.NoError(t, err)
	}

	page := Page{Number: 1, Size: 10}

	// case-insensitive substring on title
	list, total, err := repo.Query(ctx, ListFilter{Title: "minecraft"}, page)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)

	// conjunctive filters
	list, total, err = repo.Query(ctx, ListFilter{Title: "minecraft", Year: intPtr(2012)}, page)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Minecraft", list[0].Title)

	// price range
	list, total, err = repo.Query(ctx, ListFilter{MinPrice: floatPtr(30), MaxPrice: floatPtr(50)}, page)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)

	// no filter returns everything ordered by id
	list, total, err = repo.Query(ctx, ListFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, list, 4)
	assert.Equal(t, "Call of Duty MW", list[0].Title)
}

func TestMemoryGameRepositoryQueryPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()

	for i := 0; i < 15; i++ {
		_, err := repo.Create(ctx, &model.Game{Title: "Game", Year: 2000, Price: 10})
		require.NoError(t, err)
	}

	list, total, err := repo.Query(ctx, ListFilter{}, Page{Number: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, list, 5)

	// page past the end is empty, total still reported
	list, total, err = repo.Query(ctx, ListFilter{}, Page{Number: 5, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Empty(t, list)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	id, err := repo.Create(ctx, &model.User{Name: "Diego", Email: "diego@email.com", PasswordHash: "x"})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	u, err := repo.FindByEmail(ctx, "diego@email.com")
	require.NoError(t, err)
	assert.Equal(t, "Diego", u.Name)

	// exact, case-sensitive match
	_, err = repo.FindByEmail(ctx, "Diego@email.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
