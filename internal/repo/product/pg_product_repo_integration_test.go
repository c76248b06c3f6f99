//go:build integration
// +build integration

package product_repo_test

import (
	"context"
	"testing"

	"LuckyStore/internal/domain/product"
	product_repo "LuckyStore/internal/repo/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgProductRepo_SeededLottery(t *testing.T) {
	ctx := context.Background()
	repo := product_repo.NewPgProductRepo(pg.Pool, "")

	p, err := repo.Current(ctx)

	require.NoError(t, err)
	assert.Equal(t, "ktm-690-smc-r-2025", p.ID)
	assert.Equal(t, 1600.0, p.Price)
	assert.Equal(t, 5, p.Digits)
	require.Len(t, p.SpecialNumbers, 10)
	assert.Equal(t, 34819, p.SpecialNumbers[0].Number)
	assert.Equal(t, 16942, p.SpecialNumbers[9].Number)

	ok, err := repo.CheckStock(ctx, 36800)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPgProductRepo_Selection(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	_, err := pg.Pool.Pool.Exec(ctx, `
		INSERT INTO lotteries (id, title, price, stock, reserved, digits, is_active, updated_at) VALUES
			('old',      'Old draw',      1000, 500, 0,   3, TRUE,  NOW() - INTERVAL '2 days'),
			('new',      'New draw',      2500, 100, 98,  3, TRUE,  NOW() - INTERVAL '1 day'),
			('inactive', 'Inactive draw', 3000, 900, 0,   3, FALSE, NOW());
		INSERT INTO special_numbers (lottery_id, position, number, has_winner) VALUES
			('new', 2, 77, TRUE),
			('new', 1, 5, FALSE);
	`)
	require.NoError(t, err)

	t.Run("should pick the latest active lottery", func(t *testing.T) {
		p, err := product_repo.NewPgProductRepo(pg.Pool, "").Current(ctx)

		require.NoError(t, err)
		assert.Equal(t, "new", p.ID)
		assert.Equal(t, 98, p.Reserved)
		assert.Equal(t, []product.SpecialNumber{
			{ID: 1, Number: 5},
			{ID: 2, Number: 77, HasWinner: true},
		}, p.SpecialNumbers)
	})

	t.Run("should subtract reserved numbers from stock", func(t *testing.T) {
		repo := product_repo.NewPgProductRepo(pg.Pool, "")

		ok, err := repo.CheckStock(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.CheckStock(ctx, 3)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should serve a configured lottery even when inactive", func(t *testing.T) {
		p, err := product_repo.NewPgProductRepo(pg.Pool, "inactive").Current(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Inactive draw", p.Title)
		assert.False(t, p.IsActive)
	})

	t.Run("should report an unknown lottery", func(t *testing.T) {
		_, err := product_repo.NewPgProductRepo(pg.Pool, "missing").Current(ctx)

		assert.ErrorIs(t, err, product.ErrNotFound)
	})
}
