package product_repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"LuckyStore/internal/domain/product"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lotteryColumns = []string{"id", "title", "description", "image", "price", "stock", "reserved", "digits", "is_active", "updated_at"}

func newRepo(t *testing.T, lotteryID string) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{
		db:        mock,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		lotteryID: lotteryID,
	}, mock
}

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("should load the latest active lottery with its special numbers", func(t *testing.T) {
		r, mock := newRepo(t, "")

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, title, description, image, price, stock, reserved, digits, is_active, updated_at FROM lotteries WHERE is_active = $1 ORDER BY updated_at DESC LIMIT 1`)).
			WithArgs(true).
			WillReturnRows(mock.NewRows(lotteryColumns).
				AddRow("ktm", "KTM 690", "UN JUGUETOTE!", "/img.png", 1600.0, 36800, 40, 5, true, updated))
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT position, number, has_winner FROM special_numbers WHERE lottery_id = $1 ORDER BY position`)).
			WithArgs("ktm").
			WillReturnRows(mock.NewRows([]string{"position", "number", "has_winner"}).
				AddRow(1, 34819, false).
				AddRow(2, 67398, true))

		p, err := r.Current(ctx)

		require.NoError(t, err)
		assert.Equal(t, "ktm", p.ID)
		assert.Equal(t, 1600.0, p.Price)
		assert.Equal(t, 40, p.Reserved)
		assert.Equal(t, 5, p.Digits)
		assert.Equal(t, updated, p.UpdatedAt)
		require.Len(t, p.SpecialNumbers, 2)
		assert.Equal(t, product.SpecialNumber{ID: 2, Number: 67398, HasWinner: true}, p.SpecialNumbers[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should select a configured lottery by id", func(t *testing.T) {
		r, mock := newRepo(t, "ktm")

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, title, description, image, price, stock, reserved, digits, is_active, updated_at FROM lotteries WHERE id = $1 LIMIT 1`)).
			WithArgs("ktm").
			WillReturnRows(mock.NewRows(lotteryColumns).
				AddRow("ktm", "KTM 690", "", "", 1600.0, 10, 0, 3, false, updated))
		mock.ExpectQuery(`SELECT position, number, has_winner FROM special_numbers`).
			WithArgs("ktm").
			WillReturnRows(mock.NewRows([]string{"position", "number", "has_winner"}))

		p, err := r.Current(ctx)

		require.NoError(t, err)
		assert.False(t, p.IsActive)
		assert.Empty(t, p.SpecialNumbers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should report a missing lottery as not found", func(t *testing.T) {
		r, mock := newRepo(t, "")

		mock.ExpectQuery(`SELECT (.+) FROM lotteries`).
			WithArgs(true).
			WillReturnError(pgx.ErrNoRows)

		_, err := r.Current(ctx)

		assert.ErrorIs(t, err, product.ErrNotFound)
	})

	t.Run("should wrap database failures as unavailable", func(t *testing.T) {
		r, mock := newRepo(t, "")

		mock.ExpectQuery(`SELECT (.+) FROM lotteries`).
			WithArgs(true).
			WillReturnError(errors.New("connection reset"))

		_, err := r.Current(ctx)

		assert.ErrorIs(t, err, product.ErrUnavailable)
	})
}

func TestCheckStock(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		available int
		quantity  int
		want      bool
	}{
		{name: "enough stock", available: 10, quantity: 4, want: true},
		{name: "exactly enough", available: 4, quantity: 4, want: true},
		{name: "not enough", available: 3, quantity: 4, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mock := newRepo(t, "ktm")

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT stock - reserved FROM lotteries WHERE id = $1 LIMIT 1`)).
				WithArgs("ktm").
				WillReturnRows(mock.NewRows([]string{"?column?"}).AddRow(tc.available))

			ok, err := r.CheckStock(ctx, tc.quantity)

			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestMemorySource(t *testing.T) {
	src := NewMemorySource()

	p, err := src.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "KTM 690 SMC R 2025", p.Title)
	assert.InDelta(t, 63.2, p.Progress(), 0.0001)
	assert.Equal(t, "34819", p.FormatNumber(p.SpecialNumbers[0].Number))

	p.SpecialNumbers[0].HasWinner = true
	again, _ := src.Current(context.Background())
	assert.False(t, again.SpecialNumbers[0].HasWinner)

	ok, err := src.CheckStock(context.Background(), 36801)
	require.NoError(t, err)
	assert.False(t, ok)
}
