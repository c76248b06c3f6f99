package product_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"LuckyStore/internal/domain/product"
	"LuckyStore/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgProductRepo serves the catalog from the lotteries and special_numbers
// tables. With an empty lotteryID the most recently updated active
// lottery is on sale.
type PgProductRepo struct {
	repo
}

func NewPgProductRepo(pg *postgres.Postgres, lotteryID string) *PgProductRepo {
	return &PgProductRepo{
		repo: repo{db: pg.Pool, builder: pg.Builder, lotteryID: lotteryID},
	}
}

type repo struct {
	db        postgres.Executor
	builder   squirrel.StatementBuilderType
	lotteryID string
}

func (r *repo) current(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if r.lotteryID != "" {
		return q.Where(squirrel.Eq{"id": r.lotteryID})
	}
	return q.Where(squirrel.Eq{"is_active": true}).OrderBy("updated_at DESC")
}

func (r *repo) Current(ctx context.Context) (product.Product, error) {
	query, args, err := r.current(
		r.builder.Select("id", "title", "description", "image", "price", "stock", "reserved", "digits", "is_active", "updated_at").
			From("lotteries"),
	).Limit(1).ToSql()
	if err != nil {
		return product.Product{}, fmt.Errorf("build lottery query: %w", err)
	}

	var (
		p         product.Product
		updatedAt time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.Price, &p.Stock, &p.Reserved, &p.Digits, &p.IsActive, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, fmt.Errorf("%w: query lottery: %w", product.ErrUnavailable, err)
	}
	p.UpdatedAt = updatedAt.UTC()

	p.SpecialNumbers, err = r.specialNumbers(ctx, p.ID)
	if err != nil {
		return product.Product{}, fmt.Errorf("%w: %w", product.ErrUnavailable, err)
	}
	return p, nil
}

func (r *repo) specialNumbers(ctx context.Context, lotteryID string) ([]product.SpecialNumber, error) {
	query, args, err := r.builder.Select("position", "number", "has_winner").
		From("special_numbers").
		Where(squirrel.Eq{"lottery_id": lotteryID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build special numbers query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query special numbers: %w", err)
	}
	defer rows.Close()

	var out []product.SpecialNumber
	for rows.Next() {
		var sn product.SpecialNumber
		if err := rows.Scan(&sn.ID, &sn.Number, &sn.HasWinner); err != nil {
			return nil, fmt.Errorf("scan special number: %w", err)
		}
		out = append(out, sn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate special numbers: %w", err)
	}
	return out, nil
}

// CheckStock compares the unreserved stock with quantity.
func (r *repo) CheckStock(ctx context.Context, quantity int) (bool, error) {
	query, args, err := r.current(
		r.builder.Select("stock - reserved").From("lotteries"),
	).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build stock query: %w", err)
	}

	var available int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, product.ErrNotFound
		}
		return false, fmt.Errorf("query stock: %w", err)
	}
	return available >= quantity, nil
}
