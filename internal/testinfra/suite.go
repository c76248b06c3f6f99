//go:build integration
// +build integration

package testinfra

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type TestSuite struct {
	Postgres *PostgresContainer
	Kafka    *KafkaContainer
}

type SuiteOptions struct {
	WithPostgres bool
	WithKafka    bool
}

// NewTestSuite starts the requested containers in parallel.
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{}
	var g errgroup.Group

	if opts.WithPostgres {
		g.Go(func() error {
			pg, err := NewPostgres(ctx)
			if err != nil {
				return fmt.Errorf("postgres: %w", err)
			}
			suite.Postgres = pg
			return nil
		})
	}

	if opts.WithKafka {
		g.Go(func() error {
			k, err := NewKafka(ctx)
			if err != nil {
				return fmt.Errorf("kafka: %w", err)
			}
			suite.Kafka = k
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		suite.Cleanup(ctx) // cleanup partially started containers
		return nil, errors.Join(errors.New("failed to start containers"), err)
	}

	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
	if s.Postgres != nil {
		s.Postgres.Cleanup(ctx)
	}
}
