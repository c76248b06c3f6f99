//go:build integration
// +build integration

package product_repo_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"LuckyStore/internal/testinfra"
)

var pg *testinfra.PostgresContainer

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = testinfra.NewPostgres(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to start postgres container: %v", err))
	}

	code := m.Run()

	pg.Cleanup(ctx)
	os.Exit(code)
}
