package database_test

import (
	"context"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres spins up a throwaway postgres container and points the global
// handle at it. Gated behind TEST_PG_INTEGRATION so the default test run stays
// docker-free.
func startPostgres(t *testing.T) {
	t.Helper()
	if testing.Short() || os.Getenv("TEST_PG_INTEGRATION") == "" {
		t.Skip("set TEST_PG_INTEGRATION=1 to run postgres integration tests")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("sitebeam_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database.Initialize(dsn)
}

func TestMigrationsCreateSchema(t *testing.T) {
	startPostgres(t)

	for _, model := range database.AllModels() {
		assert.True(t, database.DB.Migrator().HasTable(model), "missing table for %T", model)
	}
}

// Concurrent reservations must never hand out the same sequence. This only
// proves anything against a real postgres, where the counter row lock applies.
func TestCounterHandsOutDistinctSequences(t *testing.T) {
	startPostgres(t)

	repo := repositories.NewInvoiceRepository()
	orgID := "7b8a4f6e-1d9c-4f1a-9a61-2f0f6c2d9b10"

	const workers = 8
	seqs := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, seq, err := repo.NextCounterValue(orgID)
			assert.NoError(t, err)
			seqs[i] = seq
		}(i)
	}
	wg.Wait()

	sort.Ints(seqs)
	for i := 0; i < workers; i++ {
		assert.Equal(t, i+1, seqs[i], "sequence %d duplicated or skipped", i+1)
	}

	var counter models.InvoiceCounter
	require.NoError(t, database.DB.First(&counter, "org_id = ?", orgID).Error)
	assert.Equal(t, workers+1, counter.NextSeq)
	assert.Equal(t, "INV", counter.Prefix)
}
