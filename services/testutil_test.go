package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sitebeam/database"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the global handle at a fresh in-memory database
func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, database.InitializeTest())
}

func newID() string {
	return uuid.NewString()
}
