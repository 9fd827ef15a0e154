package services

import (
	"testing"
	"time"

	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveNumberSequencesPerOrg(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceNumberService()
	orgA, orgB := newID(), newID()

	first, err := svc.ReserveNumber(orgA)
	require.NoError(t, err)
	second, err := svc.ReserveNumber(orgA)
	require.NoError(t, err)
	other, err := svc.ReserveNumber(orgB)
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", first.Number)
	assert.Equal(t, "INV-0002", second.Number)
	assert.Equal(t, "INV-0001", other.Number) // counters are per org
	assert.True(t, first.ExpiresAt.After(time.Now()))
}

func TestReleaseNumberIsIdempotent(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceNumberService()
	orgID := newID()

	reserved, err := svc.ReserveNumber(orgID)
	require.NoError(t, err)

	require.NoError(t, svc.ReleaseNumber(orgID, reserved.Number))
	require.NoError(t, svc.ReleaseNumber(orgID, reserved.Number))
	require.NoError(t, svc.ReleaseNumber(orgID, "INV-9999")) // unknown is a no-op too
}

func TestConsumeNumberTransitions(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceNumberService()
	orgID := newID()

	reserved, err := svc.ReserveNumber(orgID)
	require.NoError(t, err)

	require.NoError(t, svc.ConsumeNumber(orgID, reserved.Number))

	// consumed numbers cannot be consumed again or released back
	assert.Error(t, svc.ConsumeNumber(orgID, reserved.Number))
	require.NoError(t, svc.ReleaseNumber(orgID, reserved.Number))

	repo := repositories.NewInvoiceRepository()
	res, err := repo.FindReservation(orgID, reserved.Number)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConsumed, res.Status)
}

func TestConsumeReleasedNumberRejected(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceNumberService()
	orgID := newID()

	reserved, err := svc.ReserveNumber(orgID)
	require.NoError(t, err)
	require.NoError(t, svc.ReleaseNumber(orgID, reserved.Number))

	assert.Error(t, svc.ConsumeNumber(orgID, reserved.Number))
	assert.Error(t, svc.ConsumeNumber(orgID, "INV-4242"))
}

func TestAbandonedReservationsSurfaceAsStale(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceNumberService()
	orgID := newID()

	reserved, err := svc.ReserveNumber(orgID)
	require.NoError(t, err)

	repo := repositories.NewInvoiceRepository()
	stale, err := repo.ExpireStaleReservations(time.Now().Add(48 * time.Hour))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, reserved.Number, stale[0].Number)

	// a consumed number is not a leak
	require.NoError(t, svc.ConsumeNumber(orgID, reserved.Number))
	stale, err = repo.ExpireStaleReservations(time.Now().Add(48 * time.Hour))
	require.NoError(t, err)
	assert.Empty(t, stale)
}
