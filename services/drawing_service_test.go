package services

import (
	"testing"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSheet(t *testing.T, svc *DrawingService, orgID, projectID string) (models.DrawingSet, models.DrawingSheet) {
	t.Helper()
	set, err := svc.CreateSet(orgID, projectID, dto.CreateDrawingSetRequest{
		Name: "Permit Set",
	})
	require.NoError(t, err)
	sheet, err := svc.CreateSheet(orgID, set.ID, dto.CreateSheetRequest{
		Number:     "A-101",
		Title:      "First Floor Plan",
		Discipline: "architectural",
	})
	require.NoError(t, err)
	return set, sheet
}

func seedVersion(t *testing.T, svc *DrawingService, sheetID string) models.SheetVersion {
	t.Helper()
	version, err := svc.repo.CreateVersion(models.SheetVersion{
		SheetID:    sheetID,
		Revision:   "A",
		FileName:   "A-101_revA.pdf",
		StorageKey: "drawings/test/A-101_revA.pdf",
		UploadedBy: newID(),
	})
	require.NoError(t, err)
	return version
}

func TestCreatePinLinkedEntityNeedsID(t *testing.T) {
	setupTestDB(t)
	svc := NewDrawingService()
	orgID, projectID := newID(), newID()
	_, sheet := seedSheet(t, svc, orgID, projectID)

	_, err := svc.CreatePin(orgID, projectID, sheet.ID, newID(), dto.CreatePinRequest{
		X: 0.5, Y: 0.5,
		LinkedEntity: "rfi",
	})
	assert.Error(t, err)

	rfiID := newID()
	pin, err := svc.CreatePin(orgID, projectID, sheet.ID, newID(), dto.CreatePinRequest{
		X: 0.5, Y: 0.5,
		Note:         "Verify beam pocket",
		LinkedEntity: "rfi",
		LinkedID:     &rfiID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PinStatusOpen, pin.Status)
}

func TestResolvePin(t *testing.T) {
	setupTestDB(t)
	svc := NewDrawingService()
	orgID, projectID := newID(), newID()
	_, sheet := seedSheet(t, svc, orgID, projectID)

	pin, err := svc.CreatePin(orgID, projectID, sheet.ID, newID(), dto.CreatePinRequest{
		X: 0.25, Y: 0.75, Note: "Missing dimension",
	})
	require.NoError(t, err)

	resolved, err := svc.UpdatePin(orgID, projectID, pin.ID, dto.UpdatePinRequest{
		X: 0.25, Y: 0.75, Note: pin.Note,
		Status: models.PinStatusResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PinStatusResolved, resolved.Status)
}

func TestPinSummaryCountsBySheet(t *testing.T) {
	setupTestDB(t)
	svc := NewDrawingService()
	orgID, projectID := newID(), newID()
	set, sheet := seedSheet(t, svc, orgID, projectID)

	for i := 0; i < 3; i++ {
		_, err := svc.CreatePin(orgID, projectID, sheet.ID, newID(), dto.CreatePinRequest{X: 0.1, Y: 0.1})
		require.NoError(t, err)
	}
	pin, err := svc.CreatePin(orgID, projectID, sheet.ID, newID(), dto.CreatePinRequest{X: 0.9, Y: 0.9})
	require.NoError(t, err)
	_, err = svc.UpdatePin(orgID, projectID, pin.ID, dto.UpdatePinRequest{X: 0.9, Y: 0.9, Status: models.PinStatusResolved})
	require.NoError(t, err)

	rows, err := svc.PinSummary(orgID, set.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A-101", rows[0].SheetNumber)
	assert.Equal(t, int64(3), rows[0].OpenPins)
	assert.Equal(t, int64(1), rows[0].Resolved)
}

func TestMarkupDeleteIsAuthorOnly(t *testing.T) {
	setupTestDB(t)
	svc := NewDrawingService()
	orgID, projectID := newID(), newID()
	_, sheet := seedSheet(t, svc, orgID, projectID)
	version := seedVersion(t, svc, sheet.ID)

	author := newID()
	markup, err := svc.CreateMarkup(orgID, projectID, version.ID, author, dto.CreateMarkupRequest{
		Geometry: []byte(`{"type":"cloud","points":[[0.1,0.1],[0.3,0.2]]}`),
		Color:    "#ff0000",
	})
	require.NoError(t, err)

	assert.Error(t, svc.DeleteMarkup(orgID, projectID, markup.ID, newID()))
	assert.NoError(t, svc.DeleteMarkup(orgID, projectID, markup.ID, author))
}

func TestGetSheetChecksSetOwnership(t *testing.T) {
	setupTestDB(t)
	svc := NewDrawingService()
	orgID, projectID := newID(), newID()
	_, sheet := seedSheet(t, svc, orgID, projectID)
	otherSet, err := svc.CreateSet(orgID, projectID, dto.CreateDrawingSetRequest{Name: "Bid Set"})
	require.NoError(t, err)

	_, err = svc.GetSheet(orgID, otherSet.ID, sheet.ID)
	assert.Error(t, err, "sheet must only resolve under its own set")

	_, err = svc.GetSheet(newID(), sheet.SetID, sheet.ID)
	assert.Error(t, err, "another org must not see the set")
}

func TestMarkupAndPinOpsScopedToOwningOrg(t *testing.T) {
	setupTestDB(t)
	svc := NewDrawingService()

	// victim tenant with a sheet, a version, a markup and a pin
	ownerOrg, ownerProject := newID(), newID()
	_, sheet := seedSheet(t, svc, ownerOrg, ownerProject)
	version := seedVersion(t, svc, sheet.ID)

	author := newID()
	markup, err := svc.CreateMarkup(ownerOrg, ownerProject, version.ID, author, dto.CreateMarkupRequest{
		Geometry: []byte(`{"type":"line","points":[[0,0],[1,1]]}`),
	})
	require.NoError(t, err)
	pin, err := svc.CreatePin(ownerOrg, ownerProject, sheet.ID, author, dto.CreatePinRequest{X: 0.5, Y: 0.5})
	require.NoError(t, err)

	// a caller from an unrelated org must not reach any of it
	otherOrg, otherProject := newID(), newID()

	_, err = svc.CreateMarkup(otherOrg, otherProject, version.ID, newID(), dto.CreateMarkupRequest{
		Geometry: []byte(`{"type":"line","points":[[0,0],[1,1]]}`),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.ListMarkups(otherOrg, otherProject, version.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteMarkup(otherOrg, otherProject, markup.ID, author), gorm.ErrRecordNotFound)

	_, err = svc.CreatePin(otherOrg, otherProject, sheet.ID, newID(), dto.CreatePinRequest{X: 0.1, Y: 0.1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.ListPins(otherOrg, otherProject, sheet.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.UpdatePin(otherOrg, otherProject, pin.ID, dto.UpdatePinRequest{X: 0.9, Y: 0.9, Status: models.PinStatusResolved})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeletePin(otherOrg, otherProject, pin.ID), gorm.ErrRecordNotFound)

	_, err = svc.VersionDownloadURL(otherOrg, otherProject, version.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the right project in the wrong org is still out of scope
	_, err = svc.ListPins(otherOrg, ownerProject, sheet.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// nothing was touched
	pins, err := svc.ListPins(ownerOrg, ownerProject, sheet.ID)
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, models.PinStatusOpen, pins[0].Status)
	markups, err := svc.ListMarkups(ownerOrg, ownerProject, version.ID)
	require.NoError(t, err)
	assert.Len(t, markups, 1)
}
