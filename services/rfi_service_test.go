package services

import (
	"testing"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRfiNumbersPerProject(t *testing.T) {
	setupTestDB(t)
	svc := NewRfiService()
	orgID := newID()
	projectA, projectB := newID(), newID()

	first, err := svc.CreateRfi(orgID, projectA, dto.CreateRfiRequest{
		Subject:  "Footing depth at grid B2",
		Question: "Drawings show 18in, soils report calls for 24in. Which governs?",
	})
	require.NoError(t, err)
	second, err := svc.CreateRfi(orgID, projectA, dto.CreateRfiRequest{
		Subject:  "Window head height",
		Question: "Confirm 6'-8\" head height on the north elevation.",
	})
	require.NoError(t, err)
	other, err := svc.CreateRfi(orgID, projectB, dto.CreateRfiRequest{
		Subject:  "Panel schedule",
		Question: "Is the sub-panel 100A or 125A?",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 1, other.Number) // numbering restarts per project
	assert.Equal(t, models.RfiStatusDraft, first.Status)
}

func TestAnsweringOpenRfiMarksItAnswered(t *testing.T) {
	setupTestDB(t)
	svc := NewRfiService()
	orgID, projectID := newID(), newID()

	rfi, err := svc.CreateRfi(orgID, projectID, dto.CreateRfiRequest{
		Subject:  "Footing depth",
		Question: "Which detail governs?",
	})
	require.NoError(t, err)

	opened, err := svc.UpdateRfi(orgID, projectID, rfi.ID, dto.UpdateRfiRequest{
		Subject:  rfi.Subject,
		Question: rfi.Question,
		Status:   models.RfiStatusOpen,
	})
	require.NoError(t, err)
	require.Equal(t, models.RfiStatusOpen, opened.Status)

	answered, err := svc.UpdateRfi(orgID, projectID, rfi.ID, dto.UpdateRfiRequest{
		Subject:  rfi.Subject,
		Question: rfi.Question,
		Answer:   "Soils report governs, use 24in.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RfiStatusAnswered, answered.Status)
	assert.NotNil(t, answered.AnsweredAt)
}

func TestListOpenRfisForPortal(t *testing.T) {
	setupTestDB(t)
	svc := NewRfiService()
	orgID, projectID := newID(), newID()

	draft, err := svc.CreateRfi(orgID, projectID, dto.CreateRfiRequest{
		Subject: "Draft one", Question: "q",
	})
	require.NoError(t, err)

	open, err := svc.CreateRfi(orgID, projectID, dto.CreateRfiRequest{
		Subject: "Open one", Question: "q",
	})
	require.NoError(t, err)
	_, err = svc.UpdateRfi(orgID, projectID, open.ID, dto.UpdateRfiRequest{
		Subject: open.Subject, Question: open.Question, Status: models.RfiStatusOpen,
	})
	require.NoError(t, err)

	visible, err := svc.ListOpenRfisForPortal(orgID, projectID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, open.ID, visible[0].ID)
	assert.NotEqual(t, draft.ID, visible[0].ID)
}

func TestRfiScopedToOrgAndProject(t *testing.T) {
	setupTestDB(t)
	svc := NewRfiService()
	orgID, projectID := newID(), newID()

	rfi, err := svc.CreateRfi(orgID, projectID, dto.CreateRfiRequest{
		Subject: "Scoping", Question: "q",
	})
	require.NoError(t, err)

	_, err = svc.GetRfi(newID(), projectID, rfi.ID)
	assert.Error(t, err, "another org must not see the record")
	_, err = svc.GetRfi(orgID, newID(), rfi.ID)
	assert.Error(t, err, "another project must not see the record")
}
