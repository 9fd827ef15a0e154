package services

import (
	"testing"
	"time"

	"github.com/sitebeam/database"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickNextSigningRequest(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	req := func(id string, seq int, required bool, status models.SigningStatus, createdOffset time.Duration) models.SigningRequest {
		return models.SigningRequest{
			ID:        id,
			Sequence:  seq,
			Required:  required,
			Status:    status,
			CreatedAt: base.Add(createdOffset),
		}
	}

	tests := []struct {
		name     string
		requests []models.SigningRequest
		wantID   string // empty means nil
	}{
		{
			name:     "empty list",
			requests: nil,
			wantID:   "",
		},
		{
			name: "first pending in sequence order",
			requests: []models.SigningRequest{
				req("b", 2, true, models.SigningStatusPending, 0),
				req("a", 1, true, models.SigningStatusPending, 0),
			},
			wantID: "a",
		},
		{
			name: "signed requests are skipped",
			requests: []models.SigningRequest{
				req("a", 1, true, models.SigningStatusSigned, 0),
				req("b", 2, true, models.SigningStatusPending, 0),
			},
			wantID: "b",
		},
		{
			name: "optional requests are skipped",
			requests: []models.SigningRequest{
				req("a", 1, false, models.SigningStatusPending, 0),
				req("b", 2, true, models.SigningStatusPending, 0),
			},
			wantID: "b",
		},
		{
			name: "sent request is still the current one",
			requests: []models.SigningRequest{
				req("a", 1, true, models.SigningStatusSent, 0),
				req("b", 2, true, models.SigningStatusPending, 0),
			},
			wantID: "a",
		},
		{
			name: "sequence ties broken by creation time",
			requests: []models.SigningRequest{
				req("later", 1, true, models.SigningStatusPending, time.Minute),
				req("earlier", 1, true, models.SigningStatusPending, 0),
			},
			wantID: "earlier",
		},
		{
			name: "nil when every required request is terminal",
			requests: []models.SigningRequest{
				req("a", 1, true, models.SigningStatusSigned, 0),
				req("b", 2, true, models.SigningStatusDeclined, 0),
				req("c", 3, false, models.SigningStatusPending, 0),
			},
			wantID: "",
		},
		{
			name: "expired and voided count as terminal",
			requests: []models.SigningRequest{
				req("a", 1, true, models.SigningStatusExpired, 0),
				req("b", 2, true, models.SigningStatusVoided, 0),
			},
			wantID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickNextSigningRequest(tt.requests)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSendCreatesRequestsAndNotifiesFirst(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc := models.Document{
		OrgID:     orgID,
		Title:     "Subcontract Agreement",
		Status:    models.DocumentStatusDraft,
		CreatedBy: newID(),
	}
	require.NoError(t, database.DB.Create(&doc).Error)

	out, err := svc.Send(orgID, doc.ID, dto.SendDocumentRequest{
		Parties: []dto.SigningPartyInput{
			{Name: "Dana", Email: "dana@example.com", Sequence: 1},
			{Name: "Lee", Email: "lee@example.com", Sequence: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DocumentStatusOutForSignature, out.Status)
	require.Len(t, out.SigningRequests, 2)

	first, second := out.SigningRequests[0], out.SigningRequests[1]
	assert.Equal(t, models.SigningStatusSent, first.Status)
	require.NotNil(t, first.TokenHash)
	assert.NotNil(t, first.SentAt)
	assert.Equal(t, models.SigningStatusPending, second.Status)
	assert.Nil(t, second.TokenHash)

	var jobs []models.OutboxJob
	require.NoError(t, database.DB.Where("kind = ?", "signing.notify").Find(&jobs).Error)
	assert.Len(t, jobs, 1)
}

func TestSendRejectsNonDraftDocument(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc := models.Document{
		OrgID:     orgID,
		Title:     "Already routed",
		Status:    models.DocumentStatusOutForSignature,
		CreatedBy: newID(),
	}
	require.NoError(t, database.DB.Create(&doc).Error)

	_, err := svc.Send(orgID, doc.ID, dto.SendDocumentRequest{
		Parties: []dto.SigningPartyInput{{Name: "Dana", Email: "dana@example.com", Sequence: 1}},
	})
	assert.Error(t, err)
}

// seedSigningChain builds an out-for-signature document with the first
// request already sent under a known raw token.
func seedSigningChain(t *testing.T, orgID string, recipients ...string) (models.Document, []string) {
	t.Helper()

	doc := models.Document{
		OrgID:     orgID,
		Title:     "Owner Contract",
		Status:    models.DocumentStatusOutForSignature,
		CreatedBy: newID(),
	}
	require.NoError(t, database.DB.Create(&doc).Error)

	tokens := make([]string, len(recipients))
	for i, email := range recipients {
		req := models.SigningRequest{
			DocumentID:     doc.ID,
			Sequence:       i + 1,
			Required:       true,
			RecipientName:  email,
			RecipientEmail: email,
			Status:         models.SigningStatusPending,
		}
		if i == 0 {
			raw, err := utils.NewToken()
			require.NoError(t, err)
			hash := utils.HashToken(raw)
			now := time.Now()
			req.Status = models.SigningStatusSent
			req.TokenHash = &hash
			req.SentAt = &now
			tokens[0] = raw
		}
		require.NoError(t, database.DB.Create(&req).Error)
	}
	return doc, tokens
}

func TestCompleteAdvancesToNextRecipient(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc, tokens := seedSigningChain(t, orgID, "first@example.com", "second@example.com")

	err := svc.Complete(tokens[0], dto.SubmitSignatureRequest{Email: "first@example.com"})
	require.NoError(t, err)

	reloaded, err := svc.repo.FindByID(orgID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusOutForSignature, reloaded.Status)

	require.Len(t, reloaded.SigningRequests, 2)
	assert.Equal(t, models.SigningStatusSigned, reloaded.SigningRequests[0].Status)
	assert.NotNil(t, reloaded.SigningRequests[0].SignedAt)
	assert.Equal(t, models.SigningStatusSent, reloaded.SigningRequests[1].Status)
	assert.NotNil(t, reloaded.SigningRequests[1].TokenHash)
}

func TestCompleteFinalSignerCompletesDocument(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc, tokens := seedSigningChain(t, orgID, "only@example.com")

	err := svc.Complete(tokens[0], dto.SubmitSignatureRequest{Email: "only@example.com"})
	require.NoError(t, err)

	reloaded, err := svc.repo.FindByID(orgID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusCompleted, reloaded.Status)
}

func TestCompleteEmailMismatchReadsAsNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc, tokens := seedSigningChain(t, orgID, "real@example.com")

	err := svc.Complete(tokens[0], dto.SubmitSignatureRequest{Email: "attacker@example.com"})
	assert.Error(t, err)

	// nothing changed
	reloaded, err := svc.repo.FindByID(orgID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusOutForSignature, reloaded.Status)
	assert.Equal(t, models.SigningStatusSent, reloaded.SigningRequests[0].Status)
}

func TestCompleteUnknownTokenFails(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()

	err := svc.Complete("not-a-real-token", dto.SubmitSignatureRequest{Email: "x@example.com"})
	assert.Error(t, err)
}

func TestDeclineRequiredSignerVoidsDocument(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc, tokens := seedSigningChain(t, orgID, "only@example.com")

	err := svc.Decline(tokens[0], dto.SubmitSignatureRequest{Email: "only@example.com"})
	require.NoError(t, err)

	reloaded, err := svc.repo.FindByID(orgID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusVoided, reloaded.Status)
	assert.Equal(t, models.SigningStatusDeclined, reloaded.SigningRequests[0].Status)
}

func TestVoidExpiresOpenRequests(t *testing.T) {
	setupTestDB(t)
	svc := NewSigningService()
	orgID := newID()

	doc, _ := seedSigningChain(t, orgID, "first@example.com", "second@example.com")

	voided, err := svc.Void(orgID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusVoided, voided.Status)
	for _, r := range voided.SigningRequests {
		assert.Equal(t, models.SigningStatusVoided, r.Status)
	}
}
