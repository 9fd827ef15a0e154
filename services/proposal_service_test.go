package services

import (
	"strings"
	"testing"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftProposal(t *testing.T, svc *ProposalService, orgID, projectID string) models.Proposal {
	t.Helper()
	proposal, err := svc.CreateProposal(orgID, projectID, dto.CreateProposalRequest{
		Title:   "Kitchen Remodel Proposal",
		Content: []byte(`[{"type":"text","value":"Scope of work"}]`),
		Parties: []utils.Party{
			{Name: "Dana Ricci", Email: "dana@example.com", Address: "14 Harbor Way"},
			{Name: "M. Okafor", Email: "m.okafor@example.com"},
		},
	})
	require.NoError(t, err)
	return proposal
}

// publicTokenFromURL pulls the raw token off the public link returned by Send
func publicTokenFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

func TestSendProposalMintsPublicLinkAndRoutesDocument(t *testing.T) {
	setupTestDB(t)
	svc := NewProposalService()
	orgID, projectID := newID(), newID()

	proposal := draftProposal(t, svc, orgID, projectID)

	resp, err := svc.SendProposal(orgID, newID(), proposal.ID)
	require.NoError(t, err)
	require.NotEmpty(t, resp.PublicURL)

	sent, err := svc.GetProposal(orgID, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusSent, sent.Status)
	assert.NotNil(t, sent.SentAt)
	require.NotNil(t, sent.DocumentID)

	// a backing document went out for signature to both parties
	doc, err := svc.docRepo.FindByID(orgID, *sent.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusOutForSignature, doc.Status)
	assert.Len(t, doc.SigningRequests, 2)

	// the link resolves to the public view
	view, err := svc.ViewPublic(publicTokenFromURL(resp.PublicURL))
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Remodel Proposal", view.Title)
	assert.Equal(t, "sent", view.Status)
	require.Len(t, view.Parties, 2)
	assert.Equal(t, "Dana Ricci", view.Parties[0].Name)
}

func TestSendProposalRequiresPartiesAndDraftStatus(t *testing.T) {
	setupTestDB(t)
	svc := NewProposalService()
	orgID, projectID := newID(), newID()

	empty, err := svc.CreateProposal(orgID, projectID, dto.CreateProposalRequest{Title: "No parties"})
	require.NoError(t, err)
	_, err = svc.SendProposal(orgID, newID(), empty.ID)
	assert.Error(t, err)

	proposal := draftProposal(t, svc, orgID, projectID)
	_, err = svc.SendProposal(orgID, newID(), proposal.ID)
	require.NoError(t, err)
	_, err = svc.SendProposal(orgID, newID(), proposal.ID)
	assert.Error(t, err, "resending must be rejected")
}

func TestDecideProposal(t *testing.T) {
	setupTestDB(t)
	svc := NewProposalService()
	orgID, projectID := newID(), newID()

	proposal := draftProposal(t, svc, orgID, projectID)
	resp, err := svc.SendProposal(orgID, newID(), proposal.ID)
	require.NoError(t, err)
	token := publicTokenFromURL(resp.PublicURL)

	require.NoError(t, svc.Decide(token, true))

	decided, err := svc.GetProposal(orgID, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, decided.Status)
	assert.NotNil(t, decided.DecidedAt)

	// a decision is final
	assert.Error(t, svc.Decide(token, false))
}

func TestDecideUnknownTokenFails(t *testing.T) {
	setupTestDB(t)
	svc := NewProposalService()

	assert.Error(t, svc.Decide("bogus-token", true))
}

func TestUpdateProposalDraftOnly(t *testing.T) {
	setupTestDB(t)
	svc := NewProposalService()
	orgID, projectID := newID(), newID()

	proposal := draftProposal(t, svc, orgID, projectID)

	updated, err := svc.UpdateProposal(orgID, proposal.ID, dto.UpdateProposalRequest{
		Title: "Revised Proposal",
		Parties: []utils.Party{
			{Name: "Dana Ricci", Email: "dana@example.com"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Revised Proposal", updated.Title)

	_, err = svc.SendProposal(orgID, newID(), proposal.ID)
	require.NoError(t, err)

	_, err = svc.UpdateProposal(orgID, proposal.ID, dto.UpdateProposalRequest{Title: "Too late"})
	assert.Error(t, err)
}

func TestDeleteProposalBlocksSent(t *testing.T) {
	setupTestDB(t)
	svc := NewProposalService()
	orgID, projectID := newID(), newID()

	proposal := draftProposal(t, svc, orgID, projectID)
	_, err := svc.SendProposal(orgID, newID(), proposal.ID)
	require.NoError(t, err)

	assert.Error(t, svc.DeleteProposal(orgID, proposal.ID))

	draft := draftProposal(t, svc, orgID, projectID)
	assert.NoError(t, svc.DeleteProposal(orgID, draft.ID))
}
