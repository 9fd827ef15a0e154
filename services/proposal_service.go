package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
)

// ProposalService handles business logic for client proposals. Signing
// parties are stored as party-details text blocks so the sent artifact stays
// readable without the structured form.
type ProposalService struct {
	repo    *repositories.ProposalRepository
	docRepo *repositories.DocumentRepository
	signing *SigningService
	outbox  *OutboxService
}

// NewProposalService creates a new proposal service instance
func NewProposalService() *ProposalService {
	return &ProposalService{
		repo:    repositories.NewProposalRepository(),
		docRepo: repositories.NewDocumentRepository(),
		signing: NewSigningService(),
		outbox:  NewOutboxService(),
	}
}

// ListProposals retrieves all proposals for a project
func (s *ProposalService) ListProposals(orgID, projectID string) ([]models.Proposal, error) {
	return s.repo.FindByProject(orgID, projectID)
}

// GetProposal retrieves a proposal
func (s *ProposalService) GetProposal(orgID, id string) (models.Proposal, error) {
	return s.repo.FindByID(orgID, id)
}

// CreateProposal creates a draft proposal
func (s *ProposalService) CreateProposal(orgID, projectID string, req dto.CreateProposalRequest) (models.Proposal, error) {
	partyBlocks, err := encodePartyBlocks(req.Parties)
	if err != nil {
		return models.Proposal{}, err
	}

	proposal := models.Proposal{
		OrgID:       orgID,
		ProjectID:   projectID,
		Title:       req.Title,
		Content:     req.Content,
		PartyBlocks: partyBlocks,
		Status:      models.ProposalStatusDraft,
	}
	return s.repo.Create(proposal)
}

// UpdateProposal updates a draft proposal
func (s *ProposalService) UpdateProposal(orgID, id string, req dto.UpdateProposalRequest) (models.Proposal, error) {
	proposal, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return models.Proposal{}, err
	}
	if proposal.Status != models.ProposalStatusDraft {
		return models.Proposal{}, fmt.Errorf("only draft proposals can be edited")
	}

	partyBlocks, err := encodePartyBlocks(req.Parties)
	if err != nil {
		return models.Proposal{}, err
	}

	proposal.Title = req.Title
	proposal.Content = req.Content
	proposal.PartyBlocks = partyBlocks
	if err := s.repo.Update(proposal); err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

// SendProposal publishes a draft proposal: a public token is minted, a
// backing document is created and routed to the parties for signature, and
// each party is emailed the public link.
func (s *ProposalService) SendProposal(orgID, userID, id string) (dto.SendProposalResponse, error) {
	proposal, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return dto.SendProposalResponse{}, err
	}
	if proposal.Status != models.ProposalStatusDraft {
		return dto.SendProposalResponse{}, fmt.Errorf("proposal is already %s", proposal.Status)
	}

	parties, err := decodePartyBlocks(proposal.PartyBlocks)
	if err != nil {
		return dto.SendProposalResponse{}, err
	}
	if len(parties) == 0 {
		return dto.SendProposalResponse{}, fmt.Errorf("proposal has no signing parties")
	}

	token, err := utils.NewToken()
	if err != nil {
		return dto.SendProposalResponse{}, err
	}
	hash := utils.HashToken(token)

	doc, err := s.docRepo.Create(models.Document{
		OrgID:     orgID,
		ProjectID: &proposal.ProjectID,
		Title:     proposal.Title,
		Status:    models.DocumentStatusDraft,
		CreatedBy: userID,
	})
	if err != nil {
		return dto.SendProposalResponse{}, err
	}

	sendReq := dto.SendDocumentRequest{}
	for i, party := range parties {
		sendReq.Parties = append(sendReq.Parties, dto.SigningPartyInput{
			Name:     party.Name,
			Email:    party.Email,
			Sequence: i + 1,
		})
	}
	if _, err := s.signing.Send(orgID, doc.ID, sendReq); err != nil {
		return dto.SendProposalResponse{}, err
	}

	now := time.Now()
	proposal.Status = models.ProposalStatusSent
	proposal.PublicTokenHash = &hash
	proposal.DocumentID = &doc.ID
	proposal.SentAt = &now
	if err := s.repo.Update(proposal); err != nil {
		return dto.SendProposalResponse{}, err
	}

	publicLink := fmt.Sprintf("%s/proposals/%s", publicURL(), token)
	s.outbox.Enqueue(orgID, "proposal.sent", map[string]interface{}{
		"proposalId": proposal.ID,
		"publicUrl":  publicLink,
	})
	for _, party := range parties {
		body := fmt.Sprintf("Hello %s,\n\nA proposal is ready for your review:\n%s\n", party.Name, publicLink)
		if err := sendMail(party.Email, "Proposal: "+proposal.Title, body); err != nil {
			log.Printf("⚠️ Failed to email proposal %s to %s: %v", proposal.ID, party.Email, err)
		}
	}

	return dto.SendProposalResponse{PublicURL: publicLink}, nil
}

// ViewPublic returns the client-facing view behind a public token
func (s *ProposalService) ViewPublic(token string) (dto.PublicProposalResponse, error) {
	proposal, err := s.repo.FindByPublicTokenHash(utils.HashToken(token))
	if err != nil {
		return dto.PublicProposalResponse{}, err
	}

	parties, err := decodePartyBlocks(proposal.PartyBlocks)
	if err != nil {
		return dto.PublicProposalResponse{}, err
	}

	return dto.PublicProposalResponse{
		Title:   proposal.Title,
		Status:  string(proposal.Status),
		Content: proposal.Content,
		Parties: parties,
	}, nil
}

// Decide records the client's accept or decline from the public page
func (s *ProposalService) Decide(token string, accept bool) error {
	proposal, err := s.repo.FindByPublicTokenHash(utils.HashToken(token))
	if err != nil {
		return err
	}
	if proposal.Status != models.ProposalStatusSent {
		return fmt.Errorf("proposal is already %s", proposal.Status)
	}

	now := time.Now()
	if accept {
		proposal.Status = models.ProposalStatusAccepted
	} else {
		proposal.Status = models.ProposalStatusDeclined
	}
	proposal.DecidedAt = &now
	if err := s.repo.Update(proposal); err != nil {
		return err
	}

	s.outbox.Enqueue(proposal.OrgID, "proposal.decided", map[string]interface{}{
		"proposalId": proposal.ID,
		"status":     proposal.Status,
	})
	return nil
}

// DeleteProposal soft-deletes a draft proposal
func (s *ProposalService) DeleteProposal(orgID, id string) error {
	proposal, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return err
	}
	if proposal.Status == models.ProposalStatusSent {
		return fmt.Errorf("sent proposals cannot be deleted")
	}
	return s.repo.Delete(orgID, id)
}

func encodePartyBlocks(parties []utils.Party) ([]byte, error) {
	if len(parties) == 0 {
		return nil, nil
	}
	blocks := make([]string, 0, len(parties))
	for _, p := range parties {
		if p.Name == "" || p.Email == "" {
			return nil, fmt.Errorf("every signing party needs a name and an email")
		}
		blocks = append(blocks, utils.BuildPartyDetails(p))
	}
	return json.Marshal(blocks)
}

func decodePartyBlocks(raw []byte) ([]utils.Party, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var blocks []string
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, err
	}
	parties := make([]utils.Party, 0, len(blocks))
	for _, block := range blocks {
		p, err := utils.ParsePartyDetails(block)
		if err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}
	return parties, nil
}
