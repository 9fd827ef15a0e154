package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
)

// DocumentService handles business logic for documents
type DocumentService struct {
	repo *repositories.DocumentRepository
}

// NewDocumentService creates a new document service instance
func NewDocumentService() *DocumentService {
	return &DocumentService{repo: repositories.NewDocumentRepository()}
}

// ListDocuments retrieves org documents, optionally scoped to a project
func (s *DocumentService) ListDocuments(orgID, projectID string) ([]models.Document, error) {
	return s.repo.FindAll(orgID, projectID)
}

// GetDocument retrieves a document with its signing requests
func (s *DocumentService) GetDocument(orgID, id string) (models.Document, error) {
	return s.repo.FindByID(orgID, id)
}

// CreateDocument creates a draft document. When a file name is supplied a
// storage key is assigned and a presigned PUT URL returned for the upload.
func (s *DocumentService) CreateDocument(orgID, userID string, req dto.CreateDocumentRequest) (dto.DocumentUploadResponse, error) {
	doc := models.Document{
		OrgID:     orgID,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    models.DocumentStatusDraft,
		CreatedBy: userID,
	}
	doc, err := s.repo.Create(doc)
	if err != nil {
		return dto.DocumentUploadResponse{}, err
	}

	resp := dto.DocumentUploadResponse{Document: doc}
	if req.FileName != "" && objectStore != nil {
		doc.StorageKey = fmt.Sprintf("documents/%s/%s/%s", orgID, doc.ID, req.FileName)
		if err := s.repo.Update(doc); err != nil {
			return dto.DocumentUploadResponse{}, err
		}
		uploadURL, err := objectStore.PresignUpload(context.Background(), doc.StorageKey, 15*time.Minute)
		if err != nil {
			return dto.DocumentUploadResponse{}, err
		}
		resp.Document = doc
		resp.UploadURL = uploadURL
	}
	return resp, nil
}

// UpdateDocument renames a draft document
func (s *DocumentService) UpdateDocument(orgID, id, title string) (models.Document, error) {
	doc, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return models.Document{}, err
	}
	if doc.Status != models.DocumentStatusDraft {
		return models.Document{}, fmt.Errorf("only draft documents can be edited")
	}
	doc.Title = title
	if err := s.repo.Update(doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// ReplaceFile bumps the revision and returns a presigned PUT URL for the new
// file. Only draft documents can be re-uploaded.
func (s *DocumentService) ReplaceFile(orgID, id, fileName string) (dto.DocumentUploadResponse, error) {
	doc, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return dto.DocumentUploadResponse{}, err
	}
	if doc.Status != models.DocumentStatusDraft {
		return dto.DocumentUploadResponse{}, fmt.Errorf("only draft documents can be re-uploaded")
	}
	if objectStore == nil {
		return dto.DocumentUploadResponse{}, fmt.Errorf("object storage is not configured")
	}

	doc.Revision++
	doc.StorageKey = fmt.Sprintf("documents/%s/%s/r%d/%s", orgID, doc.ID, doc.Revision, fileName)
	if err := s.repo.Update(doc); err != nil {
		return dto.DocumentUploadResponse{}, err
	}

	uploadURL, err := objectStore.PresignUpload(context.Background(), doc.StorageKey, 15*time.Minute)
	if err != nil {
		return dto.DocumentUploadResponse{}, err
	}
	return dto.DocumentUploadResponse{Document: doc, UploadURL: uploadURL}, nil
}

// DownloadURL returns a presigned GET URL for the document's current file
func (s *DocumentService) DownloadURL(orgID, id string) (string, error) {
	doc, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return "", err
	}
	if doc.StorageKey == "" {
		return "", fmt.Errorf("document has no uploaded file")
	}
	if objectStore == nil {
		return "", fmt.Errorf("object storage is not configured")
	}
	return objectStore.PresignDownload(context.Background(), doc.StorageKey, 15*time.Minute)
}

// DeleteDocument soft-deletes a document. Out-for-signature documents must be
// voided first.
func (s *DocumentService) DeleteDocument(orgID, id string) error {
	doc, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return err
	}
	if doc.Status == models.DocumentStatusOutForSignature {
		return fmt.Errorf("void the document before deleting it")
	}
	return s.repo.Delete(orgID, id)
}
