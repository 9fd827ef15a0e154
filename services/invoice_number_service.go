package services

import (
	"fmt"
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"gorm.io/gorm"
)

// reservationTTL is how long a reserved draft number stays claimable before
// admin tooling reports it as stale.
const reservationTTL = 24 * time.Hour

// InvoiceNumberService hands out per-org invoice numbers via a
// reserve-then-commit-or-release protocol. Sequences are strictly increasing;
// abandoned reservations leave gaps, which is acceptable.
type InvoiceNumberService struct {
	repo *repositories.InvoiceRepository
}

// NewInvoiceNumberService creates a new invoice number service instance
func NewInvoiceNumberService() *InvoiceNumberService {
	return &InvoiceNumberService{repo: repositories.NewInvoiceRepository()}
}

// ReserveNumber takes the next counter value and records a reservation.
// The formatted number is {prefix}-{seq} zero-padded to four digits.
func (s *InvoiceNumberService) ReserveNumber(orgID string) (dto.ReserveNumberResponse, error) {
	prefix, seq, err := s.repo.NextCounterValue(orgID)
	if err != nil {
		return dto.ReserveNumberResponse{}, err
	}

	number := fmt.Sprintf("%s-%04d", prefix, seq)
	expiresAt := time.Now().Add(reservationTTL)

	_, err = s.repo.CreateReservation(models.InvoiceNumberReservation{
		OrgID:     orgID,
		Number:    number,
		Status:    models.ReservationStatusReserved,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return dto.ReserveNumberResponse{}, err
	}

	return dto.ReserveNumberResponse{Number: number, ExpiresAt: expiresAt}, nil
}

// ReleaseNumber marks a reservation as released. Releasing an unknown or
// already released number is a no-op so clients can retry freely.
func (s *InvoiceNumberService) ReleaseNumber(orgID, number string) error {
	res, err := s.repo.FindReservation(orgID, number)
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if res.Status != models.ReservationStatusReserved {
		return nil
	}
	return s.repo.UpdateReservationStatus(res.ID, models.ReservationStatusReleased)
}

// ConsumeNumber marks a reservation as consumed when its invoice is created.
// The number must be currently reserved for this org.
func (s *InvoiceNumberService) ConsumeNumber(orgID, number string) error {
	res, err := s.repo.FindReservation(orgID, number)
	if err == gorm.ErrRecordNotFound {
		return fmt.Errorf("invoice number %s was not reserved", number)
	}
	if err != nil {
		return err
	}
	if res.Status != models.ReservationStatusReserved {
		return fmt.Errorf("invoice number %s is already %s", number, res.Status)
	}
	return s.repo.UpdateReservationStatus(res.ID, models.ReservationStatusConsumed)
}
