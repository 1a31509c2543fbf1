package services

import (
	"errors"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"
)

type KitchenService interface {
	MarkComplete(ticketID uint) error
	GetPendingTickets(branchID uint) ([]models.KitchenTicket, error)
}

type kitchenService struct {
	ticketRepo repository.TicketRepository
}

func NewKitchenService(ticketRepo repository.TicketRepository) KitchenService {
	return &kitchenService{ticketRepo: ticketRepo}
}

// MarkComplete moves a ticket from PENDING to COMPLETED. Completing an
// already completed ticket is an error, not a silent no-op.
func (s *kitchenService) MarkComplete(ticketID uint) error {
	ok, err := s.ticketRepo.MarkCompleted(ticketID)
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.ticketRepo.GetByID(ticketID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		return apperrors.ErrIllegalTransition
	}
	return nil
}

func (s *kitchenService) GetPendingTickets(branchID uint) ([]models.KitchenTicket, error) {
	return s.ticketRepo.GetPendingByBranch(branchID)
}
