package repository

import (
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
)

type TicketRepository interface {
	GetByID(id uint) (*models.KitchenTicket, error)
	MarkCompleted(id uint) (bool, error)
	GetPendingByBranch(branchID uint) ([]models.KitchenTicket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) GetByID(id uint) (*models.KitchenTicket, error) {
	var ticket models.KitchenTicket
	err := r.db.First(&ticket, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &ticket, nil
}

// MarkCompleted flips a ticket from PENDING to COMPLETED. The condition
// on the current status makes the flip one-way even under concurrent
// calls; false means the ticket was not pending anymore.
func (r *ticketRepository) MarkCompleted(id uint) (bool, error) {
	res := r.db.Model(&models.KitchenTicket{}).
		Where("id = ? AND kot_status = ?", id, string(models.TicketPending)).
		Update("kot_status", string(models.TicketCompleted))
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ticketRepository) GetPendingByBranch(branchID uint) ([]models.KitchenTicket, error) {
	var tickets []models.KitchenTicket
	err := r.db.
		Joins("JOIN orders ON orders.id = kot.order_id").
		Where("orders.branch_id = ? AND kot.kot_status = ?", branchID, string(models.TicketPending)).
		Order("kot.id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, translate(err)
	}
	return tickets, nil
}
