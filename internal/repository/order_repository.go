package repository

import (
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	AppendItem(orderID uint, item *models.OrderItem, ticket *models.KitchenTicket) error
	CompareAndSwapStatus(id uint, from []string, to string) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return translate(r.db.Create(order).Error)
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// AppendItem writes one order item and its kitchen ticket in a single
// transaction, holding a row lock on the order so the open-status check
// cannot race a concurrent billing call.
func (r *orderRepository) AppendItem(orderID uint, item *models.OrderItem, ticket *models.KitchenTicket) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error
		if err != nil {
			return translate(err)
		}
		if !models.OrderOpen(order.Status) {
			return apperrors.ErrOrderClosed
		}

		item.OrderID = orderID
		if err := tx.Create(item).Error; err != nil {
			return translate(err)
		}

		ticket.OrderID = orderID
		if err := tx.Create(ticket).Error; err != nil {
			return translate(err)
		}

		return nil
	})
}

// CompareAndSwapStatus updates the status only when the current status
// is one of the expected values; exactly one of two concurrent callers
// can win.
func (r *orderRepository) CompareAndSwapStatus(id uint, from []string, to string) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}
