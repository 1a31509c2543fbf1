package repository

import (
	"errors"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepository interface {
	FinalizeOrder(orderID uint, compute func(order *models.Order, items []models.OrderItem) (*models.Transaction, error)) (*models.Transaction, error)
	GetByOrderID(orderID uint) (*models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// FinalizeOrder bills an order as one atomic unit: it locks the order
// row, reads the order's items under that lock, lets compute derive the
// transaction from them, then flips the order to BILLED and inserts the
// transaction. AppendItem takes the same row lock, so the item set the
// bill is computed from is exactly the set at the moment the order
// closes — an item added concurrently either makes it into the bill or
// hits ErrOrderClosed, never neither. The unique index on
// transactions.order_id is a second, database-level guard.
func (r *transactionRepository) FinalizeOrder(orderID uint, compute func(order *models.Order, items []models.OrderItem) (*models.Transaction, error)) (*models.Transaction, error) {
	var txn *models.Transaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error
		if err != nil {
			return translate(err)
		}
		if order.Status == string(models.OrderCancelled) {
			return apperrors.ErrOrderClosed
		}
		if !models.OrderOpen(order.Status) {
			return apperrors.ErrAlreadyBilled
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
			return translate(err)
		}

		txn, err = compute(&order, items)
		if err != nil {
			return err
		}

		err = tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"status":       string(models.OrderBilled),
				"total_amount": txn.TotalAmount,
				"gst_amount":   txn.GSTAmount,
				"net_amount":   txn.NetAmount,
			}).Error
		if err != nil {
			return translate(err)
		}

		if err := tx.Create(txn).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyBilled
			}
			return translate(err)
		}

		// Keep the customer's lifetime spend in step with the bill.
		if order.CustomerID != nil {
			err := tx.Model(&models.Customer{}).
				Where("id = ?", *order.CustomerID).
				Updates(map[string]interface{}{
					"total_spent": gorm.Expr("total_spent + ?", txn.NetAmount),
					"visits":      gorm.Expr("visits + 1"),
				}).Error
			if err != nil {
				return translate(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *transactionRepository) GetByOrderID(orderID uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.Where("order_id = ?", orderID).First(&txn).Error
	if err != nil {
		return nil, translate(err)
	}
	return &txn, nil
}
