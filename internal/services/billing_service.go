package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/redis"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"
)

type BillingService interface {
	GenerateBill(orderID uint, paymentMethod string) (*models.Transaction, error)
	ViewBill(orderID uint) (*models.Transaction, error)
}

type billingService struct {
	transactionRepo repository.TransactionRepository
	cache           *redis.Client
	billCacheTTL    time.Duration
}

func NewBillingService(
	transactionRepo repository.TransactionRepository,
	cache *redis.Client,
	billCacheTTL time.Duration,
) BillingService {
	return &billingService{
		transactionRepo: transactionRepo,
		cache:           cache,
		billCacheTTL:    billCacheTTL,
	}
}

// GenerateBill totals the order's items from their frozen snapshots and
// finalizes the order. The items are read by the repository inside the
// same locked transaction that flips the status, so no concurrently
// added item can slip out of the bill. GST is summed per line before
// any rounding, never computed on a rounded subtotal.
func (s *billingService) GenerateBill(orderID uint, paymentMethod string) (*models.Transaction, error) {
	if paymentMethod == "" {
		paymentMethod = "CASH"
	}

	txn, err := s.transactionRepo.FinalizeOrder(orderID, func(order *models.Order, items []models.OrderItem) (*models.Transaction, error) {
		if len(items) == 0 {
			return nil, apperrors.ErrNoItems
		}

		var subtotal, gst float64
		for _, item := range items {
			lineTotal := float64(item.Quantity) * item.Price
			subtotal += lineTotal
			gst += lineTotal * item.GSTRate / 100
		}

		return &models.Transaction{
			OrderID:       order.ID,
			BranchID:      order.BranchID,
			TotalAmount:   round2(subtotal),
			GSTAmount:     round2(gst),
			NetAmount:     round2(subtotal + gst),
			PaymentMethod: paymentMethod,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetBill(orderID, txn, s.billCacheTTL); err != nil {
			log.Printf("Warning: failed to cache bill for order %d: %v", orderID, err)
		}
	}

	return txn, nil
}

// ViewBill returns the stored bill snapshot; it never recomputes.
func (s *billingService) ViewBill(orderID uint) (*models.Transaction, error) {
	if s.cache != nil {
		txn, err := s.cache.GetBill(orderID)
		if err == nil {
			return txn, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Printf("Warning: failed to read bill cache for order %d: %v", orderID, err)
		}
	}

	txn, err := s.transactionRepo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetBill(orderID, txn, s.billCacheTTL); err != nil {
			log.Printf("Warning: failed to cache bill for order %d: %v", orderID, err)
		}
	}

	return txn, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
