package services

import (
	"errors"
	"testing"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
)

func TestMarkComplete(t *testing.T) {
	store := newMemStore()
	branchID := store.addBranch("Main")
	itemID := store.addItem(branchID, "Dosa", 120, 5, true)
	orderService, kitchenService, _ := newTestServices(store)

	order, _ := orderService.CreateOrder(branchID, "DINE_IN", "", nil)
	ticket, err := orderService.AddItem(order.ID, itemID, 1)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	if err := kitchenService.MarkComplete(ticket.ID); err != nil {
		t.Fatalf("MarkComplete() error = %v", err)
	}

	pending, _ := kitchenService.GetPendingTickets(branchID)
	if len(pending) != 0 {
		t.Errorf("got %d pending tickets after completion, want 0", len(pending))
	}

	// Completion is one-way; a second call is an explicit error.
	if err := kitchenService.MarkComplete(ticket.ID); !errors.Is(err, apperrors.ErrIllegalTransition) {
		t.Errorf("second MarkComplete error = %v, want ErrIllegalTransition", err)
	}

	if err := kitchenService.MarkComplete(ticket.ID + 1000); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("MarkComplete(unknown ticket) error = %v, want ErrNotFound", err)
	}
}

func TestPendingTicketsScopedToBranch(t *testing.T) {
	store := newMemStore()
	mainID := store.addBranch("Main")
	annexID := store.addBranch("Annex")
	mainItem := store.addItem(mainID, "Dosa", 120, 5, true)
	annexItem := store.addItem(annexID, "Idli", 80, 5, true)
	orderService, kitchenService, _ := newTestServices(store)

	mainOrder, _ := orderService.CreateOrder(mainID, "DINE_IN", "", nil)
	annexOrder, _ := orderService.CreateOrder(annexID, "DINE_IN", "", nil)
	if _, err := orderService.AddItem(mainOrder.ID, mainItem, 1); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := orderService.AddItem(annexOrder.ID, annexItem, 1); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	tickets, err := kitchenService.GetPendingTickets(mainID)
	if err != nil {
		t.Fatalf("GetPendingTickets() error = %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("got %d tickets for main branch, want 1", len(tickets))
	}
	if tickets[0].OrderID != mainOrder.ID {
		t.Errorf("ticket order id = %d, want %d", tickets[0].OrderID, mainOrder.ID)
	}
	if tickets[0].Status != string(models.TicketPending) {
		t.Errorf("ticket status = %q, want PENDING", tickets[0].Status)
	}
}
