package services

import (
	"sync"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
)

// memStore is an in-memory stand-in for the Postgres-backed repositories.
// All methods serialize on one mutex, which gives the same effective
// isolation the real repositories get from row locks and conditional
// updates.
type memStore struct {
	mu         sync.Mutex
	branches   map[uint]models.Branch
	items      map[uint]models.Item
	customers  map[uint]models.Customer
	orders     map[uint]models.Order
	orderItems []models.OrderItem
	tickets    map[uint]models.KitchenTicket
	txns       map[uint]models.Transaction // keyed by order ID
	seq        uint
}

func newMemStore() *memStore {
	return &memStore{
		branches:  make(map[uint]models.Branch),
		items:     make(map[uint]models.Item),
		customers: make(map[uint]models.Customer),
		orders:    make(map[uint]models.Order),
		tickets:   make(map[uint]models.KitchenTicket),
		txns:      make(map[uint]models.Transaction),
	}
}

func (s *memStore) nextID() uint {
	s.seq++
	return s.seq
}

func (s *memStore) addBranch(name string) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.branches[id] = models.Branch{ID: id, Name: name}
	return id
}

func (s *memStore) addItem(branchID uint, name string, price, gstRate float64, available bool) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.items[id] = models.Item{
		ID: id, BranchID: branchID, Name: name,
		Price: price, GSTRate: gstRate, IsAvailable: available,
	}
	return id
}

func (s *memStore) addCustomer(name string) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.customers[id] = models.Customer{ID: id, Name: name}
	return id
}

func (s *memStore) setItemPrice(id uint, price, gstRate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items[id]
	item.Price = price
	item.GSTRate = gstRate
	s.items[id] = item
}

func (s *memStore) orderStatus(id uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id].Status
}

func (s *memStore) transactionCount(orderID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.txns[orderID]; ok {
		return 1
	}
	return 0
}

// Repository fakes.

type memBranchRepo struct{ store *memStore }

func (r *memBranchRepo) Create(branch *models.Branch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	branch.ID = r.store.nextID()
	r.store.branches[branch.ID] = *branch
	return nil
}

func (r *memBranchRepo) GetByID(id uint) (*models.Branch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	branch, ok := r.store.branches[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &branch, nil
}

func (r *memBranchRepo) GetAll() ([]models.Branch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Branch
	for _, b := range r.store.branches {
		out = append(out, b)
	}
	return out, nil
}

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) Create(item *models.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item.ID = r.store.nextID()
	r.store.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) GetByID(id uint) (*models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item, ok := r.store.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (r *memItemRepo) GetByBranch(branchID uint) ([]models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Item
	for _, item := range r.store.items {
		if item.BranchID == branchID {
			out = append(out, item)
		}
	}
	return out, nil
}

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) Create(order *models.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order.ID = r.store.nextID()
	r.store.orders[order.ID] = *order
	return nil
}

func (r *memOrderRepo) GetByID(id uint) (*models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &order, nil
}

func (r *memOrderRepo) AppendItem(orderID uint, item *models.OrderItem, ticket *models.KitchenTicket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if !models.OrderOpen(order.Status) {
		return apperrors.ErrOrderClosed
	}

	item.ID = r.store.nextID()
	item.OrderID = orderID
	r.store.orderItems = append(r.store.orderItems, *item)

	ticket.ID = r.store.nextID()
	ticket.OrderID = orderID
	r.store.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memOrderRepo) CompareAndSwapStatus(id uint, from []string, to string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[id]
	if !ok {
		return false, nil
	}
	for _, status := range from {
		if order.Status == status {
			order.Status = to
			r.store.orders[id] = order
			return true, nil
		}
	}
	return false, nil
}

type memOrderItemRepo struct{ store *memStore }

func (r *memOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.OrderItem
	for _, item := range r.store.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

type memTicketRepo struct{ store *memStore }

func (r *memTicketRepo) GetByID(id uint) (*models.KitchenTicket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ticket, ok := r.store.tickets[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &ticket, nil
}

func (r *memTicketRepo) MarkCompleted(id uint) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ticket, ok := r.store.tickets[id]
	if !ok || ticket.Status != string(models.TicketPending) {
		return false, nil
	}
	ticket.Status = string(models.TicketCompleted)
	r.store.tickets[id] = ticket
	return true, nil
}

func (r *memTicketRepo) GetPendingByBranch(branchID uint) ([]models.KitchenTicket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.KitchenTicket
	for _, ticket := range r.store.tickets {
		order, ok := r.store.orders[ticket.OrderID]
		if ok && order.BranchID == branchID && ticket.Status == string(models.TicketPending) {
			out = append(out, ticket)
		}
	}
	return out, nil
}

type memTransactionRepo struct{ store *memStore }

// FinalizeOrder mirrors the real repository: order lookup, item read,
// compute, status flip and transaction insert all happen under the same
// lock, so nothing can change the item set mid-billing.
func (r *memTransactionRepo) FinalizeOrder(orderID uint, compute func(order *models.Order, items []models.OrderItem) (*models.Transaction, error)) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if order.Status == string(models.OrderCancelled) {
		return nil, apperrors.ErrOrderClosed
	}
	if !models.OrderOpen(order.Status) {
		return nil, apperrors.ErrAlreadyBilled
	}
	if _, exists := r.store.txns[orderID]; exists {
		return nil, apperrors.ErrAlreadyBilled
	}

	var items []models.OrderItem
	for _, item := range r.store.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}

	txn, err := compute(&order, items)
	if err != nil {
		return nil, err
	}

	order.Status = string(models.OrderBilled)
	order.TotalAmount = txn.TotalAmount
	order.GSTAmount = txn.GSTAmount
	order.NetAmount = txn.NetAmount
	r.store.orders[orderID] = order

	txn.ID = r.store.nextID()
	r.store.txns[orderID] = *txn

	if order.CustomerID != nil {
		if customer, ok := r.store.customers[*order.CustomerID]; ok {
			customer.TotalSpent += txn.NetAmount
			customer.Visits++
			r.store.customers[*order.CustomerID] = customer
		}
	}
	return txn, nil
}

func (r *memTransactionRepo) GetByOrderID(orderID uint) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	txn, ok := r.store.txns[orderID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

// newTestServices wires the full service stack over one shared store.
func newTestServices(store *memStore) (OrderService, KitchenService, BillingService) {
	orderRepo := &memOrderRepo{store: store}
	orderItemRepo := &memOrderItemRepo{store: store}
	itemRepo := &memItemRepo{store: store}
	branchRepo := &memBranchRepo{store: store}
	ticketRepo := &memTicketRepo{store: store}
	transactionRepo := &memTransactionRepo{store: store}

	orderService := NewOrderService(orderRepo, orderItemRepo, itemRepo, branchRepo)
	kitchenService := NewKitchenService(ticketRepo)
	billingService := NewBillingService(transactionRepo, nil, 0)
	return orderService, kitchenService, billingService
}

// finalizeHookRepo wraps the transaction repo fake and runs a hook just
// before finalization begins, allowing tests to interleave another
// operation with an in-flight billing call.
type finalizeHookRepo struct {
	*memTransactionRepo
	beforeFinalize func()
}

func (r *finalizeHookRepo) FinalizeOrder(orderID uint, compute func(order *models.Order, items []models.OrderItem) (*models.Transaction, error)) (*models.Transaction, error) {
	if r.beforeFinalize != nil {
		hook := r.beforeFinalize
		r.beforeFinalize = nil
		hook()
	}
	return r.memTransactionRepo.FinalizeOrder(orderID, compute)
}
