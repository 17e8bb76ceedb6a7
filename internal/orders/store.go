package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/parthdave/couriersim/internal/models"
	"go.uber.org/zap"
)

// ErrOrderNotFound is returned for status updates against unknown IDs.
var ErrOrderNotFound = errors.New("order not found")

const (
	firstOrderID = 10000
	timestampFmt = "2006-01-02 15:04:05"
	dayFormat    = "2006-01-02"
	fileMode     = 0o644
	storeDirMode = 0o755
)

// Store is a JSON-file-backed order list. Orders are never deleted;
// terminal states are kept for the history they carry. All access goes
// through the mutex, and every mutation is flushed to disk before it
// returns.
type Store struct {
	mu     sync.Mutex
	path   string
	orders []models.Order
	nextID int
	logger *zap.Logger
	now    func() time.Time
}

func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:   path,
		nextID: firstOrderID,
		logger: logger,
		now:    time.Now,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read order file %s: %w", s.path, err)
	}

	if err := json.Unmarshal(raw, &s.orders); err != nil {
		return fmt.Errorf("parse order file %s: %w", s.path, err)
	}

	// Resume numbering after the highest ID already on disk.
	for _, order := range s.orders {
		if id, err := strconv.Atoi(order.OrderID); err == nil && id >= s.nextID {
			s.nextID = id + 1
		}
	}
	s.logger.Info("loaded order file",
		zap.String("path", s.path), zap.Int("orders", len(s.orders)))
	return nil
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, storeDirMode); err != nil {
			return fmt.Errorf("create order dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, fileMode); err != nil {
		return fmt.Errorf("write order file %s: %w", s.path, err)
	}
	return nil
}

// Add registers a new pending order, assigning the next ID and the
// creation timestamp. The stored copy is returned.
func (s *Store) Add(order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.OrderID = strconv.Itoa(s.nextID)
	order.Status = models.OrderStatusPending
	order.CreatedAt = s.now().Format(timestampFmt)
	order.DeliveredAt = ""
	s.nextID++

	s.orders = append(s.orders, order)
	if err := s.flush(); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Replace swaps the entire order list, used by seeding. Numbering resumes
// after the highest replaced ID.
func (s *Store) Replace(orders []models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = orders
	s.nextID = firstOrderID
	for _, order := range orders {
		if id, err := strconv.Atoi(order.OrderID); err == nil && id >= s.nextID {
			s.nextID = id + 1
		}
	}
	return s.flush()
}

// All returns a copy of every order, newest last.
func (s *Store) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

// Pending returns orders still awaiting delivery.
func (s *Store) Pending() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []models.Order
	for _, order := range s.orders {
		if order.Status == models.OrderStatusPending {
			pending = append(pending, order)
		}
	}
	return pending
}

// Get looks up one order by ID.
func (s *Store) Get(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.OrderID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// Today returns pending orders whose delivery day matches today's date or
// weekday name.
func (s *Store) Today() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	date := now.Format(dayFormat)
	weekday := now.Weekday().String()

	var today []models.Order
	for _, order := range s.orders {
		if order.Status != models.OrderStatusPending {
			continue
		}
		if order.DeliveryDay == date || strings.EqualFold(order.DeliveryDay, weekday) {
			today = append(today, order)
		}
	}
	return today
}

// CustomerNames resolves order IDs to their customer names, preserving
// request order. Unknown IDs are skipped.
func (s *Store) CustomerNames(orderIDs []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]string, len(s.orders))
	for _, order := range s.orders {
		byID[order.OrderID] = order.CustomerName
	}

	var names []string
	for _, id := range orderIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// UpdateStatus sets an order's status. Moving into Delivered also stamps
// the delivery time.
func (s *Store) UpdateStatus(orderID, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID != orderID {
			continue
		}
		s.orders[i].Status = status
		if status == models.OrderStatusDelivered {
			s.orders[i].DeliveredAt = s.now().Format(timestampFmt)
		}
		if err := s.flush(); err != nil {
			return models.Order{}, err
		}
		return s.orders[i], nil
	}
	return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}

// MarkDelivered records a delivery attempt outcome.
func (s *Store) MarkDelivered(orderID string, success bool) (models.Order, error) {
	status := models.OrderStatusDelivered
	if !success {
		status = models.OrderStatusFailed
	}
	return s.UpdateStatus(orderID, status)
}
