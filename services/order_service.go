package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"roomservice/i18n"
	"roomservice/metrics"
	"roomservice/models"
	"roomservice/realtime"
)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrConfirmationLen = errors.New("confirmation code must be at least 4 characters")
	ErrInvalidStatus   = errors.New("invalid status")
)

// minConfirmationLen gates checkout. The code is never verified against a
// reception code; length is the whole check.
const minConfirmationLen = 4

type OrderService struct {
	db  *gorm.DB
	bus realtime.Bus
}

func NewOrderService(db *gorm.DB, bus realtime.Bus) *OrderService {
	return &OrderService{db: db, bus: bus}
}

func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// Checkout snapshots the session cart into an order with status pending.
// The total is computed from the cart at this moment; later menu edits do
// not touch the stored lines. A replayed idempotency key returns the order
// created by the first submit.
func (s *OrderService) Checkout(session *models.GuestSession, confirmationCode, idempotencyKey string) (*models.Order, error) {
	if len(strings.TrimSpace(confirmationCode)) < minConfirmationLen {
		return nil, ErrConfirmationLen
	}
	if len(session.Cart) == 0 {
		return nil, ErrCartEmpty
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	lines := make([]models.OrderLine, 0, len(session.Cart))
	for _, line := range session.Cart {
		lines = append(lines, models.OrderLine{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal order lines: %w", err)
	}

	order := models.Order{
		HotelID:        session.HotelID,
		RoomNumber:     session.RoomNumber,
		Items:          datatypes.JSON(payload),
		Total:          session.CartTotal(),
		Status:         models.OrderStatusPending,
		IdempotencyKey: idempotencyKey,
	}

	if err := s.db.Create(&order).Error; err != nil {
		if isDuplicateKeyErr(err) {
			var existing models.Order
			if ferr := s.db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.IncOrdersCreated(order.HotelID)
	_ = realtime.PublishChange(s.bus, realtime.TableOrders, order.HotelID, realtime.ActionInsert)

	return &order, nil
}

// CreateServiceRequest persists a pending request with the display name
// resolved through the session language; an untranslated key is stored
// verbatim. There is no confirmation-code gate here.
func (s *OrderService) CreateServiceRequest(session *models.GuestSession, serviceKey, idempotencyKey string) (*models.ServiceRequest, error) {
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	request := models.ServiceRequest{
		HotelID:        session.HotelID,
		RoomNumber:     session.RoomNumber,
		ServiceName:    i18n.ServiceName(session.Language, serviceKey),
		Status:         models.RequestStatusPending,
		IdempotencyKey: idempotencyKey,
	}

	if err := s.db.Create(&request).Error; err != nil {
		if isDuplicateKeyErr(err) {
			var existing models.ServiceRequest
			if ferr := s.db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("create service request: %w", err)
	}

	metrics.IncServiceRequestsCreated(request.HotelID)
	_ = realtime.PublishChange(s.bus, realtime.TableServiceRequests, request.HotelID, realtime.ActionInsert)

	return &request, nil
}

// ListOrders returns a hotel's orders, newest first.
func (s *OrderService) ListOrders(hotelID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("hotel_id = ?", hotelID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListServiceRequests returns a hotel's service requests, newest first.
func (s *OrderService) ListServiceRequests(hotelID string) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	err := s.db.Where("hotel_id = ?", hotelID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// UpdateOrderStatus advances an order's status, scoped to the hotel.
func (s *OrderService) UpdateOrderStatus(hotelID string, orderID uint, status string) error {
	if !models.IsValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	result := s.db.Model(&models.Order{}).
		Where("id = ? AND hotel_id = ?", orderID, hotelID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	_ = realtime.PublishChange(s.bus, realtime.TableOrders, hotelID, realtime.ActionUpdate)
	return nil
}

// UpdateRequestStatus advances a service request's status, scoped to the hotel.
func (s *OrderService) UpdateRequestStatus(hotelID string, requestID uint, status string) error {
	if !models.IsValidRequestStatus(status) {
		return ErrInvalidStatus
	}

	result := s.db.Model(&models.ServiceRequest{}).
		Where("id = ? AND hotel_id = ?", requestID, hotelID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update request status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	_ = realtime.PublishChange(s.bus, realtime.TableServiceRequests, hotelID, realtime.ActionUpdate)
	return nil
}

const (
	FeedKindOrder          = "order"
	FeedKindServiceRequest = "service_request"
)

// FeedRow is one row of the unified live-operations table.
type FeedRow struct {
	Kind        string    `json:"kind"`
	ID          uint      `json:"id"`
	RoomNumber  string    `json:"roomNumber"`
	Status      string    `json:"status"`
	Total       float64   `json:"total,omitempty"`
	ServiceName string    `json:"serviceName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LiveFeed merges a hotel's orders and service requests into one
// time-descending list, each row tagged with its source kind.
func (s *OrderService) LiveFeed(hotelID string) ([]FeedRow, error) {
	orders, err := s.ListOrders(hotelID)
	if err != nil {
		return nil, err
	}
	requests, err := s.ListServiceRequests(hotelID)
	if err != nil {
		return nil, err
	}

	rows := make([]FeedRow, 0, len(orders)+len(requests))
	for _, o := range orders {
		rows = append(rows, FeedRow{
			Kind:       FeedKindOrder,
			ID:         o.ID,
			RoomNumber: o.RoomNumber,
			Status:     o.Status,
			Total:      o.Total,
			CreatedAt:  o.CreatedAt,
		})
	}
	for _, r := range requests {
		rows = append(rows, FeedRow{
			Kind:        FeedKindServiceRequest,
			ID:          r.ID,
			RoomNumber:  r.RoomNumber,
			Status:      r.Status,
			ServiceName: r.ServiceName,
			CreatedAt:   r.CreatedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

// RecentOrderRow is one row of the super-admin cross-hotel feed.
type RecentOrderRow struct {
	models.Order
	HotelName string `json:"hotelName"`
}

// RecentOrders returns the newest orders across all hotels joined with the
// hotel name for display.
func (s *OrderService) RecentOrders(limit int) ([]RecentOrderRow, error) {
	var rows []RecentOrderRow
	err := s.db.Model(&models.Order{}).
		Select("orders.*, hotels.name AS hotel_name").
		Joins("JOIN hotels ON hotels.id = orders.hotel_id").
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load recent orders: %w", err)
	}
	return rows, nil
}
