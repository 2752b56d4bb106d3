package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"roomservice/i18n"
	"roomservice/models"
)

var (
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrUnsupportedLang = fmt.Errorf("unsupported language")
	ErrItemNotInCart   = fmt.Errorf("item not in cart")
)

// SessionService keeps guest sessions (language + cart) in Redis. A session
// is bound to one hotel room and expires with its TTL; the cart is never
// written to MySQL.
type SessionService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionService(client *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("guest_session:%s", id)
}

// Create starts a fresh session with the default language and empty cart.
func (s *SessionService) Create(ctx context.Context, hotelID, roomNumber string) (string, *models.GuestSession, error) {
	session := &models.GuestSession{
		HotelID:    hotelID,
		RoomNumber: roomNumber,
		Language:   i18n.DefaultLanguage,
		Cart:       []models.CartLine{},
	}

	id := uuid.New().String()
	if err := s.save(ctx, id, session); err != nil {
		return "", nil, err
	}
	return id, session, nil
}

// Get loads a session; ErrSessionNotFound when missing or expired.
func (s *SessionService) Get(ctx context.Context, id string) (*models.GuestSession, error) {
	if s.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var session models.GuestSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *SessionService) save(ctx context.Context, id string, session *models.GuestSession) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

// SetLanguage switches the session's UI language.
func (s *SessionService) SetLanguage(ctx context.Context, id, lang string) (*models.GuestSession, error) {
	if !i18n.IsSupported(lang) {
		return nil, ErrUnsupportedLang
	}
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Language = lang
	if err := s.save(ctx, id, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddToCart increments the line with the same menu item id, or appends a new
// line with quantity 1.
func (s *SessionService) AddToCart(ctx context.Context, id string, item models.CartLine) (*models.GuestSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range session.Cart {
		if session.Cart[i].MenuItemID == item.MenuItemID {
			session.Cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		session.Cart = append(session.Cart, item)
	}

	if err := s.save(ctx, id, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AdjustQuantity applies delta to a line's quantity. Reaching zero (or below)
// removes the line entirely; there is no separate remove operation.
func (s *SessionService) AdjustQuantity(ctx context.Context, id string, menuItemID uint, delta int) (*models.GuestSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range session.Cart {
		if session.Cart[i].MenuItemID == menuItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotInCart
	}

	session.Cart[idx].Quantity += delta
	if session.Cart[idx].Quantity <= 0 {
		session.Cart = append(session.Cart[:idx], session.Cart[idx+1:]...)
	}

	if err := s.save(ctx, id, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ClearCart empties the cart, keeping language and room binding.
func (s *SessionService) ClearCart(ctx context.Context, id string) (*models.GuestSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Cart = []models.CartLine{}
	if err := s.save(ctx, id, session); err != nil {
		return nil, err
	}
	return session, nil
}
