package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roomservice/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type HotelService struct {
	db *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{db: db}
}

// Create assigns a fresh UUID and hashes the dashboard password when set.
func (s *HotelService) Create(hotel *models.Hotel) error {
	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	if hotel.Password != "" && !isBcryptHash(hotel.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(hotel.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash hotel password: %w", err)
		}
		hotel.Password = string(hash)
	}
	return s.db.Create(hotel).Error
}

func (s *HotelService) GetByID(id string) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.db.First(&hotel, "id = ?", id).Error
	return hotel, err
}

func (s *HotelService) List() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.db.Order("created_at DESC").Find(&hotels).Error
	return hotels, err
}

// Update applies the given fields. A plaintext password in the update map is
// hashed; id and timestamps are never overwritten.
func (s *HotelService) Update(id string, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	if raw, ok := fields["password"].(string); ok {
		if raw == "" {
			delete(fields, "password")
		} else if !isBcryptHash(raw) {
			hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash hotel password: %w", err)
			}
			fields["password"] = string(hash)
		}
	}

	result := s.db.Model(&models.Hotel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the hotel and its dependent rows in one transaction. The
// original relied on backend-side cascades; here they are explicit.
func (s *HotelService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.Room{},
			&models.MenuItem{},
			&models.Order{},
			&models.ServiceRequest{},
			&models.HotelMarketSetting{},
			&models.HotelServiceSetting{},
		} {
			if err := tx.Where("hotel_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Hotel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Authenticate checks dashboard credentials and returns the hotel.
func (s *HotelService) Authenticate(username, password string) (models.Hotel, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Hotel{}, ErrInvalidCredentials
	}

	var hotel models.Hotel
	if err := s.db.Where("username = ?", username).First(&hotel).Error; err != nil {
		return models.Hotel{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hotel.Password), []byte(password)) != nil {
		return models.Hotel{}, ErrInvalidCredentials
	}
	return hotel, nil
}

// SetMarketItemActive toggles a global market item for a hotel, creating the
// join row on first use.
func (s *HotelService) SetMarketItemActive(hotelID string, itemID uint, active bool) error {
	var setting models.HotelMarketSetting
	err := s.db.Where("hotel_id = ? AND market_item_id = ?", hotelID, itemID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.HotelMarketSetting{HotelID: hotelID, MarketItemID: itemID, Active: active}
		return s.db.Create(&setting).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&setting).Update("active", active).Error
}

// SetServiceActive toggles a global service for a hotel.
func (s *HotelService) SetServiceActive(hotelID string, serviceID uint, active bool) error {
	var setting models.HotelServiceSetting
	err := s.db.Where("hotel_id = ? AND service_id = ?", hotelID, serviceID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.HotelServiceSetting{HotelID: hotelID, ServiceID: serviceID, Active: active}
		return s.db.Create(&setting).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&setting).Update("active", active).Error
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
