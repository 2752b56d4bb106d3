package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"roomservice/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "roomservice_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures the platform-level catalogs exist. Hotel data is never
// seeded; hotels arrive through the super-admin panel.
func SeedDatabase() {
	var svcCount int64
	DB.Model(&models.GlobalService{}).Count(&svcCount)
	if svcCount == 0 {
		services := []models.GlobalService{
			{Key: "towel", Icon: "towel"},
			{Key: "cleaning", Icon: "broom"},
			{Key: "technical", Icon: "wrench"},
			{Key: "wakeup", Icon: "alarm"},
			{Key: "luggage", Icon: "suitcase"},
			{Key: "laundry", Icon: "shirt"},
			{Key: "minibar", Icon: "bottle"},
			{Key: "bedding", Icon: "bed"},
			{Key: "taxi", Icon: "car"},
			{Key: "late_checkout", Icon: "clock"},
		}
		if err := DB.Create(&services).Error; err != nil {
			log.Printf("warning: failed to seed global services: %v", err)
		} else {
			log.Println("Global services seeded")
		}
	}

	var marketCount int64
	DB.Model(&models.GlobalMarketItem{}).Count(&marketCount)
	if marketCount == 0 {
		items := []models.GlobalMarketItem{
			{Name: "Su 0.5L", Description: "Şişe su", Price: 15, Category: "drinks"},
			{Name: "Kola", Description: "Kutu 330ml", Price: 40, Category: "drinks"},
			{Name: "Cips", Description: "Klasik tuzlu", Price: 35, Category: "snacks"},
			{Name: "Çikolata", Description: "Sütlü 80g", Price: 45, Category: "snacks"},
			{Name: "Bisküvi", Description: "Kakaolu", Price: 25, Category: "snacks"},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed global market items: %v", err)
		} else {
			log.Println("Global market items seeded")
		}
	}
}

// AutoMigrate runs migrations against the given handle. Split out so tests
// can run the same schema on their own database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.MenuItem{},
		&models.GlobalMarketItem{},
		&models.HotelMarketSetting{},
		&models.GlobalService{},
		&models.HotelServiceSetting{},
		&models.Order{},
		&models.ServiceRequest{},
		&models.HotelApplication{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := AutoMigrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
