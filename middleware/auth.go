package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"roomservice/utils"
)

const (
	RoleHotel = "hotel"
	RoleSuper = "super"

	// context keys set by Require
	CtxRole    = "auth_role"
	CtxHotelID = "auth_hotel_id"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the dashboard session: role plus, for hotel admins, the
// hotel id the token is scoped to.
type Claims struct {
	Role    string `json:"role"`
	HotelID string `json:"hotel_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a dashboard session token.
func GenerateToken(secret, role, hotelID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:    role,
		HotelID: hotelID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Require validates the bearer token and enforces one of the allowed roles.
// For hotel tokens the scoped hotel id is placed in the context.
func Require(secret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		allowed := false
		for _, role := range roles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			utils.JSONError(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}

		c.Set(CtxRole, claims.Role)
		if claims.HotelID != "" {
			c.Set(CtxHotelID, claims.HotelID)
		}
		c.Next()
	}
}

// HotelID returns the hotel id the request's token is scoped to.
func HotelID(c *gin.Context) string {
	return c.GetString(CtxHotelID)
}
