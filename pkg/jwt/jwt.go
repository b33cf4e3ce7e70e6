package jwt

import (
	"errors"
	"sync"
	"time"

	"hotelops/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token. Solo lleva el id del sujeto: las membresías de hotel
// se releen de la base en cada petición, nunca viajan en la credencial
// (podrían cambiar después de emitir el token).
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager firma y verifica tokens HS256
type Manager struct {
	secretKey     string
	tokenDuration time.Duration
}

func NewManager(secretKey string, tokenDuration time.Duration) *Manager {
	return &Manager{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
	}
}

// GenerateToken genera un token firmado para el usuario
func (m *Manager) GenerateToken(userID uint, username string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "hotelops",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// VerifyToken verifica firma y vigencia
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return []byte(m.secretKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("no se pudieron leer los claims del token")
	}

	return claims, nil
}

// GetTokenDuration devuelve la vigencia configurada
func (m *Manager) GetTokenDuration() time.Duration {
	return m.tokenDuration
}

// Singleton
var (
	defaultManager *Manager
	once           sync.Once
)

// GetManager devuelve el manejador global de JWT
func GetManager() *Manager {
	once.Do(func() {
		cfg := config.GetConfig()
		tokenDuration, err := time.ParseDuration(cfg.JWT.TokenDuration)
		if err != nil {
			tokenDuration = 24 * time.Hour
		}
		defaultManager = NewManager(cfg.JWT.SecretKey, tokenDuration)
	})
	return defaultManager
}
