package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenClass distinguishes short-lived access tokens from long-lived
// refresh tokens. Every consumer that expects a specific class must check
// it: a refresh token is never honored where an access token is required.
type TokenClass string

const (
	TokenClassAccess  TokenClass = "access"
	TokenClassRefresh TokenClass = "refresh"
)

var (
	// ErrInvalidToken is returned for any malformed, tampered or expired
	// token. Decode failures deliberately collapse into this single error
	// so callers cannot distinguish the root cause.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongTokenClass is returned when a structurally valid token
	// carries the wrong class tag for the operation.
	ErrWrongTokenClass = errors.New("wrong token class")
)

// Claims represents the JWT claims carried by WiseKey tokens.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWTService issues and validates signed bearer tokens.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService creates a JWT service signing with the given secret.
func NewJWTService(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs a short-lived access token for the user.
func (s *JWTService) IssueAccessToken(userID uint) (string, error) {
	return s.issue(userID, TokenClassAccess, s.accessTTL, "")
}

// IssueRefreshToken signs a long-lived refresh token for the user. The
// token carries a unique JTI so a future exchange endpoint can identify it.
func (s *JWTService) IssueRefreshToken(userID uint) (string, error) {
	return s.issue(userID, TokenClassRefresh, s.refreshTTL, uuid.New().String())
}

func (s *JWTService) issue(userID uint, class TokenClass, ttl time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: string(class),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry, then checks that the token
// carries the expected class. A token whose exp equals the current instant
// is already expired.
func (s *JWTService) ValidateToken(tokenString string, expected TokenClass) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != string(expected) {
		return nil, ErrWrongTokenClass
	}

	return claims, nil
}
