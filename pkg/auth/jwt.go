package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

const issuer = "affiliate"

type Claims struct {
	Role      domain.Role `json:"role"`
	PartnerID string      `json:"partner_id,omitempty"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateJWT issues a token for actor. It is used by the operator CLI and tests; end users get
// their tokens from the storefront.
func (s *JWTService) GenerateJWT(actor domain.Actor, expirationTime time.Time) (string, error) {
	claims := Claims{
		Role:      actor.Role,
		PartnerID: actor.PartnerID,
		StandardClaims: jwt.StandardClaims{
			Subject:   actor.ID,
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*domain.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}
	switch claims.Role {
	case domain.RoleAdmin, domain.RoleSystem:
	case domain.RolePartner:
		if claims.PartnerID == "" {
			return nil, errors.New("partner token without partner id")
		}
	default:
		return nil, errors.New("unknown role")
	}

	return &domain.Actor{ID: claims.Subject, Role: claims.Role, PartnerID: claims.PartnerID}, nil
}
