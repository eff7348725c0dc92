package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

var (
	ErrWebhookDisabled = errors.New("revalidation webhook is not configured")
	ErrInvalidToken    = errors.New("invalid token")
)

// WebhookAuthService signs and checks the HS256 tokens the CMS sends with
// revalidation webhooks.
type WebhookAuthService struct {
	secret []byte
	clock  clockwork.Clock
}

func NewWebhookAuthService(secret string, clock clockwork.Clock) *WebhookAuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &WebhookAuthService{secret: []byte(secret), clock: clock}
}

func (s *WebhookAuthService) Enabled() bool {
	return len(s.secret) > 0
}

// IssueToken signs a token for subject that expires after ttl.
func (s *WebhookAuthService) IssueToken(subject string, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", ErrWebhookDisabled
	}

	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *WebhookAuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	if !s.Enabled() {
		return nil, ErrWebhookDisabled
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, ErrInvalidToken
}
