package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

const defaultTokenTTL = 24 * time.Hour

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid email or password"}

// TokenClaims is the JWT payload issued at register/login.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// AuthService issues and verifies bearer tokens.
type AuthService struct {
	Users     UserStore
	Secret    []byte
	TokenTTL  time.Duration
	RequestID string
	NewID     func() string
	Now       func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return defaultTokenTTL
}

// Register creates a user with a bcrypt hash and returns a fresh token.
func (s AuthService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, domain.ValidationError{Field: "email", Msg: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	u := models.User{
		ID:           newID(s.NewID),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if domain.IsConflict(err) {
			return AuthResult{}, domain.ValidationError{Field: "email", Msg: "email already registered", Err: err}
		}
		return AuthResult{}, err
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return AuthResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user_id="+u.ID)
	return AuthResult{User: u, Token: token}, nil
}

// Login checks the password hash and returns a fresh token.
func (s AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if domain.IsNotFound(err) {
			return AuthResult{}, errBadCredentials
		}
		return AuthResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, errBadCredentials
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return AuthResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+u.ID)
	return AuthResult{User: u, Token: token}, nil
}

// IssueToken signs an HS256 token for userID.
func (s AuthService) IssueToken(userID string) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "sign token", Err: err}
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the subject user id.
func (s AuthService) ParseToken(tokenString string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	if claims.UserID == "" {
		return "", domain.UnauthorizedError{Msg: "invalid token"}
	}
	return claims.UserID, nil
}

// CurrentUser resolves the user a validated token belongs to.
func (s AuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return s.Users.GetByID(ctx, userID)
}
