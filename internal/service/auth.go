package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// bcrypt cost factor (10-14 recommended for production)
const bcryptCost = 12

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// TokenSigner defines the interface for access token issuance
type TokenSigner interface {
	Sign(userID int64, username string) (string, error)
}

// AuthService handles authentication operations
type AuthService struct {
	users  UserRepository
	tokens TokenSigner
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	Users  UserRepository
	Tokens TokenSigner
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		users:  cfg.Users,
		tokens: cfg.Tokens,
	}
}

// Credentials represents a username/password pair
type Credentials struct {
	Username string
	Password string
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken string
	Username    string
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, creds Credentials) (*model.User, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if creds.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues an access token. Unknown usernames
// and wrong passwords share one error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if creds.Password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		Username:    user.Username,
	}, nil
}
