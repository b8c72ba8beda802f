package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

type mockUserRepository struct {
	createFunc        func(ctx context.Context, user *model.User) error
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	getByIDFunc       func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.createFunc(ctx, user)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.getByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.getByIDFunc(ctx, id)
}

type mockTokenSigner struct {
	signFunc func(userID int64, username string) (string, error)
}

func (m *mockTokenSigner) Sign(userID int64, username string) (string, error) {
	return m.signFunc(userID, username)
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("hashes password and stores user", func(t *testing.T) {
		t.Parallel()
		var stored *model.User
		svc := NewAuthService(AuthServiceConfig{
			Users: &mockUserRepository{
				createFunc: func(ctx context.Context, user *model.User) error {
					user.ID = 7
					stored = user
					return nil
				},
			},
		})

		user, err := svc.Register(context.Background(), Credentials{Username: " alice ", Password: "opensesame"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 7 || user.Username != "alice" {
			t.Errorf("unexpected user %+v", user)
		}
		if stored.PasswordHash == "opensesame" || stored.PasswordHash == "" {
			t.Error("password must be stored hashed")
		}
		if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("opensesame")) != nil {
			t.Error("stored hash does not verify against the original password")
		}
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(AuthServiceConfig{
			Users: &mockUserRepository{
				createFunc: func(ctx context.Context, user *model.User) error {
					return database.ErrDuplicate
				},
			},
		})

		_, err := svc.Register(context.Background(), Credentials{Username: "alice", Password: "opensesame"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(AuthServiceConfig{Users: &mockUserRepository{}})

		if _, err := svc.Register(context.Background(), Credentials{Username: "  ", Password: "x"}); !errors.Is(err, ErrUsernameRequired) {
			t.Errorf("expected ErrUsernameRequired, got %v", err)
		}
		if _, err := svc.Register(context.Background(), Credentials{Username: "alice"}); !errors.Is(err, ErrPasswordRequired) {
			t.Errorf("expected ErrPasswordRequired, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	alice := &model.User{ID: 7, Username: "alice", PasswordHash: string(hash)}

	t.Run("issues token on valid credentials", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(AuthServiceConfig{
			Users: &mockUserRepository{
				getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
					if username != "alice" {
						return nil, nil
					}
					return alice, nil
				},
			},
			Tokens: &mockTokenSigner{
				signFunc: func(userID int64, username string) (string, error) {
					return "signed-token", nil
				},
			},
		})

		result, err := svc.Login(context.Background(), Credentials{Username: "alice", Password: "opensesame"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AccessToken != "signed-token" || result.Username != "alice" {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("unknown user and wrong password return the same error", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(AuthServiceConfig{
			Users: &mockUserRepository{
				getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
					if username == "alice" {
						return alice, nil
					}
					return nil, nil
				},
			},
		})

		if _, err := svc.Login(context.Background(), Credentials{Username: "bob", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := svc.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects blank fields before any lookup", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(AuthServiceConfig{Users: &mockUserRepository{}})

		if _, err := svc.Login(context.Background(), Credentials{Username: " ", Password: "x"}); !errors.Is(err, ErrUsernameRequired) {
			t.Errorf("expected ErrUsernameRequired, got %v", err)
		}
		if _, err := svc.Login(context.Background(), Credentials{Username: "alice"}); !errors.Is(err, ErrPasswordRequired) {
			t.Errorf("expected ErrPasswordRequired, got %v", err)
		}
	})
}
