package repository

import (
	"context"
	"fmt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// UserRepository handles user account data access
type UserRepository struct {
	db database.Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated ID. Returns
// database.ErrDuplicate when the username is already taken.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`, user.Username, user.PasswordHash)

	if err := row.Scan(&user.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("user create: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by username, or nil when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash
		FROM users
		WHERE username = $1`, username)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	return &u, nil
}

// GetByID retrieves a user by ID, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash
		FROM users
		WHERE id = $1`, id)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	return &u, nil
}
