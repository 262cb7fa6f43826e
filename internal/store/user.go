package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/amnafatimaa/blog-app/internal/db"
	"github.com/amnafatimaa/blog-app/types"
	"github.com/lib/pq"
)

// pq error code for unique_violation.
const pqUniqueViolation = "23505"

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

// Create inserts a new user. The duplicate-username check and the insert run
// in one transaction; the unique constraint on users.username is the safety
// net for the remaining race window, surfaced as ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	user.CreatedAt = time.Now()

	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		const existsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
		var exists bool
		if err := tx.QueryRowContext(ctx, existsQuery, user.Username).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrDuplicate
		}

		const insertQuery = `
			INSERT INTO users (username, email, password_hash, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id`
		return tx.QueryRowContext(
			ctx,
			insertQuery,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.CreatedAt,
		).Scan(&user.ID)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return types.User{}, ErrDuplicate
		}
		return types.User{}, err
	}
	return user, nil
}
