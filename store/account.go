package store

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"moodtunes/models"
)

// uniqueViolation is the Postgres error code raised when an insert hits
// the users.email unique constraint.
const uniqueViolation = "23505"

// AccountStore persists user accounts in Postgres.
type AccountStore struct {
	pool *pgxpool.Pool
}

func NewAccountStore(pool *pgxpool.Pool) *AccountStore {
	return &AccountStore{pool: pool}
}

// CreateUser hashes the password with bcrypt and inserts the account.
// Returns ErrDuplicateEmail when the email is already registered; the
// insert either fully succeeds or writes nothing.
func (s *AccountStore) CreateUser(ctx context.Context, username, email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var id int64
	query := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING user_id`
	err = s.pool.QueryRow(ctx, query, username, email, string(hash)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return id, nil
}

// VerifyUser checks the password against the stored bcrypt hash for the
// given email. On success it returns the public record, never the hash.
// Unknown email and wrong password both come back as ErrNotFound.
func (s *AccountStore) VerifyUser(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	var hash string
	query := `SELECT user_id, username, email, password_hash, created_at FROM users WHERE email = $1`
	err := s.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Username, &user.Email, &hash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByEmail looks an account up without any credential check. Used
// for duplicate detection at registration and for the password-reset
// existence check.
func (s *AccountStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, username, email, created_at FROM users WHERE email = $1`
	err := s.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
