package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lingnite/user-service/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository uses; pgx.Tx and pgxmock
// satisfy it too, so the same repository code runs inside a transaction and
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InTx runs fn against a repository bound to a single transaction. Any error
// from fn rolls the whole unit back, so a multi-statement login leaves either
// all of its writes or none of them.
func (r *PostgresRepository) InTx(ctx context.Context, fn func(domain.UserRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&PostgresRepository{db: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const userColumns = `id, username, email, phone, password_hash, nickname, avatar_url,
	       status, email_verified, is_deleted, last_login_time, last_login_ip,
	       login_count, created_at, updated_at`

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return r.findOne(ctx, query, email)
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
		LIMIT 1;
	`
	return r.findOne(ctx, query, username)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.findOne(ctx, query, id)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Phone, &user.PasswordHash,
		&user.Nickname, &user.AvatarURL, &user.Status, &user.EmailVerified, &user.Deleted,
		&user.LastLoginTime, &user.LastLoginIP, &user.LoginCount, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// Insert stores a new user and fills in the generated id.
func (r *PostgresRepository) Insert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, phone, password_hash, nickname, avatar_url,
		                   status, email_verified, is_deleted, login_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, 0, now(), now())
		RETURNING id;
	`
	row := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Phone, user.PasswordHash,
		user.Nickname, user.AvatarURL, user.Status, user.EmailVerified)

	if err := row.Scan(&user.ID); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateLoginInfo persists the login telemetry fields in one statement, so a
// login either fully records its attempt or leaves the row untouched.
func (r *PostgresRepository) UpdateLoginInfo(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET last_login_time = $1, last_login_ip = $2, login_count = $3, updated_at = now()
		WHERE id = $4;
	`
	tag, err := r.db.Exec(ctx, query, user.LastLoginTime, user.LastLoginIP, user.LoginCount, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update login info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found for login info update", user.ID)
	}

	return nil
}
