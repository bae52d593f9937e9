package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/user"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
)

type supervisorRepository struct {
	db *database.DB
}

func NewSupervisorRepository(db *database.DB) user.SupervisorRepository {
	return &supervisorRepository{db: db}
}

const supervisorColumns = `id, full_name, email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at`

func scanSupervisor(row pgx.Row) (user.Supervisor, error) {
	var s user.Supervisor
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.Role,
		&s.OAuthProvider, &s.OAuthProviderID, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements user.SupervisorRepository.
func (r *supervisorRepository) Create(ctx context.Context, s user.Supervisor) (user.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO supervisors (full_name, email, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.FullName, s.Email, s.PasswordHash, s.Role, s.OAuthProvider, s.OAuthProviderID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.Supervisor{}, user.ErrEmailExists
		}
		return user.Supervisor{}, fmt.Errorf("failed to create supervisor: %w", err)
	}

	return s, nil
}

// GetByID implements user.SupervisorRepository.
func (r *supervisorRepository) GetByID(ctx context.Context, id string) (user.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSupervisor(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM supervisors WHERE id = $1`, supervisorColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Supervisor{}, user.ErrSupervisorNotFound
		}
		return user.Supervisor{}, fmt.Errorf("failed to get supervisor: %w", err)
	}

	return s, nil
}

// GetByEmail implements user.SupervisorRepository.
func (r *supervisorRepository) GetByEmail(ctx context.Context, email string) (user.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSupervisor(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM supervisors WHERE email = $1`, supervisorColumns), email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Supervisor{}, user.ErrSupervisorNotFound
		}
		return user.Supervisor{}, fmt.Errorf("failed to get supervisor by email: %w", err)
	}

	return s, nil
}
