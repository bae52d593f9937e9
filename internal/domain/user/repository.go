package user

import "context"

type SupervisorRepository interface {
	Create(ctx context.Context, s Supervisor) (Supervisor, error)
	GetByID(ctx context.Context, id string) (Supervisor, error)
	GetByEmail(ctx context.Context, email string) (Supervisor, error)
}
