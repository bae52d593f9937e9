package labourer

import "context"

type LabourerService interface {
	Create(ctx context.Context, req CreateLabourerRequest) (LabourerResponse, error)
	GetByID(ctx context.Context, id string) (LabourerResponse, error)
	List(ctx context.Context, filter LabourerFilter) (ListLabourerResponse, error)
	Update(ctx context.Context, id string, req UpdateLabourerRequest) (LabourerResponse, error)
	Delete(ctx context.Context, id string) error
}
