package owner

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, phone string) (*Owner, error)
	GetByID(ctx context.Context, id int) (*Owner, error)
	List(ctx context.Context) ([]Owner, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int, name, phone string) (*Owner, error)
	Delete(ctx context.Context, id int) error
}
