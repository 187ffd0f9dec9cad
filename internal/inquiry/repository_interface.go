package inquiry

import "context"

type Repository interface {
	Create(ctx context.Context, gymID int, name, phone, email, message string) (*Inquiry, error)
	GetByID(ctx context.Context, id int) (*Inquiry, error)
	ListByGym(ctx context.Context, gymID int) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Inquiry, error)
}
