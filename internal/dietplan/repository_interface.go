package dietplan

import "context"

type Repository interface {
	Create(ctx context.Context, memberID int, title, content string) (*DietPlan, error)
	GetByID(ctx context.Context, id int) (*DietPlan, error)
	ListByMember(ctx context.Context, memberID int) ([]DietPlan, error)
	Update(ctx context.Context, id int, title, content string) (*DietPlan, error)
	Delete(ctx context.Context, id int) error
}
