package inquiry

import "time"

// Status tracks how far an inquiry has been worked. Inquiries only move
// forward: NEW -> CONTACTED -> CLOSED, with NEW -> CLOSED allowed for
// spam/duplicates.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusContacted Status = "CONTACTED"
	StatusClosed    Status = "CLOSED"
)

type Inquiry struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"gym_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email,omitempty"`
	Message   string    `db:"message" json:"message,omitempty"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateInquiryRequest struct {
	GymID   int    `json:"gym_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}
