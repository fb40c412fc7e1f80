package outreach

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository persists contact messages and newsletter subscribers.
type Repository interface {
	CreateMessage(ctx context.Context, msg ContactMessage) (int64, error)
	Subscribe(ctx context.Context, email string) error
}

type PGRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) CreateMessage(ctx context.Context, msg ContactMessage) (int64, error) {
	const q = `INSERT INTO contact_messages (name, email, subject, message)
VALUES ($1, $2, $3, $4)
RETURNING id`
	var id int64
	if err := r.pool.QueryRow(ctx, q, msg.Name, msg.Email, msg.Subject, msg.Message).Scan(&id); err != nil {
		return 0, httpx.TranslatePGError(err)
	}
	return id, nil
}

// Subscribe records an email address. Repeated subscriptions are a no-op.
func (r *PGRepository) Subscribe(ctx context.Context, email string) error {
	const q = `INSERT INTO subscribers (email)
VALUES ($1)
ON CONFLICT (email) DO NOTHING`
	if _, err := r.pool.Exec(ctx, q, email); err != nil {
		return httpx.TranslatePGError(err)
	}
	return nil
}
