package repository

import (
	"context"

	"github.com/alexanderramin/edpay/internal/domain"
)

type MentorRepo interface {
	Create(ctx context.Context, m *domain.Mentor) error
	GetByID(ctx context.Context, id string) (*domain.Mentor, error)
	List(ctx context.Context) ([]*domain.Mentor, error)
	Count(ctx context.Context) (int, error)
}

// SessionRepo lists sessions in insertion order.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// ReceiptRepo stores receipts together with their ordered session manifest.
type ReceiptRepo interface {
	Create(ctx context.Context, r *domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	List(ctx context.Context) ([]*domain.Receipt, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*domain.Receipt, error)
}

type AuthStateRepo interface {
	Get(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, id *domain.Identity) error
	Clear(ctx context.Context) error
}
