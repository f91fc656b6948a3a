package intake

import "context"

// ContactRepository defines the interface for contact message persistence
type ContactRepository interface {
	Create(ctx context.Context, m *ContactMessage) error
	GetBySID(ctx context.Context, sid string) (*ContactMessage, error)
	List(ctx context.Context, offset, limit int) ([]*ContactMessage, int64, error)
	Update(ctx context.Context, m *ContactMessage) error
	Delete(ctx context.Context, sid string) error
}

// ApplicationRepository defines the interface for application persistence
type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) error
	GetBySID(ctx context.Context, sid string) (*Application, error)
	List(ctx context.Context, offset, limit int) ([]*Application, int64, error)
	Update(ctx context.Context, a *Application) error
	Delete(ctx context.Context, sid string) error
}
