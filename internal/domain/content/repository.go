package content

import "context"

// TestimonialRepository defines the interface for testimonial persistence
type TestimonialRepository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetBySID(ctx context.Context, sid string) (*Testimonial, error)
	List(ctx context.Context) ([]*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, sid string) error
}

// PersonRepository defines the interface for person persistence
type PersonRepository interface {
	Create(ctx context.Context, p *Person) error
	GetBySID(ctx context.Context, sid string) (*Person, error)
	List(ctx context.Context) ([]*Person, error)
	ListByCategory(ctx context.Context, category string) ([]*Person, error)
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, sid string) error
}

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	GetBySID(ctx context.Context, sid string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, sid string) error
}

// FAQRepository defines the interface for FAQ persistence
type FAQRepository interface {
	Create(ctx context.Context, f *FAQ) error
	GetBySID(ctx context.Context, sid string) (*FAQ, error)
	List(ctx context.Context) ([]*FAQ, error)
	Update(ctx context.Context, f *FAQ) error
	Delete(ctx context.Context, sid string) error
}

// GalleryRepository defines the interface for gallery image persistence
type GalleryRepository interface {
	Create(ctx context.Context, g *GalleryImage) error
	GetBySID(ctx context.Context, sid string) (*GalleryImage, error)
	List(ctx context.Context) ([]*GalleryImage, error)
	Update(ctx context.Context, g *GalleryImage) error
	Delete(ctx context.Context, sid string) error
}
