// Package content holds the publicly displayed site content: testimonials,
// people, projects, FAQs and gallery images.
package content

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// Testimonial represents a client testimonial shown on the landing page
type Testimonial struct {
	id         uint
	sid        string // Stripe-style ID: tm_xxx
	clientName string
	quote      string
	imageURL   string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTestimonial(clientName, quote, imageURL string) (*Testimonial, error) {
	clientName = strings.TrimSpace(clientName)
	quote = strings.TrimSpace(quote)

	if clientName == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if quote == "" {
		return nil, fmt.Errorf("quote is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixTestimonial, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Testimonial{
		sid:        sid,
		clientName: clientName,
		quote:      quote,
		imageURL:   imageURL,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructTestimonial reconstructs a Testimonial from the persistence layer
func ReconstructTestimonial(
	id uint,
	sid string,
	clientName string,
	quote string,
	imageURL string,
	createdAt, updatedAt time.Time,
) *Testimonial {
	return &Testimonial{
		id:         id,
		sid:        sid,
		clientName: clientName,
		quote:      quote,
		imageURL:   imageURL,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (t *Testimonial) ID() uint             { return t.id }
func (t *Testimonial) SID() string          { return t.sid }
func (t *Testimonial) ClientName() string   { return t.clientName }
func (t *Testimonial) Quote() string        { return t.quote }
func (t *Testimonial) ImageURL() string     { return t.imageURL }
func (t *Testimonial) CreatedAt() time.Time { return t.createdAt }
func (t *Testimonial) UpdatedAt() time.Time { return t.updatedAt }

func (t *Testimonial) Update(clientName, quote, imageURL string) error {
	clientName = strings.TrimSpace(clientName)
	quote = strings.TrimSpace(quote)

	if clientName == "" {
		return fmt.Errorf("client name is required")
	}
	if quote == "" {
		return fmt.Errorf("quote is required")
	}

	t.clientName = clientName
	t.quote = quote
	if imageURL != "" {
		t.imageURL = imageURL
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}
