package content

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// GalleryImage represents an image in the public gallery
type GalleryImage struct {
	id        uint
	sid       string // Stripe-style ID: img_xxx
	title     string
	imageURL  string
	createdAt time.Time
	updatedAt time.Time
}

func NewGalleryImage(title, imageURL string) (*GalleryImage, error) {
	title = strings.TrimSpace(title)

	if imageURL == "" {
		return nil, fmt.Errorf("image url is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixGalleryImg, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &GalleryImage{
		sid:       sid,
		title:     title,
		imageURL:  imageURL,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructGalleryImage reconstructs a GalleryImage from the persistence layer
func ReconstructGalleryImage(
	id uint,
	sid string,
	title string,
	imageURL string,
	createdAt, updatedAt time.Time,
) *GalleryImage {
	return &GalleryImage{
		id:        id,
		sid:       sid,
		title:     title,
		imageURL:  imageURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *GalleryImage) ID() uint             { return g.id }
func (g *GalleryImage) SID() string          { return g.sid }
func (g *GalleryImage) Title() string        { return g.title }
func (g *GalleryImage) ImageURL() string     { return g.imageURL }
func (g *GalleryImage) CreatedAt() time.Time { return g.createdAt }
func (g *GalleryImage) UpdatedAt() time.Time { return g.updatedAt }

func (g *GalleryImage) Update(title, imageURL string) error {
	g.title = strings.TrimSpace(title)
	if imageURL != "" {
		g.imageURL = imageURL
	}
	g.updatedAt = biztime.NowUTC()
	return nil
}
