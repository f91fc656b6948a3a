package content

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/constants"
	"sdc/internal/shared/id"
)

// Person represents a community member listed on the site: team members,
// faculty coordinators, alumni and golden alumni.
type Person struct {
	id        uint
	sid       string // Stripe-style ID: ppl_xxx
	name      string
	category  string
	role      string
	imageURL  string
	linkedIn  string
	gitHub    string
	createdAt time.Time
	updatedAt time.Time
}

func NewPerson(name, category, role, imageURL, linkedIn, gitHub string) (*Person, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !constants.IsValidPersonCategory(category) {
		return nil, fmt.Errorf("invalid person category: %s", category)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixPerson, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Person{
		sid:       sid,
		name:      name,
		category:  category,
		role:      role,
		imageURL:  imageURL,
		linkedIn:  linkedIn,
		gitHub:    gitHub,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructPerson reconstructs a Person from the persistence layer
func ReconstructPerson(
	id uint,
	sid string,
	name string,
	category string,
	role string,
	imageURL string,
	linkedIn string,
	gitHub string,
	createdAt, updatedAt time.Time,
) *Person {
	return &Person{
		id:        id,
		sid:       sid,
		name:      name,
		category:  category,
		role:      role,
		imageURL:  imageURL,
		linkedIn:  linkedIn,
		gitHub:    gitHub,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Person) ID() uint             { return p.id }
func (p *Person) SID() string          { return p.sid }
func (p *Person) Name() string         { return p.name }
func (p *Person) Category() string     { return p.category }
func (p *Person) Role() string         { return p.role }
func (p *Person) ImageURL() string     { return p.imageURL }
func (p *Person) LinkedIn() string     { return p.linkedIn }
func (p *Person) GitHub() string       { return p.gitHub }
func (p *Person) CreatedAt() time.Time { return p.createdAt }
func (p *Person) UpdatedAt() time.Time { return p.updatedAt }

func (p *Person) Update(name, category, role, imageURL, linkedIn, gitHub string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name is required")
	}
	if !constants.IsValidPersonCategory(category) {
		return fmt.Errorf("invalid person category: %s", category)
	}

	p.name = name
	p.category = category
	p.role = role
	if imageURL != "" {
		p.imageURL = imageURL
	}
	p.linkedIn = linkedIn
	p.gitHub = gitHub
	p.updatedAt = biztime.NowUTC()
	return nil
}
