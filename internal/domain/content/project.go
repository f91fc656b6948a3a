package content

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// Project represents a community project. The description is authored in
// Markdown and rendered to HTML at the application layer.
type Project struct {
	id          uint
	sid         string // Stripe-style ID: prj_xxx
	title       string
	description string
	link        string
	imageURL    string
	teamMembers []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(title, description, link, imageURL string, teamMembers []string) (*Project, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixProject, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Project{
		sid:         sid,
		title:       title,
		description: description,
		link:        link,
		imageURL:    imageURL,
		teamMembers: teamMembers,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProject reconstructs a Project from the persistence layer
func ReconstructProject(
	id uint,
	sid string,
	title string,
	description string,
	link string,
	imageURL string,
	teamMembers []string,
	createdAt, updatedAt time.Time,
) *Project {
	return &Project{
		id:          id,
		sid:         sid,
		title:       title,
		description: description,
		link:        link,
		imageURL:    imageURL,
		teamMembers: teamMembers,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Project) ID() uint              { return p.id }
func (p *Project) SID() string           { return p.sid }
func (p *Project) Title() string         { return p.title }
func (p *Project) Description() string   { return p.description }
func (p *Project) Link() string          { return p.link }
func (p *Project) ImageURL() string      { return p.imageURL }
func (p *Project) TeamMembers() []string { return p.teamMembers }
func (p *Project) CreatedAt() time.Time  { return p.createdAt }
func (p *Project) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Project) Update(title, description, link, imageURL string, teamMembers []string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return fmt.Errorf("title is required")
	}

	p.title = title
	p.description = description
	p.link = link
	if imageURL != "" {
		p.imageURL = imageURL
	}
	if teamMembers != nil {
		p.teamMembers = teamMembers
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}
