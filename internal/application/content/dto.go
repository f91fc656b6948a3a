package content

// TestimonialDTO is the transport shape for a testimonial
type TestimonialDTO struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Quote      string `json:"quote"`
	ImageURL   string `json:"image_url,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// PersonDTO is the transport shape for a person
type PersonDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Role      string `json:"role,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ProjectDTO is the transport shape for a project. DescriptionHTML carries
// the rendered and sanitized Markdown description.
type ProjectDTO struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html,omitempty"`
	Link            string   `json:"link,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	TeamMembers     []string `json:"team_members,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// FAQDTO is the transport shape for a FAQ entry
type FAQDTO struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// GalleryImageDTO is the transport shape for a gallery image
type GalleryImageDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateTestimonialCommand carries input for creating a testimonial
type CreateTestimonialCommand struct {
	ClientName string `json:"client_name" validate:"required,max=100"`
	Quote      string `json:"quote" validate:"required,max=2000"`
	ImageURL   string `json:"image_url" validate:"omitempty,url,max=500"`
}

// UpdateTestimonialCommand carries input for updating a testimonial
type UpdateTestimonialCommand struct {
	ClientName string `json:"client_name" validate:"required,max=100"`
	Quote      string `json:"quote" validate:"required,max=2000"`
	ImageURL   string `json:"image_url" validate:"omitempty,url,max=500"`
}

// CreatePersonCommand carries input for creating a person
type CreatePersonCommand struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"required,oneof=team faculty alumni golden_alumni"`
	Role     string `json:"role" validate:"max=100"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url,max=255"`
	GitHub   string `json:"github" validate:"omitempty,url,max=255"`
}

// UpdatePersonCommand carries input for updating a person
type UpdatePersonCommand struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"required,oneof=team faculty alumni golden_alumni"`
	Role     string `json:"role" validate:"max=100"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url,max=255"`
	GitHub   string `json:"github" validate:"omitempty,url,max=255"`
}

// CreateProjectCommand carries input for creating a project
type CreateProjectCommand struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=20000"`
	Link        string   `json:"link" validate:"omitempty,url,max=500"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
	TeamMembers []string `json:"team_members" validate:"max=50,dive,max=100"`
}

// UpdateProjectCommand carries input for updating a project
type UpdateProjectCommand struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=20000"`
	Link        string   `json:"link" validate:"omitempty,url,max=500"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
	TeamMembers []string `json:"team_members" validate:"max=50,dive,max=100"`
}

// CreateFAQCommand carries input for creating a FAQ
type CreateFAQCommand struct {
	Question string `json:"ques" validate:"required,max=1000"`
	Answer   string `json:"ans" validate:"required,max=5000"`
}

// UpdateFAQCommand carries input for updating a FAQ
type UpdateFAQCommand struct {
	Question string `json:"ques" validate:"required,max=1000"`
	Answer   string `json:"ans" validate:"required,max=5000"`
}

// CreateGalleryImageCommand carries input for adding a gallery image
type CreateGalleryImageCommand struct {
	Title    string `json:"title" validate:"max=200"`
	ImageURL string `json:"image_url" validate:"required,url,max=500"`
}

// UpdateGalleryImageCommand carries input for updating a gallery image
type UpdateGalleryImageCommand struct {
	Title    string `json:"title" validate:"max=200"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`
}
