package api

// ErrorResponse is the generic error shape returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// IDResponse is returned by create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SignInRequest carries email+password credentials.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the caller's session for the client-side guard.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	IsAdmin       bool   `json:"isAdmin"`
}

// ContactRequest is a public contact form submission. Required fields are
// rejected before any store call.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ExperienceRequest carries the writable fields of an experience.
type ExperienceRequest struct {
	Role        string   `json:"role" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
}

// ProjectRequest carries the writable fields of a project.
type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	TechStack   []string `json:"techStack"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

// SkillRequest carries the writable fields of a skill.
type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// CertificationRequest carries the writable fields of a certification.
// Description is optional.
type CertificationRequest struct {
	Title       string `json:"title" binding:"required"`
	Issuer      string `json:"issuer" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// UploadResponse is returned by asset upload endpoints.
type UploadResponse struct {
	URL string `json:"url"`
}
