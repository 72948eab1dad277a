package handler

import (
	"time"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Workspace ---

type createWorkspaceResponse struct {
	WorkspaceID string    `json:"workspaceId"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// --- Session ---

type signInRequest struct {
	Mode        string `json:"mode"        validate:"required,oneof=login register"`
	Name        string `json:"name"        validate:"required_if=Mode register,max=120"`
	Email       string `json:"email"       validate:"required,max=254"`
	Role        string `json:"role"        validate:"omitempty,user_role"`
	Institution string `json:"institution" validate:"max=200"`
}

type signInResponse struct {
	User *domain.User `json:"user"`
}

// --- Filters ---

// updateFiltersRequest sets exactly one filter field per call.
type updateFiltersRequest struct {
	Country *string `json:"country" validate:"omitempty,min=1,max=80"`
	State   *string `json:"state"   validate:"omitempty,max=80"`
	Field   *string `json:"field"   validate:"omitempty,field_of_interest"`
	Level   *string `json:"level"   validate:"omitempty,education_level"`
}

type filtersResponse struct {
	Filters domain.SearchFilters `json:"filters"`
}

// --- Search ---

type searchAcceptedResponse struct {
	Seq     uint64               `json:"seq"`
	Status  string               `json:"status"`
	Filters domain.SearchFilters `json:"filters"`
}

// --- Selection ---

type selectCompetitionRequest struct {
	ID           string   `json:"id"           validate:"required,max=120"`
	Name         string   `json:"name"         validate:"required,max=200"`
	Organizer    string   `json:"organizer"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Field        string   `json:"field"`
	Deadline     string   `json:"deadline"`
	Eligibility  string   `json:"eligibility"`
	WebsiteURL   string   `json:"websiteUrl"   validate:"omitempty,http_url"`
	Tags         []string `json:"tags"`
	ImageKeyword string   `json:"imageKeyword"`
	ImageURL     string   `json:"imageUrl"`
}

func (r selectCompetitionRequest) toDomain() domain.Competition {
	return domain.Competition{
		ID:           r.ID,
		Name:         r.Name,
		Organizer:    r.Organizer,
		Description:  r.Description,
		Location:     r.Location,
		Field:        r.Field,
		Deadline:     r.Deadline,
		Eligibility:  r.Eligibility,
		WebsiteURL:   r.WebsiteURL,
		Tags:         append([]string{}, r.Tags...),
		ImageKeyword: r.ImageKeyword,
		ImageURL:     r.ImageURL,
	}
}

// --- Shell ---

type updateShellRequest struct {
	SidePanelOpen *bool `json:"sidePanelOpen"`
	AuthModalOpen *bool `json:"authModalOpen"`
	ToggleTheme   bool  `json:"toggleTheme"`
}

// --- Navigation ---

type navigateRequest struct {
	Item string `json:"item" validate:"required"`
}

// --- Catalog ---

type catalogResponse struct {
	Countries  []string                 `json:"countries"`
	States     []string                 `json:"states"`
	Fields     []domain.FieldOfInterest `json:"fields"`
	Levels     []domain.EducationLevel  `json:"levels"`
	Roles      []domain.Role            `json:"roles"`
	Categories []domain.Category        `json:"categories"`
	Menu       []domain.MenuItem        `json:"menu"`
}
