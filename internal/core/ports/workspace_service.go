package ports

import (
	"context"
	"time"

	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/state"
)

// SignInMode mirrors the two tabs of the sign-in form.
type SignInMode string

const (
	SignInLogin    SignInMode = "login"
	SignInRegister SignInMode = "register"
)

// SignInInput is the DTO passed from the transport layer to the workspace service.
type SignInInput struct {
	Mode        SignInMode
	Name        string
	Email       string
	Role        string
	Institution string
}

// ShellUpdate carries optional flag changes; nil fields are left alone.
type ShellUpdate struct {
	SidePanelOpen *bool
	AuthModalOpen *bool
	ToggleTheme   bool
}

// NavigationResult tells the view what following a menu item did.
type NavigationResult struct {
	Item         domain.MenuItem `json:"item"`
	Navigated    bool            `json:"navigated"`
	AuthRequired bool            `json:"authRequired"`
}

// SearchJob is one issued search waiting for a worker.
type SearchJob struct {
	WorkspaceID string
	Seq         uint64
	Filters     domain.SearchFilters
	IssuedAt    time.Time
}

// WorkspaceService is the use-case surface the HTTP layer talks to.
type WorkspaceService interface {
	Create(ctx context.Context) (string, error)
	Snapshot(ctx context.Context, id string) (state.Snapshot, error)
	CurrentRole(ctx context.Context, id string) (domain.Role, error)

	SignIn(ctx context.Context, id string, in SignInInput) (*domain.User, error)
	SignOut(ctx context.Context, id string) error

	SetFilter(ctx context.Context, id string, name domain.FilterName, value string) (domain.SearchFilters, error)
	BeginSearch(ctx context.Context, id string) (SearchJob, error)
	AbortSearch(ctx context.Context, job SearchJob, cause error) error
	GoHome(ctx context.Context, id string) error

	Select(ctx context.Context, id string, c domain.Competition) error
	ClearSelection(ctx context.Context, id string) error

	UpdateShell(ctx context.Context, id string, u ShellUpdate) (state.Shell, error)
	Navigate(ctx context.Context, id string, key string) (NavigationResult, error)
}

// SearchRunner executes issued searches. The dispatcher calls it from its workers.
type SearchRunner interface {
	RunSearch(ctx context.Context, job SearchJob) (SearchOutcome, error)
}
