package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
	"github.com/competeconnect/competition-api/internal/core/state"
)

const (
	defaultIdleTTL = 2 * time.Hour

	demoUserName    = "Demo User"
	demoInstitution = "Demo University"
)

// CompetitionFinder abstracts the query client.
type CompetitionFinder interface {
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Competition, error)
}

// WorkspaceOptions tunes the in-memory workspace registry.
type WorkspaceOptions struct {
	// IdleTTL is how long an untouched workspace stays in memory.
	IdleTTL time.Duration
	Now     func() time.Time
}

// WorkspaceService owns the workspaces of all connected clients.
type WorkspaceService struct {
	mu         sync.RWMutex
	workspaces map[string]*state.Workspace

	storage   ports.SessionStorage
	finder    CompetitionFinder
	searchLog ports.SearchLog
	sanitizer *Sanitizer
	idleTTL   time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewWorkspaceService returns a WorkspaceService. searchLog may be nil.
func NewWorkspaceService(
	storage ports.SessionStorage,
	finder CompetitionFinder,
	searchLog ports.SearchLog,
	opts WorkspaceOptions,
	log zerolog.Logger,
) *WorkspaceService {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = defaultIdleTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &WorkspaceService{
		workspaces: make(map[string]*state.Workspace),
		storage:    storage,
		finder:     finder,
		searchLog:  searchLog,
		sanitizer:  NewSanitizer(),
		idleTTL:    opts.IdleTTL,
		now:        opts.Now,
		log:        log,
	}
}

// Create registers a new, signed-out workspace and returns its id.
func (s *WorkspaceService) Create(_ context.Context) (string, error) {
	id := uuid.NewString()
	ws := state.NewWorkspace(id, state.NewSessionStore(s.storage, id, s.log), s.now())

	s.mu.Lock()
	s.workspaces[id] = ws
	s.mu.Unlock()

	s.log.Debug().Str("workspace", id).Msg("workspace created")
	return id, nil
}

// workspace returns the live workspace for id. A workspace that was swept or
// lost in a restart is rebuilt and its session restored from storage.
func (s *WorkspaceService) workspace(ctx context.Context, id string) (*state.Workspace, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrWorkspaceNotFound
	}

	s.mu.RLock()
	ws, ok := s.workspaces[id]
	s.mu.RUnlock()
	if ok {
		ws.Touch(s.now())
		return ws, nil
	}

	restored := state.NewWorkspace(id, state.NewSessionStore(s.storage, id, s.log), s.now())
	_, signedIn := restored.Session().Restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.workspaces[id]; ok {
		existing.Touch(s.now())
		return existing, nil
	}
	s.workspaces[id] = restored

	s.log.Info().Str("workspace", id).Bool("signed_in", signedIn).Msg("workspace restored")
	return restored, nil
}

func (s *WorkspaceService) Snapshot(ctx context.Context, id string) (state.Snapshot, error) {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return state.Snapshot{}, err
	}
	return ws.Snapshot(), nil
}

// CurrentRole returns the role of the signed-in user, or "" for a guest.
func (s *WorkspaceService) CurrentRole(ctx context.Context, id string) (domain.Role, error) {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return "", err
	}
	u, ok := ws.Session().Current()
	if !ok {
		return "", nil
	}
	return u.Role, nil
}

// SignIn creates the demo session record. No credential is checked: login
// mode yields the demo user, register mode takes the submitted profile.
func (s *WorkspaceService) SignIn(ctx context.Context, id string, in ports.SignInInput) (*domain.User, error) {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := newSessionUser(in)
	if err != nil {
		return nil, err
	}
	if err := ws.Session().SignIn(ctx, user); err != nil {
		return nil, err
	}
	ws.UpdateShell(func(sh *state.Shell) { sh.AuthModalOpen = false })

	s.log.Info().Str("workspace", id).Str("role", string(user.Role)).Msg("signed in")
	return &user, nil
}

func newSessionUser(in ports.SignInInput) (domain.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return domain.User{}, domain.ErrInvalidUser
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Name:        demoUserName,
		Email:       email,
		Role:        domain.RoleCandidate,
		Institution: demoInstitution,
	}

	switch in.Mode {
	case ports.SignInLogin, "":
		return user, nil
	case ports.SignInRegister:
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return domain.User{}, domain.ErrInvalidUser
		}
		role := domain.RoleCandidate
		if strings.TrimSpace(in.Role) != "" {
			r, ok := domain.ParseRole(in.Role)
			if !ok {
				return domain.User{}, domain.ErrInvalidUser
			}
			role = r
		}
		user.Name = name
		user.Role = role
		user.Institution = strings.TrimSpace(in.Institution)
		return user, nil
	default:
		return domain.User{}, domain.ErrInvalidUser
	}
}

// SignOut ends the session and resets the result view. The view is reset
// even when erasing the stored record fails.
func (s *WorkspaceService) SignOut(ctx context.Context, id string) error {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return err
	}
	err = ws.Session().SignOut(ctx)
	ws.GoHome()

	s.log.Info().Str("workspace", id).Msg("signed out")
	return err
}

func (s *WorkspaceService) SetFilter(ctx context.Context, id string, name domain.FilterName, value string) (domain.SearchFilters, error) {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return domain.SearchFilters{}, err
	}
	return ws.SetFilter(name, value)
}

// BeginSearch moves the view to searching and returns the job to run.
func (s *WorkspaceService) BeginSearch(ctx context.Context, id string) (ports.SearchJob, error) {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return ports.SearchJob{}, err
	}
	seq, filters := ws.BeginSearch()
	return ports.SearchJob{
		WorkspaceID: id,
		Seq:         seq,
		Filters:     filters,
		IssuedAt:    s.now(),
	}, nil
}

// AbortSearch fails a search that could not be scheduled, so the view does
// not stay in searching.
func (s *WorkspaceService) AbortSearch(ctx context.Context, job ports.SearchJob, cause error) error {
	ws, err := s.workspace(ctx, job.WorkspaceID)
	if err != nil {
		return err
	}
	if ws.FailSearch(job.Seq, FailureReason(cause)) {
		s.record(ctx, ws, job, ports.OutcomeFailed, 0, FailureReason(cause))
	}
	return nil
}

// RunSearch executes job and applies its result to the workspace, unless a
// newer search or a reset has superseded it. A superseded search is
// cancelled and reported as stale without an error.
func (s *WorkspaceService) RunSearch(ctx context.Context, job ports.SearchJob) (ports.SearchOutcome, error) {
	s.mu.RLock()
	ws, ok := s.workspaces[job.WorkspaceID]
	s.mu.RUnlock()
	if !ok {
		s.record(ctx, nil, job, ports.OutcomeStale, 0, "")
		return ports.OutcomeStale, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !ws.TrackRun(job.Seq, cancel) {
		s.record(ctx, ws, job, ports.OutcomeStale, 0, "")
		return ports.OutcomeStale, nil
	}

	comps, searchErr := s.finder.Search(runCtx, job.Filters)

	outcome := ports.OutcomeEmpty
	reason := ""
	var applied bool
	if searchErr != nil {
		outcome = ports.OutcomeFailed
		reason = FailureReason(searchErr)
		applied = ws.FailSearch(job.Seq, reason)
	} else {
		if len(comps) > 0 {
			outcome = ports.OutcomePopulated
		}
		applied = ws.CompleteSearch(job.Seq, comps)
	}
	if !applied {
		outcome, reason, searchErr = ports.OutcomeStale, "", nil
	}

	s.record(ctx, ws, job, outcome, len(comps), reason)
	return outcome, searchErr
}

// record writes the audit entry for job. ws is nil when the workspace was
// swept before the job ran.
func (s *WorkspaceService) record(ctx context.Context, ws *state.Workspace, job ports.SearchJob, outcome ports.SearchOutcome, count int, reason string) {
	if s.searchLog == nil {
		return
	}
	rec := ports.SearchRecord{
		WorkspaceID: job.WorkspaceID,
		Seq:         job.Seq,
		Filters:     job.Filters,
		Outcome:     outcome,
		Count:       count,
		Reason:      reason,
		IssuedAt:    job.IssuedAt,
		Duration:    s.now().Sub(job.IssuedAt),
	}
	if ws != nil {
		if u, ok := ws.Session().Current(); ok {
			rec.UserID = u.ID
		}
	}
	if err := s.searchLog.Record(ctx, rec); err != nil {
		s.log.Warn().Err(err).Str("workspace", job.WorkspaceID).Msg("failed to record search")
	}
}

// FailureReason turns a query error into a message fit for the view.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "Competition search is not configured on this server."
	case errors.Is(err, context.DeadlineExceeded):
		return "The competition service took too long to respond. Please try again."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "The competition service returned an unreadable answer. Please try again."
	default:
		return "The competition service is unavailable right now. Please try again."
	}
}

func (s *WorkspaceService) GoHome(ctx context.Context, id string) error {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return err
	}
	ws.GoHome()
	return nil
}

// Select opens the detail view. The record comes from the client, so it is
// sanitised like a generated one.
func (s *WorkspaceService) Select(ctx context.Context, id string, c domain.Competition) error {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return err
	}
	c = s.sanitizer.Competition(c)
	if c.ID == "" || c.Name == "" {
		return domain.ErrInvalidSelection
	}
	ws.Select(c)
	return nil
}

func (s *WorkspaceService) ClearSelection(ctx context.Context, id string) error {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return err
	}
	ws.ClearSelection()
	return nil
}

func (s *WorkspaceService) UpdateShell(ctx context.Context, id string, u ports.ShellUpdate) (state.Shell, error) {
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return state.Shell{}, err
	}
	return ws.UpdateShell(func(sh *state.Shell) {
		if u.SidePanelOpen != nil {
			sh.SidePanelOpen = *u.SidePanelOpen
		}
		if u.AuthModalOpen != nil {
			sh.AuthModalOpen = *u.AuthModalOpen
		}
		if u.ToggleTheme {
			sh.ToggleTheme()
		}
	}), nil
}

// Navigate follows a side panel item. The panel always closes; guests who
// pick a members-only item get the sign-in modal instead.
func (s *WorkspaceService) Navigate(ctx context.Context, id string, key string) (ports.NavigationResult, error) {
	item, ok := domain.FindMenuItem(key)
	if !ok {
		return ports.NavigationResult{}, domain.ErrUnknownMenuItem
	}
	ws, err := s.workspace(ctx, id)
	if err != nil {
		return ports.NavigationResult{}, err
	}

	_, signedIn := ws.Session().Current()
	gated := !signedIn && !item.GuestAllowed
	ws.UpdateShell(func(sh *state.Shell) {
		sh.SidePanelOpen = false
		if gated {
			sh.AuthModalOpen = true
		}
	})

	return ports.NavigationResult{Item: item, Navigated: !gated, AuthRequired: gated}, nil
}

// Sweep drops workspaces idle for longer than the idle TTL and returns how
// many were removed. Their session records stay in storage.
func (s *WorkspaceService) Sweep(_ context.Context) int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ws := range s.workspaces {
		if ws.LastSeen().Before(cutoff) {
			delete(s.workspaces, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of workspaces held in memory.
func (s *WorkspaceService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}
