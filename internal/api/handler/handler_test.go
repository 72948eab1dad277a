package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/api/middleware"
	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
	"github.com/competeconnect/competition-api/internal/core/state"
)

// stubWorkspaceService implements the methods a test sets; calling any other
// panics through the nil embedded interface.
type stubWorkspaceService struct {
	ports.WorkspaceService

	createFn      func(ctx context.Context) (string, error)
	snapshotFn    func(ctx context.Context, id string) (state.Snapshot, error)
	signInFn      func(ctx context.Context, id string, in ports.SignInInput) (*domain.User, error)
	setFilterFn   func(ctx context.Context, id string, name domain.FilterName, value string) (domain.SearchFilters, error)
	beginSearchFn func(ctx context.Context, id string) (ports.SearchJob, error)
	abortFn       func(ctx context.Context, job ports.SearchJob, cause error) error
	selectFn      func(ctx context.Context, id string, c domain.Competition) error
	navigateFn    func(ctx context.Context, id, key string) (ports.NavigationResult, error)
}

func (s *stubWorkspaceService) Create(ctx context.Context) (string, error) { return s.createFn(ctx) }

func (s *stubWorkspaceService) Snapshot(ctx context.Context, id string) (state.Snapshot, error) {
	return s.snapshotFn(ctx, id)
}

func (s *stubWorkspaceService) SignIn(ctx context.Context, id string, in ports.SignInInput) (*domain.User, error) {
	return s.signInFn(ctx, id, in)
}

func (s *stubWorkspaceService) SetFilter(ctx context.Context, id string, name domain.FilterName, value string) (domain.SearchFilters, error) {
	return s.setFilterFn(ctx, id, name, value)
}

func (s *stubWorkspaceService) BeginSearch(ctx context.Context, id string) (ports.SearchJob, error) {
	return s.beginSearchFn(ctx, id)
}

func (s *stubWorkspaceService) AbortSearch(ctx context.Context, job ports.SearchJob, cause error) error {
	return s.abortFn(ctx, job, cause)
}

func (s *stubWorkspaceService) Select(ctx context.Context, id string, c domain.Competition) error {
	return s.selectFn(ctx, id, c)
}

func (s *stubWorkspaceService) Navigate(ctx context.Context, id, key string) (ports.NavigationResult, error) {
	return s.navigateFn(ctx, id, key)
}

type stubTokens struct{}

func (stubTokens) Issue(id string) (string, time.Time, error) {
	return "token-" + id, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil
}

type stubDispatcher struct {
	jobs []ports.SearchJob
	err  error
}

func (d *stubDispatcher) Enqueue(_ context.Context, job ports.SearchJob) error {
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}

// newContext builds an echo context for a request made from workspace "ws-1".
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.WorkspaceIDKey, "ws-1")
	return c, rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

// ---------------------------------------------------------------------------
// Workspace
// ---------------------------------------------------------------------------

func TestWorkspaceHandler_Create(t *testing.T) {
	svc := &stubWorkspaceService{createFn: func(context.Context) (string, error) { return "ws-9", nil }}
	h := NewWorkspaceHandler(svc, stubTokens{})

	c, rec := newContext(http.MethodPost, "/v1/workspaces", "")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp createWorkspaceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.WorkspaceID != "ws-9" || resp.Token != "token-ws-9" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestWorkspaceHandler_Get_MissingWorkspace(t *testing.T) {
	h := NewWorkspaceHandler(&stubWorkspaceService{}, stubTokens{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/workspace", nil), httptest.NewRecorder())
	if code := httpCode(t, h.Get(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestWorkspaceHandler_Get(t *testing.T) {
	svc := &stubWorkspaceService{snapshotFn: func(_ context.Context, id string) (state.Snapshot, error) {
		return state.Snapshot{ID: id, Hero: state.HeroAuthForm, View: state.ViewSnapshot{Status: state.StatusIdle}}, nil
	}}
	h := NewWorkspaceHandler(svc, stubTokens{})

	c, rec := newContext(http.MethodGet, "/v1/workspace", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["id"] != "ws-1" || body["hero"] != "auth_form" || body["user"] != nil {
		t.Fatalf("unexpected snapshot %s", rec.Body.String())
	}
}

func TestWorkspaceHandler_Select_Validation(t *testing.T) {
	svc := &stubWorkspaceService{selectFn: func(context.Context, string, domain.Competition) error {
		t.Fatalf("should not be called")
		return nil
	}}
	h := NewWorkspaceHandler(svc, stubTokens{})

	c, _ := newContext(http.MethodPut, "/v1/selection", `{"id":"c1","name":"Hack","websiteUrl":"ftp://x"}`)
	if code := httpCode(t, h.Select(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestWorkspaceHandler_Select(t *testing.T) {
	var got domain.Competition
	svc := &stubWorkspaceService{selectFn: func(_ context.Context, _ string, comp domain.Competition) error {
		got = comp
		return nil
	}}
	h := NewWorkspaceHandler(svc, stubTokens{})

	c, rec := newContext(http.MethodPut, "/v1/selection", `{"id":"c1","name":"Hack","tags":["code"],"websiteUrl":"https://hack.example.org"}`)
	if err := h.Select(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got.ID != "c1" || len(got.Tags) != 1 {
		t.Fatalf("unexpected competition %+v", got)
	}
}

func TestWorkspaceHandler_Navigate(t *testing.T) {
	svc := &stubWorkspaceService{navigateFn: func(_ context.Context, _ string, key string) (ports.NavigationResult, error) {
		item, _ := domain.FindMenuItem(key)
		return ports.NavigationResult{Item: item, AuthRequired: true}, nil
	}}
	h := NewWorkspaceHandler(svc, stubTokens{})

	c, rec := newContext(http.MethodPost, "/v1/navigation", `{"item":"profile"}`)
	if err := h.Navigate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var res ports.NavigationResult
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if !res.AuthRequired || res.Item.Key != "profile" {
		t.Fatalf("unexpected result %+v", res)
	}
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

func TestSessionHandler_SignIn_Register(t *testing.T) {
	svc := &stubWorkspaceService{signInFn: func(_ context.Context, id string, in ports.SignInInput) (*domain.User, error) {
		if id != "ws-1" || in.Mode != ports.SignInRegister || in.Name != "Asha" || in.Role != "student" {
			t.Fatalf("unexpected input %+v", in)
		}
		return &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: domain.RoleCandidate}, nil
	}}
	h := NewSessionHandler(svc)

	c, rec := newContext(http.MethodPost, "/v1/session", `{"mode":"register","name":"Asha","email":"asha@example.com","role":"student"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["user"]["role"] != "candidate" {
		t.Fatalf("unexpected user payload %s", rec.Body.String())
	}
}

func TestSessionHandler_SignIn_Invalid(t *testing.T) {
	svc := &stubWorkspaceService{signInFn: func(context.Context, string, ports.SignInInput) (*domain.User, error) {
		t.Fatalf("should not be called")
		return nil, nil
	}}
	h := NewSessionHandler(svc)

	cases := map[string]struct {
		body string
		code int
	}{
		"not json":         {"not-json", http.StatusBadRequest},
		"missing email":    {`{"mode":"login"}`, http.StatusUnprocessableEntity},
		"bad mode":         {`{"mode":"sso","email":"a@example.com"}`, http.StatusUnprocessableEntity},
		"register no name": {`{"mode":"register","email":"a@example.com"}`, http.StatusUnprocessableEntity},
		"bad role":         {`{"mode":"register","name":"A","email":"a@example.com","role":"admin"}`, http.StatusUnprocessableEntity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/v1/session", tc.body)
			if code := httpCode(t, h.SignIn(c)); code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Filters and search
// ---------------------------------------------------------------------------

func TestSearchHandler_UpdateFilters(t *testing.T) {
	svc := &stubWorkspaceService{setFilterFn: func(_ context.Context, _ string, name domain.FilterName, value string) (domain.SearchFilters, error) {
		if name != domain.FilterField || value != "robotics" {
			t.Fatalf("unexpected filter %s=%s", name, value)
		}
		f := domain.DefaultFilters()
		f.Field = domain.FieldRobotics
		return f, nil
	}}
	h := NewSearchHandler(svc, &stubDispatcher{}, zerolog.Nop())

	c, rec := newContext(http.MethodPatch, "/v1/filters", `{"field":"robotics"}`)
	if err := h.UpdateFilters(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp filtersResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Filters.Field != domain.FieldRobotics || resp.Filters.Country != "India" {
		t.Fatalf("unexpected filters %+v", resp.Filters)
	}
}

func TestSearchHandler_UpdateFilters_Rejects(t *testing.T) {
	h := NewSearchHandler(&stubWorkspaceService{}, &stubDispatcher{}, zerolog.Nop())

	cases := map[string]struct {
		body string
		code int
	}{
		"none":          {`{}`, http.StatusBadRequest},
		"two":           {`{"state":"Goa","level":"open"}`, http.StatusBadRequest},
		"unknown field": {`{"field":"Astrology"}`, http.StatusUnprocessableEntity},
		"unknown level": {`{"level":"Kindergarten"}`, http.StatusUnprocessableEntity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodPatch, "/v1/filters", tc.body)
			if code := httpCode(t, h.UpdateFilters(c)); code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
		})
	}
}

func TestSearchHandler_Search_Accepted(t *testing.T) {
	svc := &stubWorkspaceService{beginSearchFn: func(_ context.Context, id string) (ports.SearchJob, error) {
		return ports.SearchJob{WorkspaceID: id, Seq: 4, Filters: domain.DefaultFilters()}, nil
	}}
	d := &stubDispatcher{}
	h := NewSearchHandler(svc, d, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/v1/search", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(d.jobs) != 1 || d.jobs[0].Seq != 4 || d.jobs[0].WorkspaceID != "ws-1" {
		t.Fatalf("job not enqueued: %+v", d.jobs)
	}
	var resp searchAcceptedResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Seq != 4 || resp.Status != "searching" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSearchHandler_Search_QueueUnavailable(t *testing.T) {
	aborted := false
	svc := &stubWorkspaceService{
		beginSearchFn: func(_ context.Context, id string) (ports.SearchJob, error) {
			return ports.SearchJob{WorkspaceID: id, Seq: 1}, nil
		},
		abortFn: func(_ context.Context, job ports.SearchJob, cause error) error {
			aborted = job.Seq == 1 && errors.Is(cause, context.DeadlineExceeded)
			return nil
		},
	}
	h := NewSearchHandler(svc, &stubDispatcher{err: context.DeadlineExceeded}, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/v1/search", "")
	if code := httpCode(t, h.Search(c)); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	if !aborted {
		t.Fatalf("search should have been aborted")
	}
}

// ---------------------------------------------------------------------------
// Catalog and health
// ---------------------------------------------------------------------------

func TestCatalogHandler_Get(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/v1/catalog", "")
	if err := NewCatalogHandler().Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Fields) != 8 || len(resp.Levels) != 4 || len(resp.Categories) != 4 {
		t.Fatalf("unexpected catalog sizes: %d fields, %d levels, %d categories", len(resp.Fields), len(resp.Levels), len(resp.Categories))
	}
	if len(resp.States) == 0 || resp.Countries[0] != "India" {
		t.Fatalf("missing location options")
	}
}

func TestReadinessHandler(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	c, rec := newContext(http.MethodGet, "/health/ready", "")
	if err := NewReadinessHandler(map[string]Pinger{"redis": ok, "mongodb": ok}).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newContext(http.MethodGet, "/health/ready", "")
	_ = NewReadinessHandler(map[string]Pinger{"redis": ok, "mongodb": down}).Readiness(c)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Dependencies["mongodb"].Status != "unhealthy" || resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("unexpected dependencies %+v", resp.Dependencies)
	}
}
