package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/api/metrics"
	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
	"github.com/competeconnect/competition-api/internal/core/state"
)

// SearchDispatcher is the interface the handler uses to enqueue searches.
type SearchDispatcher interface {
	Enqueue(ctx context.Context, job ports.SearchJob) error
}

// SearchHandler handles filter changes and search issuance.
type SearchHandler struct {
	service    ports.WorkspaceService
	dispatcher SearchDispatcher
	log        zerolog.Logger
}

func NewSearchHandler(service ports.WorkspaceService, dispatcher SearchDispatcher, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{service: service, dispatcher: dispatcher, log: log}
}

// UpdateFilters handles PATCH /v1/filters.
//
// @Summary      Set one filter
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateFiltersRequest  true  "Exactly one filter field"
// @Success      200   {object}  filtersResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/filters [patch]
func (h *SearchHandler) UpdateFilters(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req updateFiltersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	name, value, err := req.single()
	if err != nil {
		return err
	}

	filters, err := h.service.SetFilter(c.Request().Context(), id, name, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, filtersResponse{Filters: filters})
}

func (r updateFiltersRequest) single() (domain.FilterName, string, error) {
	var (
		name  domain.FilterName
		value string
		set   int
	)
	for _, f := range []struct {
		name  domain.FilterName
		value *string
	}{
		{domain.FilterCountry, r.Country},
		{domain.FilterState, r.State},
		{domain.FilterField, r.Field},
		{domain.FilterLevel, r.Level},
	} {
		if f.value != nil {
			name, value = f.name, *f.value
			set++
		}
	}
	if set != 1 {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "exactly one of country, state, field or level must be set")
	}
	return name, value, nil
}

// Search handles POST /v1/search. The search runs in the background; poll
// GET /v1/workspace for the result.
//
// @Summary      Issue a search
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  searchAcceptedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	job, err := h.service.BeginSearch(ctx, id)
	if err != nil {
		return err
	}
	if err := h.dispatcher.Enqueue(ctx, job); err != nil {
		// The request context may already be done.
		if abortErr := h.service.AbortSearch(context.WithoutCancel(ctx), job, err); abortErr != nil {
			h.log.Warn().Err(abortErr).Str("workspace", id).Msg("failed to abort search")
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "search queue is busy")
		}
		return err
	}

	metrics.SearchesIssuedTotal.Inc()
	return c.JSON(http.StatusAccepted, searchAcceptedResponse{
		Seq:     job.Seq,
		Status:  string(state.StatusSearching),
		Filters: job.Filters,
	})
}
