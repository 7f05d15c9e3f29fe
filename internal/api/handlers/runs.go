package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewar-labs/price-guardian/internal/store"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// Runner triggers a monitoring run. Implemented by engine.Engine.
type Runner interface {
	Run(ctx context.Context) (*domain.Run, error)
}

// RunsHandler handles run history and manual run triggering.
type RunsHandler struct {
	store  store.Reader
	runner Runner
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(s store.Reader, r Runner) *RunsHandler {
	return &RunsHandler{store: s, runner: r}
}

const defaultRunHistoryLimit = 20

// ListRunsInput is the input for listing run history.
type ListRunsInput struct {
	Limit int `query:"limit" doc:"Number of runs to return (default 20)" minimum:"1" maximum:"500"`
}

// ListRunsOutput is the response for listing run history.
type ListRunsOutput struct {
	Body []domain.Run
}

// TriggerRunOutput is the response for a manually triggered run.
type TriggerRunOutput struct {
	Body domain.Run
}

// ListRuns returns the most recent monitoring runs, newest first.
func (h *RunsHandler) ListRuns(
	ctx context.Context,
	input *ListRunsInput,
) (*ListRunsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultRunHistoryLimit
	}

	runs, err := h.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing runs failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.Run{}
	}

	return &ListRunsOutput{Body: runs}, nil
}

// TriggerRun starts a monitoring run synchronously and returns its record.
// Entity-level failures are reported in the run counters, not as an HTTP
// error; only a run that could not execute at all becomes a 500.
func (h *RunsHandler) TriggerRun(
	ctx context.Context,
	_ *struct{},
) (*TriggerRunOutput, error) {
	run, err := h.runner.Run(ctx)
	if err != nil && run == nil {
		return nil, huma.Error500InternalServerError("run failed: " + err.Error())
	}

	return &TriggerRunOutput{Body: *run}, nil
}

// RegisterRunRoutes registers run endpoints with the Huma API.
func RegisterRunRoutes(api huma.API, h *RunsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-runs",
		Method:      http.MethodGet,
		Path:        "/api/v1/runs",
		Summary:     "List monitoring runs",
		Description: "Returns recent monitoring run records, newest first.",
		Tags:        []string{"runs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListRuns)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-run",
		Method:      http.MethodPost,
		Path:        "/api/v1/runs",
		Summary:     "Trigger a monitoring run",
		Description: "Runs a full monitoring pass synchronously and returns the run record.",
		Tags:        []string{"runs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.TriggerRun)
}
