package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pricewar-labs/price-guardian/internal/api/handlers"
	storeMocks "github.com/pricewar-labs/price-guardian/internal/store/mocks"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// mockRunner is a test double for the Runner interface.
type mockRunner struct {
	run *domain.Run
	err error
}

func (m *mockRunner) Run(_ context.Context) (*domain.Run, error) {
	return m.run, m.err
}

func sampleRun(status string) domain.Run {
	return domain.Run{
		ID:        "run-1",
		StartedAt: time.Now().Truncate(time.Second),
		Status:    status,
		RunStats: domain.RunStats{
			ProductsChecked:    2,
			CompetitorsChecked: 5,
			PriceChanges:       1,
		},
	}
}

func TestListRuns_Success(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().ListRuns(mock.Anything, 20).
		Return([]domain.Run{sampleRun(domain.RunStatusCompleted)}, nil).Once()

	h := handlers.NewRunsHandler(mr, &mockRunner{})

	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, h)

	resp := api.Get("/api/v1/runs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "completed")
	assert.Contains(t, resp.Body.String(), `"price_changes":1`)
}

func TestListRuns_CustomLimit(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().ListRuns(mock.Anything, 5).Return(nil, nil).Once()

	h := handlers.NewRunsHandler(mr, &mockRunner{})

	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, h)

	resp := api.Get("/api/v1/runs?limit=5")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestListRuns_Error(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().ListRuns(mock.Anything, 20).
		Return(nil, errors.New("db error")).Once()

	h := handlers.NewRunsHandler(mr, &mockRunner{})

	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, h)

	resp := api.Get("/api/v1/runs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing runs failed")
}

func TestTriggerRun_Success(t *testing.T) {
	t.Parallel()

	run := sampleRun(domain.RunStatusCompleted)
	h := handlers.NewRunsHandler(storeMocks.NewMockReader(t), &mockRunner{run: &run})

	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, h)

	resp := api.Post("/api/v1/runs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"run-1"`)
	assert.Contains(t, resp.Body.String(), "completed")
}

func TestTriggerRun_FailedRunStillReturnsRecord(t *testing.T) {
	t.Parallel()

	run := sampleRun(domain.RunStatusFailed)
	run.ErrorText = "listing products: connection refused"
	h := handlers.NewRunsHandler(storeMocks.NewMockReader(t),
		&mockRunner{run: &run, err: errors.New("listing products: connection refused")})

	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, h)

	resp := api.Post("/api/v1/runs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed")
	assert.Contains(t, resp.Body.String(), "connection refused")
}

func TestTriggerRun_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewRunsHandler(storeMocks.NewMockReader(t),
		&mockRunner{err: errors.New("recording run start: db down")})

	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, h)

	resp := api.Post("/api/v1/runs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "run failed")
}
