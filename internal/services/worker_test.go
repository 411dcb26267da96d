package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

type stubMatcher struct {
	processed []uuid.UUID
}

func (s *stubMatcher) ProcessRun(_ context.Context, runID uuid.UUID) error {
	s.processed = append(s.processed, runID)
	return nil
}

type stubRunRepo struct {
	pending []models.MatchRun
}

func (s *stubRunRepo) Create(*models.MatchRun) error { return nil }
func (s *stubRunRepo) FindByID(uuid.UUID) (*models.MatchRun, error) {
	return nil, nil
}
func (s *stubRunRepo) UpdateStatus(uuid.UUID, models.MatchRunStatus) error { return nil }
func (s *stubRunRepo) UpdateResult(uuid.UUID, *repositories.MatchRunUpdateData) error {
	return nil
}
func (s *stubRunRepo) UpdateError(uuid.UUID, string) error { return nil }
func (s *stubRunRepo) FindPendingRuns(int) ([]models.MatchRun, error) {
	return s.pending, nil
}

func TestWorkerEnqueueRun(t *testing.T) {
	t.Run("same run is not enqueued twice", func(t *testing.T) {
		w := NewWorker(&stubRunRepo{}, &stubMatcher{}, 1).(*worker)

		runID := uuid.New()
		w.EnqueueRun(runID)
		w.EnqueueRun(runID)

		assert.Len(t, w.runQueue, 1)

		w.EnqueueRun(uuid.New())
		assert.Len(t, w.runQueue, 2)
	})

	t.Run("released run can be enqueued again", func(t *testing.T) {
		w := NewWorker(&stubRunRepo{}, &stubMatcher{}, 1).(*worker)

		runID := uuid.New()
		w.EnqueueRun(runID)
		require.Len(t, w.runQueue, 1)

		<-w.runQueue
		w.release(runID)

		w.EnqueueRun(runID)
		assert.Len(t, w.runQueue, 1)
	})
}
