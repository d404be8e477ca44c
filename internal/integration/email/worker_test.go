package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/email/templates"
)

func newTestWorker(t *testing.T) (*Worker, *adapter.MockEmailQueueRepository, *adapter.MockEmailSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queue := adapter.NewMockEmailQueueRepository(ctrl)
	sender := adapter.NewMockEmailSender(ctrl)
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	return NewWorker(queue, sender, renderer, WorkerConfig{BatchSize: 5}), queue, sender
}

func welcomeJob() *entity.EmailJob {
	return entity.NewEmailJob(entity.TemplateWelcome, "jane@example.com", "Jane", "Welcome to Pennywise", map[string]any{
		"user_name": "Jane",
		"username":  "jane_doe",
		"login_url": "https://app.example.com/login",
	})
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks job as sent", func(t *testing.T) {
		w, queue, sender := newTestWorker(t)
		job := welcomeJob()

		queue.EXPECT().GetPendingJobs(ctx, 5).Return([]*entity.EmailJob{job}, nil)
		queue.EXPECT().Update(ctx, job).Return(nil).Times(2)
		sender.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, in adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
				assert.Equal(t, "jane@example.com", in.To)
				assert.Contains(t, in.HTML, "jane_doe")
				assert.Contains(t, in.Text, "https://app.example.com/login")
				return &adapter.SendEmailResult{ResendID: "re_123"}, nil
			})

		w.ProcessNow(ctx)

		assert.Equal(t, entity.EmailStatusSent, job.Status)
		assert.Equal(t, "re_123", job.ResendID)
		assert.NotNil(t, job.ProcessedAt)
	})

	t.Run("temporary failure is retried", func(t *testing.T) {
		w, queue, sender := newTestWorker(t)
		job := welcomeJob()

		queue.EXPECT().GetPendingJobs(ctx, 5).Return([]*entity.EmailJob{job}, nil)
		queue.EXPECT().Update(ctx, job).Return(nil).Times(2)
		sender.EXPECT().Send(ctx, gomock.Any()).Return(nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", errors.New("timeout")))

		w.ProcessNow(ctx)

		assert.Equal(t, entity.EmailStatusPending, job.Status)
		assert.Equal(t, 1, job.Attempts)
		assert.Contains(t, job.LastError, "timeout")
	})

	t.Run("permanent failure stops retries", func(t *testing.T) {
		w, queue, sender := newTestWorker(t)
		job := welcomeJob()

		queue.EXPECT().GetPendingJobs(ctx, 5).Return([]*entity.EmailJob{job}, nil)
		queue.EXPECT().Update(ctx, job).Return(nil).Times(2)
		sender.EXPECT().Send(ctx, gomock.Any()).Return(nil, domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure, "permanent email failure", errors.New("invalid recipient")))

		w.ProcessNow(ctx)

		assert.Equal(t, entity.EmailStatusFailed, job.Status)
		assert.Equal(t, 1, job.Attempts)
	})

	t.Run("unknown template fails without sending", func(t *testing.T) {
		w, queue, _ := newTestWorker(t)
		job := entity.NewEmailJob("newsletter", "jane@example.com", "Jane", "News", nil)

		queue.EXPECT().GetPendingJobs(ctx, 5).Return([]*entity.EmailJob{job}, nil)
		queue.EXPECT().Update(ctx, job).Return(nil).Times(2)

		w.ProcessNow(ctx)

		assert.Equal(t, entity.EmailStatusFailed, job.Status)
	})

	t.Run("queue error skips the batch", func(t *testing.T) {
		w, queue, _ := newTestWorker(t)
		queue.EXPECT().GetPendingJobs(ctx, 5).Return(nil, errors.New("db down"))

		w.ProcessNow(ctx)
	})
}
