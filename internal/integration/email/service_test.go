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
)

func TestService_QueuePasswordResetEmail(t *testing.T) {
	ctx := context.Background()
	queue := adapter.NewMockEmailQueueRepository(gomock.NewController(t))
	svc := NewService(queue, "https://app.example.com/")

	var queued *entity.EmailJob
	queue.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, job *entity.EmailJob) error {
		queued = job
		return nil
	})

	err := svc.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserEmail:  "jane@example.com",
		UserName:   "Jane",
		ResetToken: "abc+123",
		ExpiresIn:  "1 hour",
	})

	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, entity.TemplatePasswordReset, queued.TemplateType)
	assert.Equal(t, entity.EmailStatusPending, queued.Status)
	assert.Equal(t, "https://app.example.com/reset-password?token=abc%2B123", queued.TemplateData["reset_url"])
}

func TestService_QueueWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	queue := adapter.NewMockEmailQueueRepository(gomock.NewController(t))
	svc := NewService(queue, "https://app.example.com")

	queue.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

	err := svc.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{UserEmail: "jane@example.com", UserName: "Jane", Username: "jane_doe"})

	var emailErr *domainerror.EmailError
	require.True(t, errors.As(err, &emailErr))
	assert.Equal(t, domainerror.ErrCodeEmailQueueFailed, emailErr.Code)
}

func TestLogSender_Send(t *testing.T) {
	sender := NewLogSender()

	result, err := sender.Send(context.Background(), adapter.SendEmailInput{To: "jane@example.com", Subject: "Hi"})

	require.NoError(t, err)
	assert.Contains(t, result.ResendID, "log-")
	require.Len(t, sender.Sent(), 1)
	sender.Reset()
	assert.Empty(t, sender.Sent())
}
