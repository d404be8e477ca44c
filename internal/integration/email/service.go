// Package email queues transactional emails and delivers them through Resend.
package email

import (
	"context"
	"net/url"
	"strings"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service. Links in emails point at appBaseURL.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// QueuePasswordResetEmail queues a password reset email carrying the reset link.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		"Reset your Pennywise password",
		map[string]any{
			"user_name":  input.UserName,
			"reset_url":  s.appBaseURL + "/reset-password?token=" + url.QueryEscape(input.ResetToken),
			"expires_in": input.ExpiresIn,
		},
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to queue password reset email", err)
	}
	return nil
}

// QueueWelcomeEmail queues the email sent after registration.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.UserName,
		"Welcome to Pennywise",
		map[string]any{
			"user_name": input.UserName,
			"username":  input.Username,
			"login_url": s.appBaseURL + "/login",
		},
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to queue welcome email", err)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
