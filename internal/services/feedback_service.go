package services

import (
	"context"
	"time"

	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/metrics"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

type FeedbackService struct {
	Store *intdb.Store
	Now   func() time.Time
}

func (s FeedbackService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit stores one feedback message. All four fields are required after trimming.
func (s FeedbackService) Submit(ctx context.Context, in models.FeedbackInput) (int64, error) {
	clean := models.FeedbackInput{
		Name:    utils.TrimOrEmpty(in.Name),
		Email:   utils.NormalizeEmail(in.Email),
		Subject: utils.TrimOrEmpty(in.Subject),
		Message: utils.TrimOrEmpty(in.Message),
	}
	if utils.AnyEmpty(clean.Name, clean.Email, clean.Subject, clean.Message) {
		return 0, domain.ValidationError{Msg: "All fields are required."}
	}

	var id int64
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		id, err = repositories.NewFeedbackRepository(q).Create(ctx, clean, s.now())
		return err
	})
	if err != nil {
		return 0, err
	}
	metrics.Feedback.Inc()
	return id, nil
}

// List returns all feedback, most recent first.
func (s FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	var out []models.Feedback
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		out, err = repositories.NewFeedbackRepository(q).List(ctx)
		return err
	})
	return out, err
}
