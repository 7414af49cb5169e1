package repositories

import (
	"context"
	"fmt"
	"time"

	intdb "tourism/internal/db"
	"tourism/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type FeedbackRepository struct {
	Q intdb.Querier
}

func NewFeedbackRepository(q intdb.Querier) FeedbackRepository {
	return FeedbackRepository{Q: q}
}

func (r FeedbackRepository) Create(ctx context.Context, in models.FeedbackInput, submittedOn time.Time) (int64, error) {
	res, err := r.Q.ExecContext(ctx, `
		INSERT INTO feedback (name, user_email, subject, message, submitted_on)
		VALUES (?, ?, ?, ?, ?)
	`, in.Name, in.Email, in.Subject, in.Message, submittedOn)
	if err != nil {
		return 0, fmt.Errorf("insert feedback: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// List returns all feedback, most recent first.
func (r FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	out := []models.Feedback{}
	err := sqlx.SelectContext(ctx, r.Q, &out, `
		SELECT id, name, user_email, subject, message, submitted_on
		FROM feedback
		ORDER BY submitted_on DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return out, nil
}

func (r FeedbackRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.Q, "feedback")
}
