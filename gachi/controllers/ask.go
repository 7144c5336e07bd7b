package controllers

import (
	"context"
	"time"

	"gachi/gachi/services/llm"
	"gachi/gachi/services/moderation"
	"gachi/gachi/services/prompt"
	"gachi/gachi/services/textmatch"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
	"gachi/gachi/utils/logging"

	"go.uber.org/zap"
)

const (
	// recentWindow is how many prior exchanges feed the conversation and
	// the repeat check.
	recentWindow = 3
	// repeatThreshold and repeatSignalCount define the advisory
	// repeat-question signal: two or more of the recent questions at
	// Jaccard similarity 0.7 or above.
	repeatThreshold   = 0.7
	repeatSignalCount = 2
)

// UserStore resolves the authenticated caller.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// QuestionStore is the history window read and the exchange write.
type QuestionStore interface {
	RecentByUser(ctx context.Context, userID, limit int) ([]models.Question, error)
	CreateQuestion(ctx context.Context, userID int, question, answer string, isRisky bool, at time.Time) (*models.Question, error)
}

// RiskRecorder receives safety events. Implementations must be
// fire-and-forget; the ask flow never checks their outcome.
type RiskRecorder interface {
	RecordBlockedInput(email, question string)
	RecordBlockedOutput(email, question, answer string)
	RecordRepeatDetected(email, question string)
}

type AskController struct {
	users     UserStore
	questions QuestionStore
	model     llm.Completer
	monitor   RiskRecorder
}

func NewAskController(users UserStore, questions QuestionStore, model llm.Completer, monitor RiskRecorder) *AskController {
	return &AskController{
		users:     users,
		questions: questions,
		model:     model,
		monitor:   monitor,
	}
}

// Ask runs the full question pipeline for the authenticated user. The
// input filter runs before any model call; the output filter runs before
// anything is persisted or returned. The stored risk flag comes from the
// input verdict only and is set once at write time.
func (c *AskController) Ask(ctx context.Context, email string, req types.AskRequest) (string, error) {
	user, err := c.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	risky := moderation.UnsafeInput(req.Question)
	if risky {
		c.monitor.RecordBlockedInput(user.Email, req.Question)
		return "", ErrBlockedInput
	}

	recent, err := c.questions.RecentByUser(ctx, user.ID, recentWindow)
	if err != nil {
		return "", err
	}

	similar := 0
	for _, ex := range recent {
		if textmatch.Similarity(req.Question, ex.Question) >= repeatThreshold {
			similar++
		}
	}
	if similar >= repeatSignalCount {
		// Advisory only; the request proceeds unchanged.
		c.monitor.RecordRepeatDetected(user.Email, req.Question)
	}

	// Storage returns most-recent-first; the conversation wants oldest-first.
	history := make([]models.Question, len(recent))
	for i, ex := range recent {
		history[len(recent)-1-i] = ex
	}

	messages := prompt.Assemble(prompt.TierFor(req.IsPaidUser), history, req.Question)

	answer, err := c.model.Complete(ctx, messages)
	if err != nil {
		logging.ErrorLogger.Error("model call failed",
			zap.String("user", user.Email),
			zap.Error(err),
		)
		return "", ErrUpstreamFailure
	}

	if moderation.UnsafeOutput(answer) {
		c.monitor.RecordBlockedOutput(user.Email, req.Question, answer)
		return "", ErrBlockedOutput
	}

	if req.ShouldSave() {
		if _, err := c.questions.CreateQuestion(ctx, user.ID, req.Question, answer, risky, time.Now().UTC()); err != nil {
			return "", err
		}
	}

	return answer, nil
}
