package service

import (
	"context"
	"fmt"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

var feedbackMessages = map[string]string{
	domain.FeedbackStageIntro:       "Hi! I'm Sakhi, your feedback friend. How was your experience chatting with our mortgage advisor?",
	domain.FeedbackStageRating:      "Could you rate your experience from 1 (poor) to 5 (excellent)?",
	domain.FeedbackStageImprovement: "What could we improve to make this more helpful?",
	domain.FeedbackStageContact:     "Would you like our team to reach out? Share email or phone (optional).",
	domain.FeedbackStageThanks:      "Thank you - your feedback helps us improve!",
}

var feedbackOrder = []string{
	domain.FeedbackStageIntro,
	domain.FeedbackStageRating,
	domain.FeedbackStageImprovement,
	domain.FeedbackStageContact,
	domain.FeedbackStageThanks,
}

// FeedbackService runs the short post-chat feedback flow, one stage per
// answer, storing answers on the session.
type FeedbackService struct {
	sessions repository.SessionRepository
}

func NewFeedbackService(sessions repository.SessionRepository) *FeedbackService {
	return &FeedbackService{sessions: sessions}
}

// StageMessage returns the prompt for a stage, defaulting to the intro.
func StageMessage(stage string) string {
	if msg, ok := feedbackMessages[stage]; ok {
		return msg
	}
	return feedbackMessages[domain.FeedbackStageIntro]
}

// Record stores the answer for the session's current stage and advances
// to the next one, returning the next prompt.
func (s *FeedbackService) Record(
	ctx context.Context,
	sessionID string,
	answer string,
) (string, string, error) {

	if sessionID == "" {
		return "", "", fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, found, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		session = domain.NewSession(sessionID)
	}

	stage := session.FeedbackStage
	if stage == "" {
		stage = domain.FeedbackStageIntro
	}

	if answer != "" && stage != domain.FeedbackStageThanks {
		if session.Feedback == nil {
			session.Feedback = make(map[string]string)
		}
		session.Feedback[stage] = answer
		stage = nextStage(stage)
	}
	session.FeedbackStage = stage

	if err := s.sessions.Save(ctx, session); err != nil {
		return "", "", fmt.Errorf("failed to save session: %w", err)
	}

	return stage, StageMessage(stage), nil
}

func nextStage(stage string) string {
	for i, s := range feedbackOrder {
		if s == stage && i+1 < len(feedbackOrder) {
			return feedbackOrder[i+1]
		}
	}
	return domain.FeedbackStageThanks
}
