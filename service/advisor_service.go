package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

// AdvisorService ties the extractor, decision ladder, session store and
// narrator together into conversation turns. The math stays deterministic
// and never depends on the narrator being reachable.
type AdvisorService struct {
	extractor *ExtractorService
	decision  *DecisionService
	sessions  repository.SessionRepository
	narrator  Narrator
	logger    zerolog.Logger
}

func NewAdvisorService(
	extractor *ExtractorService,
	decision *DecisionService,
	sessions repository.SessionRepository,
	narrator Narrator,
	logger zerolog.Logger,
) *AdvisorService {
	return &AdvisorService{
		extractor: extractor,
		decision:  decision,
		sessions:  sessions,
		narrator:  narrator,
		logger:    logger,
	}
}

// Evaluate is the core functional boundary: merge whatever the message
// yields into the prior profile and, once a property price is known,
// compute a recommendation. A nil recommendation means the caller should
// prompt the user for the price. Pure apart from the audit log; never
// touches the narrator.
func (s *AdvisorService) Evaluate(
	rawUserText string,
	prior domain.UserFinancialProfile,
) (domain.UserFinancialProfile, *domain.Recommendation, error) {

	update := s.extractor.Extract(rawUserText)
	profile := domain.Merge(prior, update)

	if !profile.IsReadyForCalculation() {
		return profile, nil, nil
	}

	rec, err := s.decision.Decide(profile)
	if err != nil {
		return profile, nil, err
	}
	return profile, &rec, nil
}

type ChatReply struct {
	SessionID      string                      `json:"session_id"`
	Reply          string                      `json:"reply"`
	Profile        domain.UserFinancialProfile `json:"profile"`
	Recommendation *domain.Recommendation      `json:"recommendation,omitempty"`

	// FeedbackPrompt is set once the conversation is long enough for
	// the feedback flow to start; the UI renders it as its own bubble.
	FeedbackPrompt string `json:"feedback_prompt,omitempty"`
}

// Chat runs one conversation turn: record the user message, evaluate it
// against the session's accumulated profile, phrase the outcome (LLM when
// available, deterministic template otherwise) and persist the session.
func (s *AdvisorService) Chat(
	ctx context.Context,
	sessionID string,
	message string,
) (ChatReply, error) {

	if message == "" {
		return ChatReply{}, fmt.Errorf("%w: message must not be empty", ErrInvalidInput)
	}

	session, err := s.loadOrCreateSession(ctx, sessionID)
	if err != nil {
		return ChatReply{}, err
	}

	session.AddMessage("user", message)

	profile, rec, err := s.Evaluate(message, session.Profile)
	if err != nil {
		return ChatReply{}, err
	}
	session.Profile = profile

	var reply string
	if rec == nil {
		reply = s.clarifyingPrompt(profile)
	} else {
		reply = s.narrate(ctx, session, *rec)
	}

	session.AddMessage("assistant", reply)

	var feedbackPrompt string
	if session.FeedbackStage == "" && len(session.Messages) >= FeedbackTriggerMessages {
		session.FeedbackStage = domain.FeedbackStageIntro
		feedbackPrompt = StageMessage(domain.FeedbackStageIntro)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return ChatReply{}, fmt.Errorf("failed to save session: %w", err)
	}

	return ChatReply{
		SessionID:      session.ID,
		Reply:          reply,
		Profile:        profile,
		Recommendation: rec,
		FeedbackPrompt: feedbackPrompt,
	}, nil
}

func (s *AdvisorService) loadOrCreateSession(
	ctx context.Context,
	id string,
) (*domain.Session, error) {
	if id == "" {
		return domain.NewSession(uuid.NewString()), nil
	}
	session, found, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return domain.NewSession(id), nil
	}
	return session, nil
}

// clarifyingPrompt asks for the single most useful missing field. A
// missing property price always yields a question, never a default-zero
// calculation.
func (s *AdvisorService) clarifyingPrompt(profile domain.UserFinancialProfile) string {
	if profile.PropertyPrice == nil {
		return "Could you share the property price in AED? For example: \"a 2,000,000 AED apartment\"."
	}
	return "Could you tell me how long you plan to stay, your current rent, or your monthly income?"
}

func (s *AdvisorService) narrate(
	ctx context.Context,
	session *domain.Session,
	rec domain.Recommendation,
) string {
	prompt, err := buildNarrationPrompt(session, rec)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to build narration prompt")
		return fallbackReply(rec)
	}

	reply, err := s.narrator.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrNarratorDisabled) {
			s.logger.Warn().Err(err).Msg("narrator unavailable, using fallback reply")
		}
		return fallbackReply(rec)
	}
	return reply
}

func buildNarrationPrompt(session *domain.Session, rec domain.Recommendation) (string, error) {
	facts, err := json.MarshalIndent(rec.Facts, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`CONVERSATION SO FAR:
%s

VERDICT: %s
REASON: %s

AUTHORITATIVE FIGURES (AED, already rounded - do not recompute):
%s

Present the verdict and figures to the user in plain words.`,
		session.Context(ContextWindowMessages), rec.Verdict, rec.Reason, facts), nil
}

// fallbackReply is the deterministic template used when the narrator is
// disabled or stays unreachable after retries. Built purely from the
// supporting facts.
func fallbackReply(rec domain.Recommendation) string {
	f := rec.Facts
	reply := fmt.Sprintf(
		"Recommendation: %s. %s "+
			"For a property of AED %.2f you would put down AED %.2f, borrow AED %.2f "+
			"and pay roughly AED %.2f per month (plus about AED %.2f monthly upkeep). "+
			"One-time upfront costs come to AED %.2f, AED %.2f in total with the down payment.",
		rec.Verdict, rec.Reason,
		f.Affordability.PropertyPrice, f.Affordability.DownPayment, f.Affordability.LoanAmount,
		f.Amortization.MonthlyInstallment, f.MonthlyMaintenance,
		f.Affordability.UpfrontCosts, f.Affordability.TotalUpfront)

	if f.EMIPercentOfIncome != nil {
		reply += fmt.Sprintf(" The installment is %.2f%% of your monthly income.", *f.EMIPercentOfIncome)
	}
	return reply
}
