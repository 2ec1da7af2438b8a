package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

func TestFeedback_StageProgression(t *testing.T) {
	sessions := repository.NewMockSessionRepository()
	svc := NewFeedbackService(sessions)
	ctx := context.Background()

	// no answer yet: stay on the intro prompt
	stage, msg, err := svc.Record(ctx, "s1", "")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStageIntro, stage)
	assert.Contains(t, msg, "Sakhi")

	stage, _, err = svc.Record(ctx, "s1", "it was great")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStageRating, stage)

	stage, _, err = svc.Record(ctx, "s1", "5")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStageImprovement, stage)

	stage, _, err = svc.Record(ctx, "s1", "nothing")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStageContact, stage)

	stage, msg, err = svc.Record(ctx, "s1", "no thanks")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStageThanks, stage)
	assert.Contains(t, msg, "Thank you")

	// terminal stage keeps thanking
	stage, _, err = svc.Record(ctx, "s1", "bye")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStageThanks, stage)

	session := sessions.Data["s1"]
	require.NotNil(t, session)
	assert.Equal(t, "5", session.Feedback[domain.FeedbackStageRating])
	assert.Equal(t, "it was great", session.Feedback[domain.FeedbackStageIntro])
}

func TestFeedback_RequiresSessionID(t *testing.T) {
	svc := NewFeedbackService(repository.NewMockSessionRepository())

	_, _, err := svc.Record(context.Background(), "", "hello")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
