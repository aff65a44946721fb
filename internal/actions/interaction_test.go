package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/models"
)

func TestInteractionAppliesBothDeltas(t *testing.T) {
	svc := newService(t)
	performer := createUser(t, "performer")
	author := createUser(t, "author")

	_, err := svc.CreateInteraction(performer.ID, actions.CreateInteractionParams{
		Action:       models.ActionUpvote,
		ActionID:     1,
		ActionTarget: models.TargetQuestion,
		AuthorID:     author.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, reputationOf(t, performer.ID))
	assert.Equal(t, 5, reputationOf(t, author.ID))
	assert.EqualValues(t, 1, countRows(t, &models.Interaction{}, "user_id = ?", performer.ID))
}

func TestInteractionSelfAppliesAuthorDeltaOnce(t *testing.T) {
	svc := newService(t)
	user := createUser(t, "selfvoter")

	_, err := svc.CreateInteraction(user.ID, actions.CreateInteractionParams{
		Action:       models.ActionUpvote,
		ActionID:     1,
		ActionTarget: models.TargetQuestion,
		AuthorID:     user.ID,
	})
	require.NoError(t, err)

	// Only the author-side delta, applied once
	assert.Equal(t, 5, reputationOf(t, user.ID))
}

func TestReputationAdditivity(t *testing.T) {
	svc := newService(t)
	performer := createUser(t, "performer")
	author := createUser(t, "author")

	steps := []struct {
		action models.InteractionAction
		target models.TargetType
	}{
		{models.ActionUpvote, models.TargetQuestion},   // +2 / +5
		{models.ActionUpvote, models.TargetAnswer},     // +2 / +5
		{models.ActionDownvote, models.TargetQuestion}, // -1 / -2
		{models.ActionBookmark, models.TargetQuestion}, // +2 / +5
		{models.ActionPost, models.TargetAnswer},       //  0 / +10
		{models.ActionDelete, models.TargetQuestion},   //  0 / -5
		{models.ActionEdit, models.TargetQuestion},     //  0 / +10
	}

	for _, step := range steps {
		_, err := svc.CreateInteraction(performer.ID, actions.CreateInteractionParams{
			Action:       step.action,
			ActionID:     1,
			ActionTarget: step.target,
			AuthorID:     author.ID,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2+2-1+2, reputationOf(t, performer.ID))
	assert.Equal(t, 5+5-2+5+10-5+10, reputationOf(t, author.ID))
	assert.EqualValues(t, len(steps), countRows(t, &models.Interaction{}, ""))
}

func TestViewInteractionHasNoDeltas(t *testing.T) {
	svc := newService(t)
	performer := createUser(t, "performer")
	author := createUser(t, "author")

	_, err := svc.CreateInteraction(performer.ID, actions.CreateInteractionParams{
		Action:       models.ActionView,
		ActionID:     1,
		ActionTarget: models.TargetQuestion,
		AuthorID:     author.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, reputationOf(t, performer.ID))
	assert.Equal(t, 0, reputationOf(t, author.ID))
	assert.EqualValues(t, 1, countRows(t, &models.Interaction{}, ""))
}

func TestInteractionUnauthenticated(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateInteraction(0, actions.CreateInteractionParams{
		Action:       models.ActionUpvote,
		ActionID:     1,
		ActionTarget: models.TargetQuestion,
		AuthorID:     1,
	})
	assert.ErrorIs(t, err, actions.ErrUnauthorized)
}

func TestVoteLogsInteractionAfterCommit(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	voter := createUser(t, "voter")
	q := askQuestion(t, svc, author.ID)

	// Posting already logged one interaction for the author
	postReputation := reputationOf(t, author.ID)
	assert.Equal(t, 5, postReputation)

	require.NoError(t, svc.CastVote(voter.ID, actions.CastVoteParams{
		TargetID: q.ID, TargetType: models.TargetQuestion, VoteType: models.VoteUp,
	}))

	assert.EqualValues(t, 1, countRows(t, &models.Interaction{},
		"user_id = ? AND action = ?", voter.ID, models.ActionUpvote))
	assert.Equal(t, 2, reputationOf(t, voter.ID))
	assert.Equal(t, postReputation+5, reputationOf(t, author.ID))
}
