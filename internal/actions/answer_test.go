package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/models"
)

func TestCreateAnswerBumpsCounter(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	answerer := createUser(t, "answerer")
	q := askQuestion(t, svc, author.ID)

	answer, err := svc.CreateAnswer(answerer.ID, actions.CreateAnswerParams{
		QuestionID: q.ID,
		Content:    "Wrap the writes in a transaction closure.",
	})
	require.NoError(t, err)
	assert.Equal(t, q.ID, answer.QuestionID)

	assert.Equal(t, 1, questionByID(t, q.ID).Answers)

	// Posting an answer is a self-interaction worth +10
	assert.Equal(t, 10, reputationOf(t, answerer.ID))
}

func TestCreateAnswerQuestionMissing(t *testing.T) {
	svc := newService(t)
	answerer := createUser(t, "answerer")

	_, err := svc.CreateAnswer(answerer.ID, actions.CreateAnswerParams{
		QuestionID: 9999,
		Content:    "Answering into the void here.",
	})
	assert.True(t, actions.IsNotFound(err))
	assert.EqualValues(t, 0, countRows(t, &models.Answer{}, ""))
}

func TestDeleteAnswerCascade(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	answerer := createUser(t, "answerer")
	voter := createUser(t, "voter")
	q := askQuestion(t, svc, author.ID)

	answer, err := svc.CreateAnswer(answerer.ID, actions.CreateAnswerParams{
		QuestionID: q.ID,
		Content:    "An answer about to disappear.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.CastVote(voter.ID, actions.CastVoteParams{
		TargetID: answer.ID, TargetType: models.TargetAnswer, VoteType: models.VoteUp,
	}))

	require.NoError(t, svc.DeleteAnswer(answerer.ID, answer.ID))

	assert.Equal(t, 0, questionByID(t, q.ID).Answers)
	assert.EqualValues(t, 0, countRows(t, &models.Answer{}, ""))
	assert.EqualValues(t, 0, countRows(t, &models.Vote{}, "action_id = ? AND action_type = ?", answer.ID, models.TargetAnswer))
}

func TestDeleteAnswerForbidden(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	answerer := createUser(t, "answerer")
	q := askQuestion(t, svc, author.ID)

	answer, err := svc.CreateAnswer(answerer.ID, actions.CreateAnswerParams{
		QuestionID: q.ID,
		Content:    "Someone else's answer here.",
	})
	require.NoError(t, err)

	err = svc.DeleteAnswer(author.ID, answer.ID)
	assert.True(t, actions.IsForbidden(err))
	assert.EqualValues(t, 1, countRows(t, &models.Answer{}, ""))
}
