package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/models"
)

// Full lifecycle: ask, upvote, switch, delete - counters, links, and
// reputation totals checked at every step.
func TestQuestionLifecycle(t *testing.T) {
	svc := newService(t)
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")

	// Alice asks a question tagged golang
	q, err := svc.CreateQuestion(alice.ID, actions.CreateQuestionParams{
		Title:   "What is a goroutine exactly?",
		Content: "Trying to build a mental model for the scheduler.",
		Tags:    []string{"golang"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tagByName(t, "golang").Questions)
	assert.Equal(t, 5, reputationOf(t, alice.ID)) // post, self-interaction

	// Bob upvotes it
	require.NoError(t, svc.CastVote(bob.ID, actions.CastVoteParams{
		TargetID: q.ID, TargetType: models.TargetQuestion, VoteType: models.VoteUp,
	}))
	assert.Equal(t, 1, questionByID(t, q.ID).Upvotes)
	assert.Equal(t, 2, reputationOf(t, bob.ID))
	assert.Equal(t, 10, reputationOf(t, alice.ID))

	// Bob switches to a downvote; the counters move, the vote row is
	// updated in place, and the downvote interaction lands on the ledger
	require.NoError(t, svc.CastVote(bob.ID, actions.CastVoteParams{
		TargetID: q.ID, TargetType: models.TargetQuestion, VoteType: models.VoteDown,
	}))
	got := questionByID(t, q.ID)
	assert.Equal(t, 0, got.Upvotes)
	assert.Equal(t, 1, got.Downvotes)
	assert.Equal(t, 2-1, reputationOf(t, bob.ID))
	assert.Equal(t, 10-2, reputationOf(t, alice.ID))
	assert.EqualValues(t, 1, countRows(t, &models.Vote{}, "author_id = ?", bob.ID))

	// Alice deletes the question
	require.NoError(t, svc.DeleteQuestion(alice.ID, q.ID))
	assert.Equal(t, 0, tagByName(t, "golang").Questions)
	assert.EqualValues(t, 0, countRows(t, &models.TagQuestion{}, ""))
	assert.EqualValues(t, 0, countRows(t, &models.Vote{}, ""))
	assert.Equal(t, 8-5, reputationOf(t, alice.ID)) // delete, self-interaction

	// The interaction log keeps every event
	assert.EqualValues(t, 4, countRows(t, &models.Interaction{}, ""))
}
