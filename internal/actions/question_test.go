package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/models"
)

func tagNames(tags []models.Tag) []string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return names
}

func TestCreateQuestionUpsertsTags(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")

	q, err := svc.CreateQuestion(author.ID, actions.CreateQuestionParams{
		Title:   "How do I use goroutines?",
		Content: "Trying to understand the concurrency model.",
		Tags:    []string{"Golang", "concurrency"},
	})
	require.NoError(t, err)

	// Names are matched case-insensitively and stored lowercase
	assert.ElementsMatch(t, []string{"golang", "concurrency"}, tagNames(q.Tags))
	assert.Equal(t, 1, tagByName(t, "golang").Questions)
	assert.EqualValues(t, 2, countRows(t, &models.TagQuestion{}, "question_id = ?", q.ID))
}

func TestCreateQuestionSharedTagIncrements(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")

	askQuestion(t, svc, author.ID, "golang")
	askQuestion(t, svc, author.ID, "GOLANG")

	assert.Equal(t, 2, tagByName(t, "golang").Questions)
	assert.EqualValues(t, 1, countRows(t, &models.Tag{}, ""))
}

func TestCreateQuestionValidation(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")

	_, err := svc.CreateQuestion(author.ID, actions.CreateQuestionParams{
		Title:   "Hi",
		Content: "",
		Tags:    nil,
	})

	verr, ok := actions.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "content")
	assert.Contains(t, verr.Fields, "tags")

	// Nothing touched the store
	assert.EqualValues(t, 0, countRows(t, &models.Question{}, ""))
}

func TestEditQuestionTagConservation(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")

	q := askQuestion(t, svc, author.ID, "react", "js")

	_, err := svc.EditQuestion(author.ID, actions.EditQuestionParams{
		QuestionID: q.ID,
		Title:      q.Title,
		Content:    q.Content,
		Tags:       []string{"js", "ts"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, tagByName(t, "react").Questions)
	assert.Equal(t, 1, tagByName(t, "js").Questions)
	assert.Equal(t, 1, tagByName(t, "ts").Questions)

	// Exactly one link row per currently attached tag
	assert.EqualValues(t, 2, countRows(t, &models.TagQuestion{}, "question_id = ?", q.ID))

	current, err := svc.GetQuestion(q.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"js", "ts"}, tagNames(current.Tags))
}

func TestEditQuestionForbidden(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	other := createUser(t, "other")

	q := askQuestion(t, svc, author.ID)

	_, err := svc.EditQuestion(other.ID, actions.EditQuestionParams{
		QuestionID: q.ID,
		Title:      "Hijacked title here",
		Content:    "Hijacked content",
		Tags:       []string{"golang"},
	})
	assert.True(t, actions.IsForbidden(err))
}

func TestDeleteQuestionCascade(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	answerer := createUser(t, "answerer")
	voter := createUser(t, "voter")

	q := askQuestion(t, svc, author.ID, "golang")

	a1, err := svc.CreateAnswer(answerer.ID, actions.CreateAnswerParams{
		QuestionID: q.ID, Content: "First answer content.",
	})
	require.NoError(t, err)
	a2, err := svc.CreateAnswer(voter.ID, actions.CreateAnswerParams{
		QuestionID: q.ID, Content: "Second answer content.",
	})
	require.NoError(t, err)

	// Three votes of mixed types across question and answers
	require.NoError(t, svc.CastVote(voter.ID, actions.CastVoteParams{
		TargetID: q.ID, TargetType: models.TargetQuestion, VoteType: models.VoteUp,
	}))
	require.NoError(t, svc.CastVote(answerer.ID, actions.CastVoteParams{
		TargetID: q.ID, TargetType: models.TargetQuestion, VoteType: models.VoteDown,
	}))
	require.NoError(t, svc.CastVote(author.ID, actions.CastVoteParams{
		TargetID: a1.ID, TargetType: models.TargetAnswer, VoteType: models.VoteUp,
	}))

	// And a saved-question row
	_, err = svc.ToggleSaveQuestion(voter.ID, q.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuestion(author.ID, q.ID))

	assert.EqualValues(t, 0, countRows(t, &models.Question{}, ""))
	assert.EqualValues(t, 0, countRows(t, &models.Answer{}, "question_id = ?", q.ID))
	assert.EqualValues(t, 0, countRows(t, &models.Vote{}, "action_id = ? AND action_type = ?", q.ID, models.TargetQuestion))
	assert.EqualValues(t, 0, countRows(t, &models.Vote{}, "action_id IN ? AND action_type = ?", []int{a1.ID, a2.ID}, models.TargetAnswer))
	assert.EqualValues(t, 0, countRows(t, &models.TagQuestion{}, "question_id = ?", q.ID))
	assert.EqualValues(t, 0, countRows(t, &models.Collection{}, "question_id = ?", q.ID))

	// Tag survives at a zero count, never below
	assert.Equal(t, 0, tagByName(t, "golang").Questions)
}

func TestDeleteQuestionForbidden(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	other := createUser(t, "other")

	q := askQuestion(t, svc, author.ID)

	err := svc.DeleteQuestion(other.ID, q.ID)
	assert.True(t, actions.IsForbidden(err))
	assert.EqualValues(t, 1, countRows(t, &models.Question{}, ""))
}

func TestIncrementViews(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	q := askQuestion(t, svc, author.ID)

	views, err := svc.IncrementViews(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	views, err = svc.IncrementViews(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, views)

	_, err = svc.IncrementViews(9999)
	assert.True(t, actions.IsNotFound(err))
}

func TestListQuestionsUnansweredFilter(t *testing.T) {
	svc := newService(t)
	author := createUser(t, "author")
	answerer := createUser(t, "answerer")

	answered := askQuestion(t, svc, author.ID, "golang")
	open := askQuestion(t, svc, author.ID, "golang")

	_, err := svc.CreateAnswer(answerer.ID, actions.CreateAnswerParams{
		QuestionID: answered.ID, Content: "An answer long enough.",
	})
	require.NoError(t, err)

	questions, err := svc.ListQuestions(actions.ListQuestionsParams{Filter: "unanswered"})
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, open.ID, questions[0].ID)
}
