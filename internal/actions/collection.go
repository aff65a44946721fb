package actions

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/models"
)

// ToggleSaveQuestion saves or unsaves a question for a user. Returns the
// new saved state. Saving logs a bookmark interaction after the write.
func (s *Service) ToggleSaveQuestion(userID, questionID int) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthorized
	}

	var question models.Question
	err := s.db.First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, &NotFoundError{Resource: "question"}
	}
	if err != nil {
		return false, err
	}

	var existing models.Collection
	err = s.db.Where("author_id = ? AND question_id = ?", userID, questionID).
		First(&existing).Error

	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	saved := models.Collection{AuthorID: userID, QuestionID: questionID}
	if err := s.db.Create(&saved).Error; err != nil {
		return false, err
	}

	s.dispatch(func() {
		s.logInteraction(userID, models.ActionBookmark, questionID, models.TargetQuestion, question.AuthorID)
	})

	return true, nil
}

// HasSavedQuestion reports whether the user has the question saved.
func (s *Service) HasSavedQuestion(userID, questionID int) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthorized
	}

	var collection models.Collection
	err := s.db.Where("author_id = ? AND question_id = ?", userID, questionID).
		First(&collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListSavedQuestions returns the user's saved questions, newest save first.
func (s *Service) ListSavedQuestions(userID, page, pageSize int) ([]models.Question, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	p, size := normalizePage(page, pageSize)

	var collections []models.Collection
	err := s.db.Where("author_id = ?", userID).
		Preload("Question").
		Preload("Question.User").
		Order("created_at desc").
		Offset((p - 1) * size).Limit(size).
		Find(&collections).Error
	if err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(collections))
	for _, c := range collections {
		tags, err := questionTags(s.db, c.QuestionID)
		if err != nil {
			return nil, err
		}
		c.Question.Tags = tags
		questions = append(questions, c.Question)
	}

	return questions, nil
}
