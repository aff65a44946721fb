package actions

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/models"
)

type CreateAnswerParams struct {
	QuestionID int    `json:"question_id" validate:"required"`
	Content    string `json:"content" validate:"required,min=10"`
}

// CreateAnswer inserts the answer and bumps the parent's answer counter in
// one transaction.
func (s *Service) CreateAnswer(userID int, params CreateAnswerParams) (*models.Answer, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if err := s.validateParams(params); err != nil {
		return nil, err
	}

	answer := models.Answer{
		Content:    params.Content,
		AuthorID:   userID,
		QuestionID: params.QuestionID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		err := tx.First(&question, params.QuestionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "question"}
		}
		if err != nil {
			return err
		}

		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		return tx.Model(&models.Question{}).
			Where("id = ?", params.QuestionID).
			UpdateColumn("answers", gorm.Expr("answers + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(func() {
		s.logInteraction(userID, models.ActionPost, answer.ID, models.TargetAnswer, answer.AuthorID)
	})

	return &answer, nil
}

// DeleteAnswer removes the answer, its votes, and decrements the parent
// counter, all in one transaction. Author only.
func (s *Service) DeleteAnswer(userID, answerID int) error {
	if userID == 0 {
		return ErrUnauthorized
	}

	var answer models.Answer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&answer, answerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "answer"}
		}
		if err != nil {
			return err
		}
		if answer.AuthorID != userID {
			return &ForbiddenError{Message: "you can only delete your own answers"}
		}

		if err := tx.Where("action_id = ? AND action_type = ?",
			answerID, models.TargetAnswer).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Question{}).
			Where("id = ?", answer.QuestionID).
			UpdateColumn("answers", gorm.Expr("answers - 1")).Error; err != nil {
			return err
		}

		return tx.Delete(&answer).Error
	})
	if err != nil {
		return err
	}

	s.dispatch(func() {
		s.logInteraction(userID, models.ActionDelete, answerID, models.TargetAnswer, answer.AuthorID)
	})

	return nil
}

// GetAnswers returns a page of answers for a question, newest first.
func (s *Service) GetAnswers(questionID, page, pageSize int) ([]models.Answer, error) {
	p, size := normalizePage(page, pageSize)

	var answers []models.Answer
	err := s.db.Where("question_id = ?", questionID).
		Preload("User").
		Order("created_at desc").
		Offset((p - 1) * size).Limit(size).
		Find(&answers).Error
	return answers, err
}
