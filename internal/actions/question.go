package actions

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/models"
)

type CreateQuestionParams struct {
	Title   string   `json:"title" validate:"required,min=5,max=100"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"required,min=1,max=5,dive,required,max=30"`
}

type EditQuestionParams struct {
	QuestionID int      `json:"question_id" validate:"required"`
	Title      string   `json:"title" validate:"required,min=5,max=100"`
	Content    string   `json:"content" validate:"required"`
	Tags       []string `json:"tags" validate:"required,min=1,max=5,dive,required,max=30"`
}

type ListQuestionsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Query    string `json:"query"`
	Filter   string `json:"filter"` // newest | frequent | unanswered
}

// CreateQuestion writes the question and its tag links in one transaction;
// the post interaction runs after commit.
func (s *Service) CreateQuestion(userID int, params CreateQuestionParams) (*models.Question, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if err := s.validateParams(params); err != nil {
		return nil, err
	}

	question := models.Question{
		Title:    params.Title,
		Content:  params.Content,
		AuthorID: userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		tags, err := syncTags(tx, question.ID, params.Tags)
		if err != nil {
			return err
		}
		question.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(func() {
		s.logInteraction(userID, models.ActionPost, question.ID, models.TargetQuestion, question.AuthorID)
	})

	return &question, nil
}

// EditQuestion updates title/content and reconciles the tag set. Author only.
func (s *Service) EditQuestion(userID int, params EditQuestionParams) (*models.Question, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if err := s.validateParams(params); err != nil {
		return nil, err
	}

	var question models.Question

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&question, params.QuestionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "question"}
		}
		if err != nil {
			return err
		}
		if question.AuthorID != userID {
			return &ForbiddenError{Message: "you can only edit your own questions"}
		}

		if question.Title != params.Title || question.Content != params.Content {
			question.Title = params.Title
			question.Content = params.Content
			if err := tx.Model(&question).Updates(map[string]any{
				"title":   question.Title,
				"content": question.Content,
			}).Error; err != nil {
				return err
			}
		}

		tags, err := syncTags(tx, question.ID, params.Tags)
		if err != nil {
			return err
		}
		question.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(func() {
		s.logInteraction(userID, models.ActionEdit, question.ID, models.TargetQuestion, question.AuthorID)
	})

	return &question, nil
}

// DeleteQuestion cascades in one transaction: saved-question rows, tag
// links and counters, votes on the question and all its answers, the
// answers, then the question itself. The transaction, not the order,
// guarantees nothing partial survives.
func (s *Service) DeleteQuestion(userID, questionID int) error {
	if userID == 0 {
		return ErrUnauthorized
	}

	var question models.Question

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&question, questionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "question"}
		}
		if err != nil {
			return err
		}
		if question.AuthorID != userID {
			return &ForbiddenError{Message: "you can only delete your own questions"}
		}

		if err := tx.Where("question_id = ?", questionID).Delete(&models.Collection{}).Error; err != nil {
			return err
		}

		tags, err := questionTags(tx, questionID)
		if err != nil {
			return err
		}
		tagIDs := make([]int, len(tags))
		for i, tag := range tags {
			tagIDs[i] = tag.ID
		}
		if err := detachTags(tx, questionID, tagIDs); err != nil {
			return err
		}

		var answerIDs []int
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ?", questionID).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("action_id = ? AND action_type = ?",
			questionID, models.TargetQuestion).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("action_id IN ? AND action_type = ?",
				answerIDs, models.TargetAnswer).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id = ?", questionID).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&question).Error
	})
	if err != nil {
		return err
	}

	s.dispatch(func() {
		s.logInteraction(userID, models.ActionDelete, questionID, models.TargetQuestion, question.AuthorID)
	})

	return nil
}

// GetQuestion loads one question with its author and tags.
func (s *Service) GetQuestion(questionID int) (*models.Question, error) {
	var question models.Question
	err := s.db.Preload("User").First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "question"}
	}
	if err != nil {
		return nil, err
	}

	tags, err := questionTags(s.db, questionID)
	if err != nil {
		return nil, err
	}
	question.Tags = tags

	return &question, nil
}

// ListQuestions returns a page of questions with authors and tags.
func (s *Service) ListQuestions(params ListQuestionsParams) ([]models.Question, error) {
	page, size := normalizePage(params.Page, params.PageSize)

	q := s.db.Model(&models.Question{}).Preload("User")

	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}

	switch params.Filter {
	case "frequent":
		q = q.Order("views desc")
	case "unanswered":
		q = q.Where("answers = 0").Order("created_at desc")
	default:
		q = q.Order("created_at desc")
	}

	var questions []models.Question
	if err := q.Offset((page - 1) * size).Limit(size).Find(&questions).Error; err != nil {
		return nil, err
	}

	for i := range questions {
		tags, err := questionTags(s.db, questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Tags = tags
	}

	return questions, nil
}

// IncrementViews bumps the view counter. A single atomic increment; no
// transaction needed.
func (s *Service) IncrementViews(questionID int) (int, error) {
	res := s.db.Model(&models.Question{}).
		Where("id = ?", questionID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, &NotFoundError{Resource: "question"}
	}

	var views int
	err := s.db.Model(&models.Question{}).
		Select("views").Where("id = ?", questionID).Scan(&views).Error
	return views, err
}
