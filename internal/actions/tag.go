package actions

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devoverflow/backend/internal/models"
)

// normalizeTag lowercases a tag name so the unique index on tags.name is
// the case-insensitive match.
func normalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// attachTag upserts the tag and bumps its question counter in a single
// INSERT ... ON CONFLICT, then creates the link row. Safe under concurrent
// question creations sharing a new tag name.
func attachTag(tx *gorm.DB, questionID int, name string) (models.Tag, error) {
	tag := models.Tag{Name: name, Questions: 1}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]any{"questions": gorm.Expr("tags.questions + 1")}),
	}).Create(&tag).Error
	if err != nil {
		return tag, err
	}

	link := models.TagQuestion{TagID: tag.ID, QuestionID: questionID}
	if err := tx.Create(&link).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

// detachTags decrements the counters and removes the link rows for the
// given tags on one question.
func detachTags(tx *gorm.DB, questionID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}
	err := tx.Model(&models.Tag{}).
		Where("id IN ?", tagIDs).
		UpdateColumn("questions", gorm.Expr("questions - 1")).Error
	if err != nil {
		return err
	}
	return tx.Where("question_id = ? AND tag_id IN ?", questionID, tagIDs).
		Delete(&models.TagQuestion{}).Error
}

// syncTags reconciles a question's tag set with the desired names inside
// the caller's transaction. Returns the tags now attached.
func syncTags(tx *gorm.DB, questionID int, desired []string) ([]models.Tag, error) {
	want := make(map[string]bool, len(desired))
	for _, raw := range desired {
		if name := normalizeTag(raw); name != "" {
			want[name] = true
		}
	}

	current, err := questionTags(tx, questionID)
	if err != nil {
		return nil, err
	}
	have := make(map[string]models.Tag, len(current))
	for _, tag := range current {
		have[tag.Name] = tag
	}

	result := make([]models.Tag, 0, len(want))
	for name := range want {
		if tag, ok := have[name]; ok {
			result = append(result, tag)
			continue
		}
		tag, err := attachTag(tx, questionID, name)
		if err != nil {
			return nil, err
		}
		result = append(result, tag)
	}

	var remove []int
	for name, tag := range have {
		if !want[name] {
			remove = append(remove, tag.ID)
		}
	}
	if err := detachTags(tx, questionID, remove); err != nil {
		return nil, err
	}

	return result, nil
}

// questionTags loads the tags currently linked to a question.
func questionTags(db *gorm.DB, questionID int) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Model(&models.Tag{}).
		Joins("JOIN tag_questions ON tag_questions.tag_id = tags.id").
		Where("tag_questions.question_id = ?", questionID).
		Order("tags.name").
		Find(&tags).Error
	return tags, err
}

type ListTagsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Query    string `json:"query"`
}

// ListTags returns tags ordered by how many questions carry them.
func (s *Service) ListTags(params ListTagsParams) ([]models.Tag, error) {
	page, size := normalizePage(params.Page, params.PageSize)

	q := s.db.Model(&models.Tag{}).Order("questions desc, name asc")
	if params.Query != "" {
		q = q.Where("name LIKE ?", "%"+normalizeTag(params.Query)+"%")
	}

	var tags []models.Tag
	err := q.Offset((page - 1) * size).Limit(size).Find(&tags).Error
	return tags, err
}

// GetTagQuestions returns the questions currently carrying a tag.
func (s *Service) GetTagQuestions(tagID, page, pageSize int) (models.Tag, []models.Question, error) {
	var tag models.Tag
	if err := s.db.First(&tag, tagID).Error; err != nil {
		return tag, nil, &NotFoundError{Resource: "tag"}
	}

	p, size := normalizePage(page, pageSize)

	var questions []models.Question
	err := s.db.Model(&models.Question{}).
		Joins("JOIN tag_questions ON tag_questions.question_id = questions.id").
		Where("tag_questions.tag_id = ?", tagID).
		Preload("User").
		Order("questions.created_at desc").
		Offset((p - 1) * size).Limit(size).
		Find(&questions).Error
	if err != nil {
		return tag, nil, err
	}

	for i := range questions {
		tags, err := questionTags(s.db, questions[i].ID)
		if err != nil {
			return tag, nil, err
		}
		questions[i].Tags = tags
	}

	return tag, questions, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}
