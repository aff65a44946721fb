package actions

import (
	"log"

	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/models"
)

type CreateInteractionParams struct {
	Action       models.InteractionAction `json:"action" validate:"required,oneof=view upvote downvote bookmark post edit delete"`
	ActionID     int                      `json:"action_id" validate:"required"`
	ActionTarget models.TargetType        `json:"action_target" validate:"required,oneof=question answer"`
	AuthorID     int                      `json:"author_id" validate:"required"`
}

// reputationDelta is a pair of signed point adjustments: one for the user
// performing the action, one for the author of the content acted on.
type reputationDelta struct {
	Performer int
	Author    int
}

// reputationPolicy maps (action, target kind) to point deltas. Data, not
// control flow, so it stays auditable.
var reputationPolicy = map[models.InteractionAction]map[models.TargetType]reputationDelta{
	models.ActionUpvote: {
		models.TargetQuestion: {Performer: 2, Author: 5},
		models.TargetAnswer:   {Performer: 2, Author: 5},
	},
	models.ActionDownvote: {
		models.TargetQuestion: {Performer: -1, Author: -2},
		models.TargetAnswer:   {Performer: -1, Author: -2},
	},
	models.ActionPost: {
		models.TargetQuestion: {Author: 5},
		models.TargetAnswer:   {Author: 10},
	},
	models.ActionDelete: {
		models.TargetQuestion: {Author: -5},
		models.TargetAnswer:   {Author: -10},
	},
	models.ActionBookmark: {
		models.TargetQuestion: {Performer: 2, Author: 5},
		models.TargetAnswer:   {Performer: 2, Author: 5},
	},
	models.ActionEdit: {
		models.TargetQuestion: {Author: 10},
		models.TargetAnswer:   {Author: 10},
	},
}

// CreateInteraction appends one log row and applies the matching
// reputation deltas. Both happen in one transaction: the log row and the
// reputation totals never drift apart.
func (s *Service) CreateInteraction(performerID int, params CreateInteractionParams) (*models.Interaction, error) {
	if performerID == 0 {
		return nil, ErrUnauthorized
	}
	if err := s.validateParams(params); err != nil {
		return nil, err
	}

	interaction := models.Interaction{
		UserID:     performerID,
		Action:     params.Action,
		ActionID:   params.ActionID,
		ActionType: params.ActionTarget,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&interaction).Error; err != nil {
			return err
		}
		return updateReputation(tx, &interaction, performerID, params.AuthorID)
	})
	if err != nil {
		return nil, err
	}

	return &interaction, nil
}

// updateReputation applies the policy deltas to both users atomically. When
// the performer interacts with their own content, only the author delta is
// applied, once.
func updateReputation(tx *gorm.DB, interaction *models.Interaction, performerID, authorID int) error {
	delta := reputationPolicy[interaction.Action][interaction.ActionType]

	if performerID == authorID {
		if delta.Author == 0 {
			return nil
		}
		return incReputation(tx, performerID, delta.Author)
	}

	if delta.Performer != 0 {
		if err := incReputation(tx, performerID, delta.Performer); err != nil {
			return err
		}
	}
	if delta.Author != 0 {
		if err := incReputation(tx, authorID, delta.Author); err != nil {
			return err
		}
	}
	return nil
}

func incReputation(tx *gorm.DB, userID, points int) error {
	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("reputation", gorm.Expr("reputation + ?", points)).Error
}

// logInteraction is the deferred entry point used after commits. Failures
// are logged and swallowed: the primary action already succeeded.
func (s *Service) logInteraction(performerID int, action models.InteractionAction, actionID int, target models.TargetType, authorID int) {
	_, err := s.CreateInteraction(performerID, CreateInteractionParams{
		Action:       action,
		ActionID:     actionID,
		ActionTarget: target,
		AuthorID:     authorID,
	})
	if err != nil {
		log.Printf("failed to log %s interaction for %s %d: %v", action, target, actionID, err)
	}
}
