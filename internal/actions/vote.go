package actions

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/models"
)

type CastVoteParams struct {
	TargetID   int               `json:"target_id" validate:"required"`
	TargetType models.TargetType `json:"target_type" validate:"required,oneof=question answer"`
	VoteType   models.VoteType   `json:"vote_type" validate:"required,oneof=upvote downvote"`
}

type HasVotedParams struct {
	TargetID   int               `json:"target_id" validate:"required"`
	TargetType models.TargetType `json:"target_type" validate:"required,oneof=question answer"`
}

type HasVotedResult struct {
	HasUpvoted   bool `json:"has_upvoted"`
	HasDownvoted bool `json:"has_downvoted"`
}

// targetModel dispatches the GORM model by target kind.
func targetModel(t models.TargetType) any {
	if t == models.TargetAnswer {
		return &models.Answer{}
	}
	return &models.Question{}
}

func voteColumn(v models.VoteType) string {
	if v == models.VoteDown {
		return "downvotes"
	}
	return "upvotes"
}

// targetAuthor loads the author of a question or answer, or reports the
// target missing.
func targetAuthor(tx *gorm.DB, t models.TargetType, id int) (int, error) {
	var row struct{ AuthorID int }
	err := tx.Model(targetModel(t)).Select("author_id").Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, &NotFoundError{Resource: string(t)}
	}
	if err != nil {
		return 0, err
	}
	return row.AuthorID, nil
}

// updateVoteCount applies a relative delta to the denormalized counter on
// the target. Always an atomic column increment, never read-then-write.
func updateVoteCount(tx *gorm.DB, targetID int, targetType models.TargetType, voteType models.VoteType, change int) error {
	col := voteColumn(voteType)
	res := tx.Model(targetModel(targetType)).
		Where("id = ?", targetID).
		UpdateColumn(col, gorm.Expr(col+" + ?", change))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: string(targetType)}
	}
	return nil
}

// CastVote records, switches, or toggles off a vote. The vote row and the
// target's counter move in one transaction so they can never diverge.
func (s *Service) CastVote(userID int, params CastVoteParams) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	if err := s.validateParams(params); err != nil {
		return err
	}

	var contentAuthorID int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		authorID, err := targetAuthor(tx, params.TargetType, params.TargetID)
		if err != nil {
			return err
		}
		contentAuthorID = authorID

		var existing models.Vote
		err = tx.Where("author_id = ? AND action_id = ? AND action_type = ?",
			userID, params.TargetID, params.TargetType).First(&existing).Error

		switch {
		case err == nil && existing.VoteType == params.VoteType:
			// Same vote again - remove it (toggle off)
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return updateVoteCount(tx, params.TargetID, params.TargetType, params.VoteType, -1)

		case err == nil:
			// Different vote - switch it in place. Update writes the new
			// value back into existing, so grab the old type first.
			oldType := existing.VoteType
			if err := tx.Model(&existing).Update("vote_type", params.VoteType).Error; err != nil {
				return err
			}
			if err := updateVoteCount(tx, params.TargetID, params.TargetType, oldType, -1); err != nil {
				return err
			}
			return updateVoteCount(tx, params.TargetID, params.TargetType, params.VoteType, 1)

		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{
				AuthorID:   userID,
				ActionID:   params.TargetID,
				ActionType: params.TargetType,
				VoteType:   params.VoteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			return updateVoteCount(tx, params.TargetID, params.TargetType, params.VoteType, 1)

		default:
			return err
		}
	})
	if err != nil {
		return err
	}

	// Reputation and the interaction log run after the commit, best-effort
	s.dispatch(func() {
		s.logInteraction(userID, models.InteractionAction(params.VoteType),
			params.TargetID, params.TargetType, contentAuthorID)
	})

	return nil
}

// HasVoted reports whether the user currently has a vote on the target.
func (s *Service) HasVoted(userID int, params HasVotedParams) (HasVotedResult, error) {
	if userID == 0 {
		return HasVotedResult{}, ErrUnauthorized
	}
	if err := s.validateParams(params); err != nil {
		return HasVotedResult{}, err
	}

	var vote models.Vote
	err := s.db.Where("author_id = ? AND action_id = ? AND action_type = ?",
		userID, params.TargetID, params.TargetType).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HasVotedResult{}, nil
	}
	if err != nil {
		return HasVotedResult{}, err
	}

	return HasVotedResult{
		HasUpvoted:   vote.VoteType == models.VoteUp,
		HasDownvoted: vote.VoteType == models.VoteDown,
	}, nil
}
