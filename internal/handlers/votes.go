package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/models"
)

type VoteHandler struct {
	core *actions.Service
}

func NewVoteHandler(core *actions.Service) *VoteHandler {
	return &VoteHandler{core: core}
}

func voteTarget(c *gin.Context) (int, models.TargetType, bool) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, "", false
	}

	targetType := models.TargetType(c.Param("targetType"))
	if !targetType.Valid() {
		return 0, "", false
	}

	return targetID, targetType, true
}

// CastVote records, switches, or toggles a vote on a question or answer
// (PROTECTED - requires authentication)
func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetID, targetType, ok := voteTarget(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote target"})
		return
	}

	var input struct {
		VoteType models.VoteType `json:"vote_type" binding:"required,oneof=upvote downvote"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vote type must be upvote or downvote"})
		return
	}

	err := h.core.CastVote(userID, actions.CastVoteParams{
		TargetID:   targetID,
		TargetType: targetType,
		VoteType:   input.VoteType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// HasVoted returns the user's current vote on a target (PROTECTED)
func (h *VoteHandler) HasVoted(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetID, targetType, ok := voteTarget(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote target"})
		return
	}

	result, err := h.core.HasVoted(userID, actions.HasVotedParams{
		TargetID:   targetID,
		TargetType: targetType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
