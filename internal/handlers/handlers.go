package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/database"
)

// Handler combines all handler types
type Handler struct {
	Auth       *AuthHandler
	Question   *QuestionHandler
	Answer     *AnswerHandler
	Vote       *VoteHandler
	Collection *CollectionHandler
	Tag        *TagHandler
	User       *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db database.Service) *Handler {
	gormDB := db.GetDB()
	core := actions.New(gormDB)

	return &Handler{
		Auth:       NewAuthHandler(gormDB),
		Question:   NewQuestionHandler(core),
		Answer:     NewAnswerHandler(core),
		Vote:       NewVoteHandler(core),
		Collection: NewCollectionHandler(core),
		Tag:        NewTagHandler(core),
		User:       NewUserHandler(gormDB),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// respondError maps the core's typed errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	if verr, ok := actions.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "fields": verr.Fields})
		return
	}

	switch {
	case errors.Is(err, actions.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case actions.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case actions.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
