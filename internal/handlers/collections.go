package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/actions"
)

type CollectionHandler struct {
	core *actions.Service
}

func NewCollectionHandler(core *actions.Service) *CollectionHandler {
	return &CollectionHandler{core: core}
}

// ToggleSave saves or unsaves a question (PROTECTED)
func (h *CollectionHandler) ToggleSave(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return
	}

	saved, err := h.core.ToggleSaveQuestion(userID, questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// HasSaved reports whether the question is in the user's collection (PROTECTED)
func (h *CollectionHandler) HasSaved(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return
	}

	saved, err := h.core.HasSavedQuestion(userID, questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// ListSaved returns the user's saved questions (PROTECTED)
func (h *CollectionHandler) ListSaved(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	questions, err := h.core.ListSavedQuestions(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}
