package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/actions"
)

type TagHandler struct {
	core *actions.Service
}

func NewTagHandler(core *actions.Service) *TagHandler {
	return &TagHandler{core: core}
}

// GetTags returns tags ordered by question count
func (h *TagHandler) GetTags(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	tags, err := h.core.ListTags(actions.ListTagsParams{
		Page:     page,
		PageSize: pageSize,
		Query:    c.Query("query"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

// GetTagQuestions returns the questions carrying a tag
func (h *TagHandler) GetTagQuestions(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	tag, questions, err := h.core.GetTagQuestions(tagID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tag":       tag,
		"questions": questions,
	})
}
