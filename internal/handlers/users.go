package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUserProfile returns a user's profile with their activity
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID := c.Param("id")
	var user models.User

	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Get user's questions
	var questions []models.Question
	h.db.Where("author_id = ?", userID).Preload("User").Order("created_at desc").Limit(10).Find(&questions)

	// Question/answer counts
	var questionCount, answerCount int64
	h.db.Model(&models.Question{}).Where("author_id = ?", userID).Count(&questionCount)
	h.db.Model(&models.Answer{}).Where("author_id = ?", userID).Count(&answerCount)

	// Top tags across the user's questions
	type tagStat struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Questions int    `json:"questions"`
	}
	var topTags []tagStat
	h.db.Model(&models.Tag{}).
		Select("tags.id, tags.name, count(*) as questions").
		Joins("JOIN tag_questions ON tag_questions.tag_id = tags.id").
		Joins("JOIN questions ON questions.id = tag_questions.question_id").
		Where("questions.author_id = ?", userID).
		Group("tags.id, tags.name").
		Order("questions desc").
		Limit(5).
		Scan(&topTags)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"name":       user.Name,
			"bio":        user.Bio,
			"image":      user.Image,
			"reputation": user.Reputation,
			"created_at": user.CreatedAt,
		},
		"questions":      questions,
		"question_count": questionCount,
		"answer_count":   answerCount,
		"top_tags":       topTags,
	})
}

// UpdateUserProfile updates the authenticated user's own profile
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	userID := c.Param("id")

	authUserID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Check if user is updating their own profile
	if fmt.Sprintf("%v", authUserID) != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own profile"})
		return
	}

	var input struct {
		Name  string `json:"name"`
		Bio   string `json:"bio"`
		Image string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Image != "" {
		user.Image = input.Image
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"name":       user.Name,
		"bio":        user.Bio,
		"image":      user.Image,
		"reputation": user.Reputation,
	})
}
