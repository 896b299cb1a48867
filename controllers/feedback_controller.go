package controllers

import (
	"log"
	"net/http"

	"github.com/nabilsaragih/grains/config"
	"github.com/nabilsaragih/grains/models"
	"github.com/nabilsaragih/grains/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackInput struct {
	Message string `json:"message" binding:"required"`
}

func SubmitFeedback(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb := models.Feedback{UserID: uid, Message: input.Message}
	if err := config.DB.Create(&fb).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Mailing a copy to support is best-effort.
	if err := utils.SendFeedbackCopy(email, input.Message); err != nil {
		log.Printf("feedback mail failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "feedback received"})
}
