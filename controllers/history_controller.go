package controllers

import (
	"net/http"

	"github.com/nabilsaragih/grains/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{History: history}
}

// GET /history/latest
func (hc *HistoryController) Latest(c *gin.Context) {
	uid := c.GetUint("userID")

	row, err := hc.History.Latest(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no recommendation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         row.ID,
		"created_at": row.CreatedAt,
		"result":     services.MapHistoryToResult(row),
	})
}

// GET /history/:id
func (hc *HistoryController) ByID(c *gin.Context) {
	uid := c.GetUint("userID")

	row, err := hc.History.ByID(uid, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recommendation history not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         row.ID,
		"created_at": row.CreatedAt,
		"result":     services.MapHistoryToResult(row),
	})
}
