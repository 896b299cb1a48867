package controllers

import (
	"net/http"

	"github.com/nabilsaragih/grains/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Recommender *services.RecommenderService
	Scanner     *services.LabelScanService
	History     *services.HistoryService
	Hub         *services.RealtimeHub
	Push        *services.PushService
}

func NewRecommendationController(
	rec *services.RecommenderService,
	scanner *services.LabelScanService,
	history *services.HistoryService,
	hub *services.RealtimeHub,
	push *services.PushService,
) *RecommendationController {
	return &RecommendationController{
		Recommender: rec,
		Scanner:     scanner,
		History:     history,
		Hub:         hub,
		Push:        push,
	}
}

// POST /recommendations/manual
func (rc *RecommendationController) Manual(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ManualSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := rc.Recommender.Recommend(input)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	row, err := rc.History.Save(uid, result, input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rc.notifySaved(uid, row.ID)

	c.JSON(http.StatusOK, gin.H{"history_id": row.ID, "result": result})
}

type LabelScanRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /recommendations/label-scan
func (rc *RecommendationController) LabelScan(c *gin.Context) {
	uid := c.GetUint("userID")

	var req LabelScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	query, err := rc.Scanner.ScanLabel(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := rc.Recommender.Recommend(services.ManualSearchInput{Query: query})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	row, err := rc.History.Save(uid, result, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rc.notifySaved(uid, row.ID)

	c.JSON(http.StatusOK, gin.H{"history_id": row.ID, "used_query": query, "result": result})
}

func (rc *RecommendationController) notifySaved(uid uint, historyID string) {
	rc.Hub.BroadcastHistorySaved(uid, historyID)
	rc.Push.PushToUser(uid, "Recommendation ready", "Your nutrition recommendation is ready to view.", map[string]string{
		"history_id": historyID,
	})
}
