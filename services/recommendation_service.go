package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/nabilsaragih/grains/models"
)

// RecommenderService calls the external recommendation engine. The engine is
// a black box: we post the product details and decode whatever comes back
// into the loose result payload.
type RecommenderService struct {
	client  *http.Client
	baseURL string
}

func NewRecommenderService() *RecommenderService {
	return &RecommenderService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: os.Getenv("RECOMMENDER_API_URL"),
	}
}

type PortionInput struct {
	Size *float64 `json:"size"`
	Unit string   `json:"unit"`
}

type ProductInput struct {
	Name    *string      `json:"name"`
	Portion PortionInput `json:"portion"`
}

type NutritionFactInput struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ManualSearchInput mirrors the manual-entry form in the app.
type ManualSearchInput struct {
	Query          string               `json:"query"`
	Product        ProductInput         `json:"product"`
	NutritionFacts []NutritionFactInput `json:"nutritionFacts"`
}

func (r *RecommenderService) Recommend(input ManualSearchInput) (*models.RecommendationResult, error) {
	if r.baseURL == "" {
		return nil, fmt.Errorf("RECOMMENDER_API_URL not set")
	}

	b, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommend payload: %w", err)
	}

	req, err := http.NewRequest("POST", r.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create recommend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommender request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read recommender response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the engine's error body; it is often JSON with {"error": "..."}.
		var engineErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &engineErr) == nil && engineErr.Error != "" {
			return nil, fmt.Errorf("recommender error (%d): %s", resp.StatusCode, engineErr.Error)
		}
		return nil, fmt.Errorf("recommender error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var result models.RecommendationResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return nil, fmt.Errorf("decode recommender response error: %v | body: %s", err, bodyPreview)
	}

	return &result, nil
}
