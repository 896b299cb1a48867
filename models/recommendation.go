package models

// The recommendation engine is an external service and its payload shape is
// not enforced upstream, so the scalar fields here stay untyped. The history
// codec runs every value through a normalizer before anything is trusted.

type RecommendationNutrition struct {
	SugarG100g   any `json:"sugar_g_100g"`
	SodiumMg100g any `json:"sodium_mg_100g"`
	ProteinG100g any `json:"protein_g_100g"`
	FiberG100g   any `json:"fiber_g_100g"`
	FatSatG100g  any `json:"fat_sat_g_100g"`
}

type RecommendationItem struct {
	Rank      any                      `json:"rank"`
	Brand     any                      `json:"brand"`
	Category  any                      `json:"category"`
	Reasons   any                      `json:"reasons"`
	Nutrition *RecommendationNutrition `json:"nutrition,omitempty"`
}

type RecommendationAnswer struct {
	Summary         any                  `json:"summary"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

type RecommendationResult struct {
	Status            any                   `json:"status"`
	IsSafe            any                   `json:"is_safe"`
	AssessmentSummary any                   `json:"assessment_summary"`
	AssessmentReasons any                   `json:"assessment_reasons"`
	Answer            *RecommendationAnswer `json:"answer,omitempty"`
	UsedQuery         any                   `json:"used_query"`
	Query             any                   `json:"query,omitempty"`
}
