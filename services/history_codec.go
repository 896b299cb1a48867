package services

import (
	"sort"

	"github.com/nabilsaragih/grains/models"
	"github.com/nabilsaragih/grains/utils"
)

// History codec: flattens an engine result into the fixed five-slot history
// row and rebuilds it for display. Both directions are pure and total: every
// untrusted field passes through a normalizer, so malformed payloads degrade
// to null columns instead of failing.

// MapResultToHistory builds the insert row for a result. usedQuery is the
// caller's override; when it normalizes to nil the row falls back to the
// result's used_query, then its query field.
func MapResultToHistory(result *models.RecommendationResult, usedQuery string) models.RecommendationHistory {
	var row models.RecommendationHistory
	if result == nil {
		return row
	}

	var recs []models.RecommendationItem
	if result.Answer != nil {
		recs = append(recs, result.Answer.Recommendations...)
	}

	// Missing ranks compare as 0, so a stored rank of 0 sorts exactly like an
	// absent one. The sort is stable: ties keep payload order.
	sort.SliceStable(recs, func(i, j int) bool {
		return rankForSort(recs[i]) < rankForSort(recs[j])
	})
	if len(recs) > models.HistorySlots {
		recs = recs[:models.HistorySlots]
	}

	for i := 0; i < len(recs); i++ {
		fillSlot(row.Slot(i), &recs[i])
	}

	row.Status = utils.NormalizeString(result.Status)
	row.IsSafe = utils.NormalizeBoolean(result.IsSafe)
	row.AssessmentSummary = utils.NormalizeString(result.AssessmentSummary)
	row.AssessmentReasons = models.StringList(utils.NormalizeStringArray(result.AssessmentReasons))
	if result.Answer != nil {
		row.AnswerSummary = utils.NormalizeString(result.Answer.Summary)
	}

	row.UsedQuery = utils.NormalizeString(usedQuery)
	if row.UsedQuery == nil {
		fallback := result.UsedQuery
		if fallback == nil {
			fallback = result.Query
		}
		row.UsedQuery = utils.NormalizeString(fallback)
	}

	return row
}

// MapHistoryToResult rebuilds the nested result from a stored row. Slots where
// every column is empty contribute nothing; stored slot order is trusted as
// rank order and is not re-sorted.
func MapHistoryToResult(row *models.RecommendationHistory) *models.RecommendationResult {
	result := &models.RecommendationResult{
		AssessmentReasons: utils.NormalizeStringArray([]string(row.AssessmentReasons)),
	}
	if row.Status != nil {
		result.Status = *row.Status
	}
	if row.IsSafe != nil {
		result.IsSafe = *row.IsSafe
	}
	if row.AssessmentSummary != nil {
		result.AssessmentSummary = *row.AssessmentSummary
	}
	if row.UsedQuery != nil {
		result.UsedQuery = *row.UsedQuery
	}

	recs := make([]models.RecommendationItem, 0, models.HistorySlots)
	for i := 0; i < models.HistorySlots; i++ {
		if item := buildSlotItem(row.Slot(i), float64(i+1)); item != nil {
			recs = append(recs, *item)
		}
	}

	answer := &models.RecommendationAnswer{Recommendations: recs}
	if row.AnswerSummary != nil {
		answer.Summary = *row.AnswerSummary
	}
	result.Answer = answer

	return result
}

func rankForSort(item models.RecommendationItem) float64 {
	if r := utils.NormalizeNumber(item.Rank); r != nil {
		return *r
	}
	return 0
}

func fillSlot(slot *models.HistorySlot, item *models.RecommendationItem) {
	slot.Rank = utils.NormalizeNumber(item.Rank)
	slot.Brand = utils.NormalizeString(item.Brand)
	slot.Category = utils.NormalizeString(item.Category)
	slot.Reasons = models.StringList(utils.NormalizeStringArray(item.Reasons))
	if n := item.Nutrition; n != nil {
		slot.SugarG100g = utils.NormalizeNumber(n.SugarG100g)
		slot.SodiumMg100g = utils.NormalizeNumber(n.SodiumMg100g)
		slot.ProteinG100g = utils.NormalizeNumber(n.ProteinG100g)
		slot.FiberG100g = utils.NormalizeNumber(n.FiberG100g)
		slot.FatSatG100g = utils.NormalizeNumber(n.FatSatG100g)
	}
}

// buildSlotItem reconstructs one slot, substituting fallbackRank (the 1-based
// slot position) when the stored rank is null. Returns nil when the slot is
// fully empty.
func buildSlotItem(slot *models.HistorySlot, fallbackRank float64) *models.RecommendationItem {
	brand := utils.NormalizeString(strValue(slot.Brand))
	category := utils.NormalizeString(strValue(slot.Category))
	reasons := utils.NormalizeStringArray([]string(slot.Reasons))
	sugar := utils.NormalizeNumber(numValue(slot.SugarG100g))
	sodium := utils.NormalizeNumber(numValue(slot.SodiumMg100g))
	protein := utils.NormalizeNumber(numValue(slot.ProteinG100g))
	fiber := utils.NormalizeNumber(numValue(slot.FiberG100g))
	fatSat := utils.NormalizeNumber(numValue(slot.FatSatG100g))

	hasContent := slot.Rank != nil ||
		brand != nil ||
		category != nil ||
		len(reasons) > 0 ||
		sugar != nil ||
		sodium != nil ||
		protein != nil ||
		fiber != nil ||
		fatSat != nil
	if !hasContent {
		return nil
	}

	rank := fallbackRank
	if r := utils.NormalizeNumber(numValue(slot.Rank)); r != nil {
		rank = *r
	}

	item := &models.RecommendationItem{
		Rank:     rank,
		Brand:    strOrEmpty(brand),
		Category: strOrEmpty(category),
		Reasons:  reasons,
	}

	// Nutrition is attached only when at least one numeric is present; a slot
	// without nutrition never round-trips into an all-null sub-object.
	if sugar != nil || sodium != nil || protein != nil || fiber != nil || fatSat != nil {
		item.Nutrition = &models.RecommendationNutrition{
			SugarG100g:   numValue(sugar),
			SodiumMg100g: numValue(sodium),
			ProteinG100g: numValue(protein),
			FiberG100g:   numValue(fiber),
			FatSatG100g:  numValue(fatSat),
		}
	}

	return item
}

func strValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func numValue(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
