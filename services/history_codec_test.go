package services

import (
	"reflect"
	"testing"

	"github.com/nabilsaragih/grains/models"
)

func sampleItem(rank float64, brand string) models.RecommendationItem {
	return models.RecommendationItem{
		Rank:     rank,
		Brand:    brand,
		Category: "snack",
		Reasons:  []any{"low sugar", "high fiber"},
		Nutrition: &models.RecommendationNutrition{
			SugarG100g:   2.5,
			SodiumMg100g: 120.0,
			ProteinG100g: 8.0,
			FiberG100g:   6.0,
			FatSatG100g:  1.0,
		},
	}
}

func resultWith(items ...models.RecommendationItem) *models.RecommendationResult {
	return &models.RecommendationResult{
		Status:            "ok",
		IsSafe:            true,
		AssessmentSummary: "generally fine",
		AssessmentReasons: []any{"within sugar limits"},
		Answer: &models.RecommendationAnswer{
			Summary:         "top picks",
			Recommendations: items,
		},
		UsedQuery: "granola bar",
	}
}

func TestMapResultToHistoryOrdersByRank(t *testing.T) {
	res := resultWith(
		sampleItem(3, "third"),
		sampleItem(1, "first"),
		sampleItem(2, "second"),
	)

	row := MapResultToHistory(res, "")

	want := []string{"first", "second", "third"}
	for i, brand := range want {
		slot := row.Slot(i)
		if slot.Brand == nil || *slot.Brand != brand {
			t.Fatalf("slot %d: expected brand %q, got %v", i+1, brand, slot.Brand)
		}
		if slot.Rank == nil || *slot.Rank != float64(i+1) {
			t.Fatalf("slot %d: expected rank %d, got %v", i+1, i+1, slot.Rank)
		}
	}

	// slots 4 and 5 stay fully empty
	for i := 3; i < models.HistorySlots; i++ {
		slot := row.Slot(i)
		if slot.Rank != nil || slot.Brand != nil || slot.Category != nil || len(slot.Reasons) != 0 || slot.SugarG100g != nil {
			t.Fatalf("slot %d should be empty", i+1)
		}
	}
}

func TestMapResultToHistoryTruncatesToFiveLowestRanks(t *testing.T) {
	res := resultWith(
		sampleItem(7, "seventh"),
		sampleItem(2, "second"),
		sampleItem(5, "fifth"),
		sampleItem(1, "first"),
		sampleItem(6, "sixth"),
		sampleItem(4, "fourth"),
		sampleItem(3, "third"),
	)

	row := MapResultToHistory(res, "")

	want := []string{"first", "second", "third", "fourth", "fifth"}
	for i, brand := range want {
		slot := row.Slot(i)
		if slot.Brand == nil || *slot.Brand != brand {
			t.Fatalf("slot %d: expected brand %q, got %v", i+1, brand, slot.Brand)
		}
	}
}

func TestMapResultToHistoryRankZeroTies(t *testing.T) {
	// A rank of 0 compares exactly like a missing rank; the stable sort keeps
	// payload order among ties, so both land ahead of rank 1 in input order.
	zero := models.RecommendationItem{Rank: 0, Brand: "zero"}
	missing := models.RecommendationItem{Brand: "missing"}
	one := models.RecommendationItem{Rank: 1, Brand: "one"}

	row := MapResultToHistory(resultWith(one, zero, missing), "")

	want := []string{"zero", "missing", "one"}
	for i, brand := range want {
		slot := row.Slot(i)
		if slot.Brand == nil || *slot.Brand != brand {
			t.Fatalf("slot %d: expected brand %q, got %v", i+1, brand, slot.Brand)
		}
	}
}

func TestMapResultToHistoryUsedQueryFallback(t *testing.T) {
	res := resultWith(sampleItem(1, "a"))

	row := MapResultToHistory(res, "override query")
	if row.UsedQuery == nil || *row.UsedQuery != "override query" {
		t.Fatalf("override should win, got %v", row.UsedQuery)
	}

	// An empty or whitespace override falls through to the result's used_query.
	row = MapResultToHistory(res, "   ")
	if row.UsedQuery == nil || *row.UsedQuery != "granola bar" {
		t.Fatalf("blank override should fall back to used_query, got %v", row.UsedQuery)
	}

	res.UsedQuery = nil
	res.Query = "raw query"
	row = MapResultToHistory(res, "")
	if row.UsedQuery == nil || *row.UsedQuery != "raw query" {
		t.Fatalf("expected fallback to query, got %v", row.UsedQuery)
	}
}

func TestMapResultToHistoryNormalizesLooseFields(t *testing.T) {
	res := &models.RecommendationResult{
		Status:            "  ok  ",
		IsSafe:            "TRUE",
		AssessmentSummary: 42, // wrong type degrades to null
		AssessmentReasons: []any{" keep ", "", 7},
		Answer: &models.RecommendationAnswer{
			Recommendations: []models.RecommendationItem{
				{Rank: "2", Brand: "  Brand A  ", Category: nil, Reasons: "not an array"},
			},
		},
	}

	row := MapResultToHistory(res, "")

	if row.Status == nil || *row.Status != "ok" {
		t.Fatalf("status should be trimmed, got %v", row.Status)
	}
	if row.IsSafe == nil || *row.IsSafe != true {
		t.Fatalf(`is_safe "TRUE" should normalize to true, got %v`, row.IsSafe)
	}
	if row.AssessmentSummary != nil {
		t.Fatalf("non-string summary should be null, got %q", *row.AssessmentSummary)
	}
	if len(row.AssessmentReasons) != 1 || row.AssessmentReasons[0] != "keep" {
		t.Fatalf("reasons should keep trimmed strings only, got %v", row.AssessmentReasons)
	}

	slot := row.Slot(0)
	if slot.Rank == nil || *slot.Rank != 2 {
		t.Fatalf(`rank "2" should parse to 2, got %v`, slot.Rank)
	}
	if slot.Brand == nil || *slot.Brand != "Brand A" {
		t.Fatalf("brand should be trimmed, got %v", slot.Brand)
	}
	if len(slot.Reasons) != 0 {
		t.Fatalf("non-array reasons should be empty, got %v", slot.Reasons)
	}
}

func TestRoundTripPreservesRecommendations(t *testing.T) {
	res := resultWith(
		sampleItem(1, "first"),
		sampleItem(2, "second"),
		sampleItem(3, "third"),
	)

	row := MapResultToHistory(res, "granola bar")
	back := MapHistoryToResult(&row)

	if back.Answer == nil || len(back.Answer.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations back, got %+v", back.Answer)
	}

	wantBrands := []string{"first", "second", "third"}
	for i, item := range back.Answer.Recommendations {
		if item.Brand != wantBrands[i] {
			t.Fatalf("item %d: expected brand %q, got %v", i, wantBrands[i], item.Brand)
		}
		if item.Rank != float64(i+1) {
			t.Fatalf("item %d: expected rank %d, got %v", i, i+1, item.Rank)
		}
		if item.Category != "snack" {
			t.Fatalf("item %d: expected category snack, got %v", i, item.Category)
		}
		if !reflect.DeepEqual(item.Reasons, []string{"low sugar", "high fiber"}) {
			t.Fatalf("item %d: reasons mismatch: %v", i, item.Reasons)
		}
		if item.Nutrition == nil {
			t.Fatalf("item %d: nutrition lost in round trip", i)
		}
		if item.Nutrition.SugarG100g != 2.5 || item.Nutrition.SodiumMg100g != 120.0 {
			t.Fatalf("item %d: nutrition values mismatch: %+v", i, item.Nutrition)
		}
	}

	if back.Status != "ok" || back.IsSafe != true {
		t.Fatalf("top-level fields lost: status=%v is_safe=%v", back.Status, back.IsSafe)
	}
	if back.UsedQuery != "granola bar" {
		t.Fatalf("used_query lost: %v", back.UsedQuery)
	}
	if back.Answer.Summary != "top picks" {
		t.Fatalf("answer summary lost: %v", back.Answer.Summary)
	}
}

func TestRoundTripWithoutNutritionOmitsNutrition(t *testing.T) {
	res := resultWith(models.RecommendationItem{
		Rank:     1,
		Brand:    "X",
		Category: "Y",
		Reasons:  []any{},
	})

	row := MapResultToHistory(res, "")
	back := MapHistoryToResult(&row)

	if len(back.Answer.Recommendations) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(back.Answer.Recommendations))
	}
	item := back.Answer.Recommendations[0]
	if item.Nutrition != nil {
		t.Fatalf("nutrition should be absent, got %+v", item.Nutrition)
	}
	if item.Brand != "X" || item.Category != "Y" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestMapHistoryToResultSkipsEmptySlots(t *testing.T) {
	row := MapResultToHistory(resultWith(
		sampleItem(1, "first"),
		sampleItem(2, "second"),
		sampleItem(3, "third"),
	), "")

	// Hollow out slot 3; rec4/rec5 are already empty.
	*row.Slot(2) = models.HistorySlot{}

	back := MapHistoryToResult(&row)
	if len(back.Answer.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations with slot 3 emptied, got %d", len(back.Answer.Recommendations))
	}
}

func TestMapHistoryToResultFallbackRank(t *testing.T) {
	row := MapResultToHistory(resultWith(
		sampleItem(1, "first"),
		sampleItem(2, "second"),
	), "")

	// Null out the stored rank of slot 2; the decoder substitutes the 1-based
	// slot position.
	row.Slot(1).Rank = nil

	back := MapHistoryToResult(&row)
	if len(back.Answer.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(back.Answer.Recommendations))
	}
	if back.Answer.Recommendations[1].Rank != 2.0 {
		t.Fatalf("expected fallback rank 2, got %v", back.Answer.Recommendations[1].Rank)
	}
}

func TestMapHistoryToResultAlwaysReturnsReasonsArray(t *testing.T) {
	var row models.RecommendationHistory

	back := MapHistoryToResult(&row)
	if back.AssessmentReasons == nil {
		t.Fatalf("assessment_reasons must never be nil")
	}
	if reasons, ok := back.AssessmentReasons.([]string); !ok || len(reasons) != 0 {
		t.Fatalf("expected empty string slice, got %v", back.AssessmentReasons)
	}
	if back.Answer == nil || len(back.Answer.Recommendations) != 0 {
		t.Fatalf("empty row should decode to zero recommendations")
	}
}

func TestMapResultToHistoryNilAndEmptyResult(t *testing.T) {
	row := MapResultToHistory(nil, "q")
	if row.UsedQuery != nil {
		t.Fatalf("nil result should produce an empty row")
	}

	row = MapResultToHistory(&models.RecommendationResult{}, "q")
	if row.UsedQuery == nil || *row.UsedQuery != "q" {
		t.Fatalf("override should still be recorded for an empty result, got %v", row.UsedQuery)
	}
	for i := 0; i < models.HistorySlots; i++ {
		if row.Slot(i).Brand != nil || row.Slot(i).Rank != nil {
			t.Fatalf("slot %d should be empty", i+1)
		}
	}
}
