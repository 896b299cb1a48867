package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StringList is persisted as JSON so the same column scans under both the
// postgres and sqlite drivers.
type StringList = datatypes.JSONSlice[string]

// HistorySlots is the fixed number of flattened recommendation slots per row.
const HistorySlots = 5

// HistorySlot holds one flattened recommendation. Every field is nullable;
// a slot is considered empty only when all of them are null/empty.
type HistorySlot struct {
	Rank         *float64   `gorm:"column:rank" json:"rank"`
	Brand        *string    `gorm:"column:brand" json:"brand"`
	Category     *string    `gorm:"column:category" json:"category"`
	Reasons      StringList `gorm:"column:reasons" json:"reasons"`
	SugarG100g   *float64   `gorm:"column:sugar_g_100g" json:"sugar_g_100g"`
	SodiumMg100g *float64   `gorm:"column:sodium_mg_100g" json:"sodium_mg_100g"`
	ProteinG100g *float64   `gorm:"column:protein_g_100g" json:"protein_g_100g"`
	FiberG100g   *float64   `gorm:"column:fiber_g_100g" json:"fiber_g_100g"`
	FatSatG100g  *float64   `gorm:"column:fat_sat_g_100g" json:"fat_sat_g_100g"`
}

// RecommendationHistory is one row per recommendation event. Rows are written
// once after a successful engine call and never updated.
type RecommendationHistory struct {
	ID                string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uint       `gorm:"index;not null" json:"user_id"`
	Status            *string    `json:"status"`
	UsedQuery         *string    `json:"used_query"`
	IsSafe            *bool      `json:"is_safe"`
	AssessmentSummary *string    `json:"assessment_summary"`
	AssessmentReasons StringList `json:"assessment_reasons"`
	AnswerSummary     *string    `json:"answer_summary"`

	Rec1 HistorySlot `gorm:"embedded;embeddedPrefix:rec1_" json:"rec1"`
	Rec2 HistorySlot `gorm:"embedded;embeddedPrefix:rec2_" json:"rec2"`
	Rec3 HistorySlot `gorm:"embedded;embeddedPrefix:rec3_" json:"rec3"`
	Rec4 HistorySlot `gorm:"embedded;embeddedPrefix:rec4_" json:"rec4"`
	Rec5 HistorySlot `gorm:"embedded;embeddedPrefix:rec5_" json:"rec5"`

	CreatedAt time.Time `json:"created_at"`
}

func (h *RecommendationHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// Slot returns the i-th flattened group (0-based), or nil when out of range.
// Slot index corresponds to ascending rank at encode time.
func (h *RecommendationHistory) Slot(i int) *HistorySlot {
	switch i {
	case 0:
		return &h.Rec1
	case 1:
		return &h.Rec2
	case 2:
		return &h.Rec3
	case 3:
		return &h.Rec4
	case 4:
		return &h.Rec5
	}
	return nil
}
