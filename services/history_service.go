package services

import (
	"errors"

	"github.com/nabilsaragih/grains/models"

	"gorm.io/gorm"
)

// HistoryService reads and writes recommendation_history rows. The principal
// is always passed in explicitly; a zero userID means "no authenticated
// session" and reads yield (nil, nil) rather than an error, mirroring how the
// app treats a missing session as an empty result.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Save flattens the result and inserts it for the user. The store assigns the
// row id and created_at.
func (s *HistoryService) Save(userID uint, result *models.RecommendationResult, usedQuery string) (*models.RecommendationHistory, error) {
	if userID == 0 {
		return nil, errors.New("no authenticated user")
	}
	row := MapResultToHistory(result, usedQuery)
	row.UserID = userID
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Latest returns the most recently created row owned by the user, or nil when
// there is no session or no row yet. Query errors propagate unchanged.
func (s *HistoryService) Latest(userID uint) (*models.RecommendationHistory, error) {
	if userID == 0 {
		return nil, nil
	}
	var row models.RecommendationHistory
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ByID returns the row with the given id when it is owned by the user; nil
// when there is no session, the row does not exist, or it belongs to someone
// else.
func (s *HistoryService) ByID(userID uint, id string) (*models.RecommendationHistory, error) {
	if userID == 0 {
		return nil, nil
	}
	var row models.RecommendationHistory
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
