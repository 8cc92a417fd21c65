package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"gorm.io/gorm"
)

// ErrEntryNotFound is returned when an entry does not exist or belongs to
// another user.
var ErrEntryNotFound = errors.New("entry not found")

type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

type LogEntryRequest struct {
	FoodItemID uint       `json:"foodItemId" binding:"required"`
	Portion    float64    `json:"portion"`
	MealType   string     `json:"mealType" binding:"required"`
	ConsumedAt *time.Time `json:"consumedAt"`
}

// LogEntry records one consumption event. Portion defaults to 1.0.
func (s *EntryService) LogEntry(ctx context.Context, userID uint, req LogEntryRequest) (*models.DietaryEntry, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, fmt.Errorf("unknown meal type %q", req.MealType)
	}
	if req.Portion < 0 {
		return nil, fmt.Errorf("portion must be positive")
	}
	portion := req.Portion
	if portion == 0 {
		portion = 1
	}

	var food models.FoodItem
	if err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", req.FoodItemID, true).
		First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	consumedAt := time.Now()
	if req.ConsumedAt != nil {
		consumedAt = *req.ConsumedAt
	}

	entry := models.DietaryEntry{
		UserID:     userID,
		FoodItemID: food.ID,
		Portion:    portion,
		MealType:   req.MealType,
		ConsumedAt: consumedAt,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	entry.FoodItem = food
	return &entry, nil
}

// ListForUserInRange returns the user's entries intersecting [start, end],
// newest first. This is the engine's EntrySource.
func (s *EntryService) ListForUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.DietaryEntry, error) {
	var entries []models.DietaryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, start, end).
		Order("consumed_at DESC").
		Preload("FoodItem").
		Find(&entries).Error
	return entries, err
}

// ListToday returns today's entries for the meal history / dashboard.
func (s *EntryService) ListToday(ctx context.Context, userID uint) ([]models.DietaryEntry, error) {
	now := time.Now()
	return s.ListForUserInRange(ctx, userID, dayStart(now), now)
}

// Delete removes one of the user's own entries.
func (s *EntryService) Delete(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.DietaryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
