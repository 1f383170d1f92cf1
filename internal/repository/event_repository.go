package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eventbook/internal/model"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *model.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create event failed: %w", err)
	}
	return nil
}

// ListByUserID returns the owner's events ordered by date, with start time
// as the tiebreak for same-day entries.
func (r *EventRepository) ListByUserID(userID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.Where("user_id = ?", userID).
		Order("date ASC, start_time ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events failed: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetByIDAndUserID(eventID, userID uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.Where("id = ? AND user_id = ?", eventID, userID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event failed: %w", err)
	}
	return &event, nil
}

// Update replaces title, date, start_time, end_time and image for the
// owner's event; location and description are left as they are.
func (r *EventRepository) Update(eventID, userID uint, title, date, startTime, endTime, image string) (int64, error) {
	tx := r.db.Model(&model.Event{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Updates(map[string]any{
			"title":      title,
			"date":       date,
			"start_time": startTime,
			"end_time":   endTime,
			"image":      image,
		})
	if tx.Error != nil {
		return 0, fmt.Errorf("update event failed: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteByID removes an event by id alone, without an owner check: any
// authenticated user can delete any event it knows the id of. Reads and
// updates are owner-scoped; delete is not.
func (r *EventRepository) DeleteByID(eventID uint) (int64, error) {
	tx := r.db.Delete(&model.Event{}, eventID)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete event failed: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
