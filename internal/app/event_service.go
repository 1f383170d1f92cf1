package app

import (
	"strings"

	"eventbook/internal/model"
	"eventbook/internal/repository"
)

type EventService struct {
	eventRepo *repository.EventRepository
}

type CreateEventInput struct {
	UserID      uint
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Image       string
	Location    string
	Description string
}

// UpdateEventInput replaces exactly these five fields; location and
// description survive an update untouched.
type UpdateEventInput struct {
	Title     string
	Date      string
	StartTime string
	EndTime   string
	Image     string
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) Create(input CreateEventInput) (*model.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return nil, ErrInvalidInput
	}

	event := &model.Event{
		UserID:      input.UserID,
		Title:       title,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Image:       input.Image,
		Location:    input.Location,
		Description: input.Description,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) List(userID uint) ([]model.Event, error) {
	return s.eventRepo.ListByUserID(userID)
}

// Get hides foreign events behind the same not-found as missing ones, so
// an id probe cannot reveal whether an event exists.
func (s *EventService) Get(eventID, userID uint) (*model.Event, error) {
	event, err := s.eventRepo.GetByIDAndUserID(eventID, userID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *EventService) Update(eventID, userID uint, input UpdateEventInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return ErrInvalidInput
	}

	rows, err := s.eventRepo.Update(eventID, userID,
		title, input.Date, input.StartTime, input.EndTime, input.Image)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete is not owner-scoped; see EventRepository.DeleteByID.
func (s *EventService) Delete(eventID uint) error {
	rows, err := s.eventRepo.DeleteByID(eventID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}
	return nil
}
