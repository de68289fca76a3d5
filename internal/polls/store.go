package polls

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shi-vam7902/Quick-poll-backend/internal/models"
)

// Store is the persistence contract for poll records.
type Store interface {
	Create(question string, options []string) (*models.Poll, error)
	GetAll() ([]models.Poll, error)
	GetActive() ([]models.Poll, error)
	GetByID(pollID string) (*models.Poll, error)
	Update(pollID string, fields UpdateFields) (*models.Poll, error)
	Delete(pollID string) (bool, error)
}

// UpdateFields carries a partial update; nil fields are left untouched.
type UpdateFields struct {
	Question *string
	Options  []string
	Active   *bool
}

// GormStore persists polls in postgres via gorm. Input validation happens in
// the Service; the store trusts its caller.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(question string, options []string) (*models.Poll, error) {
	poll := models.Poll{
		PollID:   uuid.NewString(),
		Question: question,
		Options:  options,
		Active:   true,
	}

	if err := s.db.Create(&poll).Error; err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	return &poll, nil
}

func (s *GormStore) GetAll() ([]models.Poll, error) {
	var polls []models.Poll
	if err := s.db.Order("created_at desc").Find(&polls).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch polls: %w", err)
	}
	return polls, nil
}

func (s *GormStore) GetActive() ([]models.Poll, error) {
	var polls []models.Poll
	if err := s.db.Where("active = ?", true).Order("created_at desc").Find(&polls).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch active polls: %w", err)
	}
	return polls, nil
}

func (s *GormStore) GetByID(pollID string) (*models.Poll, error) {
	var poll models.Poll
	if err := s.db.Where("poll_id = ?", pollID).First(&poll).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to fetch poll: %w", err)
	}
	return &poll, nil
}

// Update merges the given fields into the stored record.
func (s *GormStore) Update(pollID string, fields UpdateFields) (*models.Poll, error) {
	poll, err := s.GetByID(pollID)
	if err != nil {
		return nil, err
	}

	if fields.Question != nil {
		poll.Question = *fields.Question
	}
	if fields.Options != nil {
		poll.Options = fields.Options
	}
	if fields.Active != nil {
		poll.Active = *fields.Active
	}

	if err := s.db.Save(poll).Error; err != nil {
		return nil, fmt.Errorf("failed to update poll: %w", err)
	}

	return poll, nil
}

func (s *GormStore) Delete(pollID string) (bool, error) {
	result := s.db.Where("poll_id = ?", pollID).Delete(&models.Poll{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete poll: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
