package repository

import (
	"errors"

	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// ChannelRepository is the data access interface for sales channels.
type ChannelRepository interface {
	GetByKey(key string) (*models.Channel, error)
	List() ([]models.Channel, error)
}

// GormChannelRepository is the GORM implementation.
type GormChannelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a channel repository.
func NewChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

// GetByKey fetches a channel by its fixed key.
func (r *GormChannelRepository) GetByKey(key string) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.Where("key = ?", key).First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &channel, nil
}

// List returns all channels.
func (r *GormChannelRepository) List() ([]models.Channel, error) {
	var channels []models.Channel
	if err := r.db.Order("id asc").Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}
