package postgres

import (
	"context"
	"fmt"

	"github.com/dom/power-league-website/internal/domain"
	"gorm.io/gorm"
)

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *announcementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) ListActive(ctx context.Context) ([]*domain.Announcement, error) {
	var records []*AnnouncementRecord
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("updated_at DESC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}

	announcements := make([]*domain.Announcement, len(records))
	for i, rec := range records {
		announcements[i] = rec.toDomain()
	}
	return announcements, nil
}
