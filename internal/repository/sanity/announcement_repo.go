package sanity

import (
	"context"

	"github.com/dom/power-league-website/internal/domain"
)

const activeAnnouncementsQuery = `*[_type == "motd" && active == true]{
  _id,
  _updatedAt,
  message,
  active,
  displayStart,
  displayEnd
}`

type announcementDocument struct {
	ID           string  `json:"_id"`
	UpdatedAt    string  `json:"_updatedAt"`
	Message      string  `json:"message"`
	Active       bool    `json:"active"`
	DisplayStart *string `json:"displayStart"`
	DisplayEnd   *string `json:"displayEnd"`
}

type announcementRepository struct {
	client *Client
}

func NewAnnouncementRepository(client *Client) *announcementRepository {
	return &announcementRepository{client: client}
}

func (r *announcementRepository) ListActive(ctx context.Context) ([]*domain.Announcement, error) {
	var docs []announcementDocument
	if err := r.client.Query(ctx, activeAnnouncementsQuery, nil, &docs); err != nil {
		return nil, err
	}

	announcements := make([]*domain.Announcement, 0, len(docs))
	for _, doc := range docs {
		start, err := parseDate("displayStart", doc.DisplayStart)
		if err != nil {
			return nil, err
		}
		end, err := parseDate("displayEnd", doc.DisplayEnd)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, &domain.Announcement{
			ID:           doc.ID,
			Message:      doc.Message,
			Active:       doc.Active,
			DisplayStart: start,
			DisplayEnd:   end,
			UpdatedAt:    parseTimestamp(doc.UpdatedAt),
		})
	}
	return announcements, nil
}
