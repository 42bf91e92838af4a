package services

import (
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"

	"gorm.io/gorm"
)

// RecipientPolicy decides who gets notified when an event is created. The
// rule is pluggable; swap the implementation at wiring time to change it.
type RecipientPolicy interface {
	Recipients(db *gorm.DB, event *models.Event) ([]string, error)
}

// PublicBroadcastPolicy notifies every active user for public events and only
// the creator for private ones.
type PublicBroadcastPolicy struct {
	userRepo repositories.UserRepository
}

func NewPublicBroadcastPolicy(userRepo repositories.UserRepository) *PublicBroadcastPolicy {
	return &PublicBroadcastPolicy{userRepo: userRepo}
}

func (p *PublicBroadcastPolicy) Recipients(db *gorm.DB, event *models.Event) ([]string, error) {
	if !event.IsPublic {
		if event.CreatedBy == nil {
			return nil, nil
		}
		return []string{*event.CreatedBy}, nil
	}
	return p.userRepo.FindActiveIDs(db)
}
