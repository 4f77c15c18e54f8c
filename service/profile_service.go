package service

import (
	"securitybot/pkg/models"
	"securitybot/storage"
)

type ProfileStats struct {
	Requests  int `json:"requests"`
	Incidents int `json:"incidents"`
	Payments  int `json:"payments"`
}

type ProfileService interface {
	Stats(user models.User) ProfileStats
}

type profileService struct {
	stg storage.IStorage
}

func NewProfileService(stg storage.IStorage) ProfileService {
	return &profileService{stg: stg}
}

// Stats counts every request and payment in the dataset but only the
// incidents the user filed themselves.
func (s *profileService) Stats(user models.User) ProfileStats {
	return ProfileStats{
		Requests:  len(s.stg.Request().GetAll()),
		Incidents: len(s.stg.Incident().GetByUser(user.ID)),
		Payments:  len(s.stg.Payment().GetAll()),
	}
}
