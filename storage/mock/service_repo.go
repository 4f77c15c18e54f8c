package mock

import (
	"securitybot/pkg/models"
	"securitybot/storage"
)

type serviceRepo struct {
	list []models.Service
	byID map[string]int
}

func newServiceRepo(list []models.Service) *serviceRepo {
	r := &serviceRepo{list: list, byID: make(map[string]int, len(list))}
	for i, s := range list {
		r.byID[s.ID] = i
	}
	return r
}

func (r *serviceRepo) GetAll() []models.Service {
	return cloneAll(r.list, cloneService)
}

func (r *serviceRepo) GetByID(id string) (*models.Service, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	s := cloneService(r.list[i])
	return &s, nil
}
