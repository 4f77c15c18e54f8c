package mock

import "securitybot/pkg/models"

type requestRepo struct {
	list   []models.ServiceRequest
	byUser map[string][]int
}

func newRequestRepo(list []models.ServiceRequest) *requestRepo {
	r := &requestRepo{
		list:   list,
		byUser: make(map[string][]int),
	}
	for i, req := range list {
		r.byUser[req.UserID] = append(r.byUser[req.UserID], i)
	}
	return r
}

func (r *requestRepo) GetAll() []models.ServiceRequest {
	return cloneAll(r.list, cloneRequest)
}

func (r *requestRepo) GetByUser(userID string) []models.ServiceRequest {
	idx := r.byUser[userID]
	out := make([]models.ServiceRequest, 0, len(idx))
	for _, i := range idx {
		out = append(out, cloneRequest(r.list[i]))
	}
	return out
}
