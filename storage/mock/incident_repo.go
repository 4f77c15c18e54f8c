package mock

import "securitybot/pkg/models"

type incidentRepo struct {
	list   []models.Incident
	byUser map[string][]int
}

func newIncidentRepo(list []models.Incident) *incidentRepo {
	r := &incidentRepo{list: list, byUser: make(map[string][]int)}
	for i, inc := range list {
		// anonymous reports carry no user id
		if inc.UserID == nil {
			continue
		}
		r.byUser[*inc.UserID] = append(r.byUser[*inc.UserID], i)
	}
	return r
}

func (r *incidentRepo) GetAll() []models.Incident {
	return cloneAll(r.list, cloneIncident)
}

func (r *incidentRepo) GetByUser(userID string) []models.Incident {
	idx := r.byUser[userID]
	out := make([]models.Incident, 0, len(idx))
	for _, i := range idx {
		out = append(out, cloneIncident(r.list[i]))
	}
	return out
}
