package mock

import (
	"maps"
	"slices"

	"securitybot/pkg/models"
)

// Callers get copies so the fixed dataset stays immutable for the process lifetime.

func cloneService(s models.Service) models.Service {
	s.Benefits = slices.Clone(s.Benefits)
	if s.Price != nil {
		s.Price = ptr(*s.Price)
	}
	return s
}

func cloneRequest(r models.ServiceRequest) models.ServiceRequest {
	r.Payload = maps.Clone(r.Payload)
	return r
}

func clonePayment(p models.Payment) models.Payment {
	if p.ServiceID != nil {
		p.ServiceID = ptr(*p.ServiceID)
	}
	if p.RequestID != nil {
		p.RequestID = ptr(*p.RequestID)
	}
	if p.Receipt != nil {
		p.Receipt = ptr(*p.Receipt)
	}
	return p
}

func cloneIncident(i models.Incident) models.Incident {
	i.Photos = slices.Clone(i.Photos)
	if i.UserID != nil {
		i.UserID = ptr(*i.UserID)
	}
	if i.VideoURL != nil {
		i.VideoURL = ptr(*i.VideoURL)
	}
	return i
}

func cloneVehicle(v models.Vehicle) models.Vehicle {
	v.ActiveServices = slices.Clone(v.ActiveServices)
	v.History = slices.Clone(v.History)
	return v
}

func cloneAll[T any](in []T, clone func(T) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, clone(v))
	}
	return out
}
