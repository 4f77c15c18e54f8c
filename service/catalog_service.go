package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/storage"
)

const featuredCount = 3

type CatalogService interface {
	List(category models.ServiceCategory, query string) []models.Service
	Get(id string) *models.Service
	Featured() []models.Service
	FormFields(category models.ServiceCategory) []models.FormField
	ActiveServices(userID string) []models.ActiveService
	SubmitRequest(ctx context.Context, user *models.User, serviceID string, payload map[string]string) (*models.ServiceRequest, error)
}

type catalogService struct {
	services storage.IServiceStorage
	requests storage.IRequestStorage
	log      logger.ILogger
	delay    time.Duration
	now      func() time.Time
}

func NewCatalogService(stg storage.IStorage, log logger.ILogger, delay time.Duration, now func() time.Time) CatalogService {
	return &catalogService{
		services: stg.Service(),
		requests: stg.Request(),
		log:      log,
		delay:    delay,
		now:      now,
	}
}

func (s *catalogService) List(category models.ServiceCategory, query string) []models.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Service
	for _, svc := range s.services.GetAll() {
		if category != "" && category != models.ServiceCategoryAll && svc.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(svc.Name), q) &&
			!strings.Contains(strings.ToLower(svc.Description), q) {
			continue
		}
		out = append(out, svc)
	}
	return out
}

func (s *catalogService) Get(id string) *models.Service {
	svc, err := s.services.GetByID(id)
	if err != nil {
		return nil
	}
	return svc
}

func (s *catalogService) Featured() []models.Service {
	all := s.services.GetAll()
	if len(all) > featuredCount {
		all = all[:featuredCount]
	}
	return all
}

func (s *catalogService) FormFields(category models.ServiceCategory) []models.FormField {
	switch category {
	case models.ServiceCategoryAutomotive:
		return []models.FormField{
			{Key: "vehiculo", Label: "Vehicle make and model", Placeholder: "e.g. Toyota Corolla 2020"},
			{Key: "patente", Label: "Plate", Placeholder: "e.g. ABCD12"},
			{Key: "direccion", Label: "Installation address", Placeholder: "Full address"},
		}
	case models.ServiceCategoryPersonal:
		return []models.FormField{
			{Key: "horario", Label: "Required schedule", Placeholder: "e.g. Monday to Friday 8:00-17:00"},
			{Key: "ubicacion", Label: "Main location", Placeholder: "Address or area"},
			{Key: "detalles", Label: "Additional details", Placeholder: "Relevant information", Multiline: true},
		}
	case models.ServiceCategoryRealEstate:
		return []models.FormField{
			{Key: "direccion", Label: "Property address", Placeholder: "Full address"},
			{Key: "tipo", Label: "Property type", Placeholder: "House, apartment, office, etc."},
			{Key: "cobertura", Label: "Areas to cover", Placeholder: "Describe the areas", Multiline: true},
		}
	default:
		return []models.FormField{
			{Key: "detalles", Label: "Service details", Placeholder: "Describe your needs", Multiline: true},
			{Key: "ubicacion", Label: "Location", Placeholder: "Address or area"},
		}
	}
}

func (s *catalogService) ActiveServices(userID string) []models.ActiveService {
	var out []models.ActiveService
	for _, req := range s.requests.GetByUser(userID) {
		svc, err := s.services.GetByID(req.ServiceID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				s.log.Error("failed to join request with service", logger.Error(err), logger.String("request_id", req.ID))
			}
			continue
		}
		out = append(out, models.ActiveService{Request: req, Service: *svc})
	}
	return out
}

// SubmitRequest checks that every form field is filled, then "sends" the
// request. Nothing is stored.
func (s *catalogService) SubmitRequest(ctx context.Context, user *models.User, serviceID string, payload map[string]string) (*models.ServiceRequest, error) {
	svc := s.Get(serviceID)
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	var missing []string
	clean := make(map[string]string, len(payload))
	for _, f := range s.FormFields(svc.Category) {
		v := strings.TrimSpace(payload[f.Key])
		if v == "" {
			missing = append(missing, f.Key)
			continue
		}
		clean[f.Key] = v
	}
	if len(missing) > 0 {
		return nil, invalid(ErrMissingFields, missing...)
	}

	if err := Simulate(ctx, s.delay); err != nil {
		s.log.Info("service request abandoned", logger.String("service_id", serviceID), logger.Error(err))
		return nil, err
	}

	now := s.now()
	req := &models.ServiceRequest{
		ServiceID: svc.ID,
		Payload:   clean,
		Status:    models.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user != nil {
		req.UserID = user.ID
	}
	s.log.Info("service request accepted", logger.String("service_id", svc.ID))
	return req, nil
}
