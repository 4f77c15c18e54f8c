package service

import (
	"errors"
	"strings"

	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/storage"
)

// fallbackServiceName labels payments whose service cannot be resolved.
const fallbackServiceName = "Servicio"

type PaymentService interface {
	List(filter models.PaymentFilter, query string) []models.PaymentView
	TotalPending() int64
	// PayNow is a mock: it reports a pending payment as paid and stores nothing.
	PayNow(paymentID string, method models.PaymentMethod) (*models.Payment, error)
	Receipt(paymentID string) (string, error)
}

type paymentService struct {
	payments storage.IPaymentStorage
	services storage.IServiceStorage
	log      logger.ILogger
}

func NewPaymentService(stg storage.IStorage, log logger.ILogger) PaymentService {
	return &paymentService{
		payments: stg.Payment(),
		services: stg.Service(),
		log:      log,
	}
}

func matchesFilter(p models.Payment, f models.PaymentFilter) bool {
	switch f {
	case models.PaymentFilterPending:
		return p.Status == models.PaymentPending
	case models.PaymentFilterPaid:
		return p.Status == models.PaymentPaid
	case models.PaymentFilterRejected:
		return p.Status == models.PaymentRejected
	default:
		return true
	}
}

func (s *paymentService) serviceName(p models.Payment) string {
	if p.ServiceID == nil {
		return fallbackServiceName
	}
	svc, err := s.services.GetByID(*p.ServiceID)
	if err != nil {
		return fallbackServiceName
	}
	return svc.Name
}

func (s *paymentService) List(filter models.PaymentFilter, query string) []models.PaymentView {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.PaymentView
	for _, p := range s.payments.GetAll() {
		if !matchesFilter(p, filter) {
			continue
		}
		name := s.serviceName(p)
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		out = append(out, models.PaymentView{Payment: p, ServiceName: name})
	}
	return out
}

func (s *paymentService) TotalPending() int64 {
	var total int64
	for _, p := range s.payments.GetAll() {
		if p.Status == models.PaymentPending {
			total += p.Amount
		}
	}
	return total
}

func (s *paymentService) find(id string) (*models.Payment, error) {
	p, err := s.payments.GetByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

func (s *paymentService) PayNow(paymentID string, method models.PaymentMethod) (*models.Payment, error) {
	p, err := s.find(paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PaymentPending {
		return nil, ErrPaymentNotPending
	}
	p.Status = models.PaymentPaid
	p.Method = method
	s.log.Info("mock payment processed", logger.String("payment_id", paymentID), logger.String("method", string(method)))
	return p, nil
}

func (s *paymentService) Receipt(paymentID string) (string, error) {
	p, err := s.find(paymentID)
	if err != nil {
		return "", err
	}
	if p.Status != models.PaymentPaid || p.Receipt == nil {
		return "", ErrReceiptNotAvailable
	}
	return *p.Receipt, nil
}
