package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/storage"
)

type VehicleService interface {
	FindByPlate(raw string) *models.Vehicle
	// Verify is the screen-level lookup: it rejects empty input and waits
	// for the simulated lookup delay.
	Verify(ctx context.Context, raw string) (*models.Vehicle, error)
}

type vehicleService struct {
	stg   storage.IVehicleStorage
	log   logger.ILogger
	delay time.Duration
}

func NewVehicleService(stg storage.IStorage, log logger.ILogger, delay time.Duration) VehicleService {
	return &vehicleService{
		stg:   stg.Vehicle(),
		log:   log,
		delay: delay,
	}
}

// NormalizePlate uppercases the plate and strips all whitespace.
func NormalizePlate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func (s *vehicleService) FindByPlate(raw string) *models.Vehicle {
	v, err := s.stg.GetByPlate(NormalizePlate(raw))
	if err != nil {
		return nil
	}
	return v
}

func (s *vehicleService) Verify(ctx context.Context, raw string) (*models.Vehicle, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, invalid(ErrEmptyPlate, "plate")
	}
	if err := Simulate(ctx, s.delay); err != nil {
		return nil, err
	}
	v := s.FindByPlate(raw)
	s.log.Debug("plate verified", logger.String("plate", NormalizePlate(raw)), logger.Bool("found", v != nil))
	return v, nil
}
