package storage

import (
	"context"
	"errors"

	"securitybot/pkg/models"
)

// Persisted per-device keys.
const (
	KeyAuthToken         = "auth_token"
	KeyHasSeenOnboarding = "has_seen_onboarding"
)

var ErrNotFound = errors.New("not found")

type IStorage interface {
	User() IUserStorage
	Service() IServiceStorage
	Request() IRequestStorage
	Payment() IPaymentStorage
	Incident() IIncidentStorage
	Vehicle() IVehicleStorage
	KV() IKeyValueStorage
	Close()
}

// IKeyValueStorage persists small string values scoped to a device (one chat).
// Get returns ok=false when the key is absent.
type IKeyValueStorage interface {
	Get(ctx context.Context, deviceID int64, key string) (value string, ok bool, err error)
	Set(ctx context.Context, deviceID int64, key, value string) error
	Delete(ctx context.Context, deviceID int64, key string) error
	Clear(ctx context.Context) error
	Close()
}

type IUserStorage interface {
	Default() models.User
	// GetByEmail matches case-insensitively.
	GetByEmail(email string) (*models.User, error)
}

type IServiceStorage interface {
	GetAll() []models.Service
	GetByID(id string) (*models.Service, error)
}

type IRequestStorage interface {
	GetAll() []models.ServiceRequest
	GetByUser(userID string) []models.ServiceRequest
}

type IPaymentStorage interface {
	GetAll() []models.Payment
	GetByID(id string) (*models.Payment, error)
}

type IIncidentStorage interface {
	GetAll() []models.Incident
	GetByUser(userID string) []models.Incident
}

type IVehicleStorage interface {
	GetAll() []models.Vehicle
	// GetByPlate is an exact match on an already normalized plate.
	GetByPlate(plate string) (*models.Vehicle, error)
}
