package mock

import (
	"securitybot/pkg/logger"
	"securitybot/storage"
)

// Store serves the fixed dataset from memory and delegates flag persistence
// to the supplied key/value backend. Records are indexed by id once at
// construction and never mutated afterwards.
type Store struct {
	kv  storage.IKeyValueStorage
	log logger.ILogger

	users    *userRepo
	services *serviceRepo
	requests *requestRepo
	payments *paymentRepo
	incident *incidentRepo
	vehicles *vehicleRepo
}

func New(kv storage.IKeyValueStorage, log logger.ILogger) storage.IStorage {
	if kv == nil {
		kv = NewKV()
	}
	return &Store{
		kv:       kv,
		log:      log,
		users:    newUserRepo(defaultUser),
		services: newServiceRepo(services),
		requests: newRequestRepo(requests),
		payments: newPaymentRepo(payments),
		incident: newIncidentRepo(incidents),
		vehicles: newVehicleRepo(vehicles),
	}
}

func (s *Store) Close() {
	s.kv.Close()
}

func (s *Store) User() storage.IUserStorage         { return s.users }
func (s *Store) Service() storage.IServiceStorage   { return s.services }
func (s *Store) Request() storage.IRequestStorage   { return s.requests }
func (s *Store) Payment() storage.IPaymentStorage   { return s.payments }
func (s *Store) Incident() storage.IIncidentStorage { return s.incident }
func (s *Store) Vehicle() storage.IVehicleStorage   { return s.vehicles }
func (s *Store) KV() storage.IKeyValueStorage       { return s.kv }
