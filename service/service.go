package service

import (
	"context"
	"time"

	"securitybot/pkg/logger"
	"securitybot/storage"
)

// Route is the first screen a device lands on.
type Route string

const (
	RouteLoading    Route = "loading"
	RouteOnboarding Route = "onboarding"
	RouteLogin      Route = "login"
	RouteHome       Route = "home"
)

type Options struct {
	SubmitDelay time.Duration
	LookupDelay time.Duration
	Now         func() time.Time
}

type IServiceManager interface {
	Auth() AuthService
	Onboarding() OnboardingService
	Vehicle() VehicleService
	Incident() IncidentService
	Catalog() CatalogService
	Payment() PaymentService
	Profile() ProfileService
	Route(ctx context.Context, deviceID int64) (Route, error)
}

type service struct {
	authService       AuthService
	onboardingService OnboardingService
	vehicleService    VehicleService
	incidentService   IncidentService
	catalogService    CatalogService
	paymentService    PaymentService
	profileService    ProfileService
}

func New(stg storage.IStorage, log logger.ILogger, opts Options) IServiceManager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		authService:       NewAuthService(stg, log),
		onboardingService: NewOnboardingService(stg, log),
		vehicleService:    NewVehicleService(stg, log, opts.LookupDelay),
		incidentService:   NewIncidentService(stg, log, opts.SubmitDelay, opts.Now),
		catalogService:    NewCatalogService(stg, log, opts.SubmitDelay, opts.Now),
		paymentService:    NewPaymentService(stg, log),
		profileService:    NewProfileService(stg),
	}
}

func (s *service) Auth() AuthService             { return s.authService }
func (s *service) Onboarding() OnboardingService { return s.onboardingService }
func (s *service) Vehicle() VehicleService       { return s.vehicleService }
func (s *service) Incident() IncidentService     { return s.incidentService }
func (s *service) Catalog() CatalogService       { return s.catalogService }
func (s *service) Payment() PaymentService       { return s.paymentService }
func (s *service) Profile() ProfileService       { return s.profileService }

// Route sends first-time devices to onboarding, then to login until a
// session marker exists.
func (s *service) Route(ctx context.Context, deviceID int64) (Route, error) {
	seen := s.onboardingService.HasCompletedOnboarding(ctx, deviceID)
	if seen == nil {
		return RouteLoading, ctx.Err()
	}
	st, err := s.authService.SessionState(ctx, deviceID)
	if err != nil {
		return RouteLoading, err
	}
	switch {
	case !*seen:
		return RouteOnboarding, nil
	case !st.Authenticated:
		return RouteLogin, nil
	default:
		return RouteHome, nil
	}
}
