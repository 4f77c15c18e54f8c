package bot

import (
	"context"
	"sync"

	"securitybot/pkg/geo"
	"securitybot/pkg/models"
	"securitybot/service"
)

const (
	StateIdle           = "idle"
	StateOnboarding     = "onboarding"
	StateLoginEmail     = "awaiting_login_email"
	StateLoginPassword  = "awaiting_login_password"
	StateRegister       = "awaiting_register_field"
	StateServiceSearch  = "awaiting_service_search"
	StateRequestForm    = "awaiting_request_field"
	StateMapLocation    = "awaiting_map_location"
	StateReportText     = "awaiting_report_description"
	StateReportLocation = "awaiting_report_location"
	StateReportPhotos   = "awaiting_report_photos"
	StateReportConfirm  = "awaiting_report_confirm"
	StatePaymentSearch  = "awaiting_payment_search"
	StatePlate          = "awaiting_plate"
)

// UserSession is the screen state of one chat. Callers hold the embedded
// mutex while reading or changing it.
type UserSession struct {
	sync.Mutex

	State string
	Step  int
	Form  map[string]string

	ServiceCategory  models.ServiceCategory
	ServiceID        string
	IncidentCategory models.IncidentCategory
	Origin           *geo.Point
	Report           service.ReportInput
	PaymentFilter    models.PaymentFilter

	cancel  context.CancelFunc
	pending uint64
}

func newSession() *UserSession {
	return &UserSession{
		State:            StateIdle,
		ServiceCategory:  models.ServiceCategoryAll,
		IncidentCategory: models.IncidentCategoryAll,
		PaymentFilter:    models.PaymentFilterAll,
	}
}

// reset moves the chat to state with an empty form and abandons any
// submission still in flight.
func (s *UserSession) reset(state string) {
	s.cancelPending()
	s.State = state
	s.Step = 0
	s.Form = make(map[string]string)
}

// startPending cancels the previous submission and returns the context and
// ticket for a new one.
func (s *UserSession) startPending(parent context.Context) (context.Context, uint64) {
	s.cancelPending()
	ctx, cancel := context.WithCancel(parent)
	s.pending++
	s.cancel = cancel
	return ctx, s.pending
}

// finishPending releases the ticket and reports whether it was still the
// current submission.
func (s *UserSession) finishPending(ticket uint64) bool {
	if s.cancel == nil || s.pending != ticket {
		return false
	}
	s.cancel()
	s.cancel = nil
	return true
}

func (s *UserSession) cancelPending() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *UserSession) hasPending() bool {
	return s.cancel != nil
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*UserSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*UserSession)}
}

func (s *sessionStore) get(chatID int64) *UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = newSession()
		s.sessions[chatID] = sess
	}
	return sess
}

func (s *sessionStore) cancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		sess.Lock()
		sess.cancelPending()
		sess.Unlock()
	}
}
