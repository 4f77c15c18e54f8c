package service

import (
	"context"
	"fmt"
	"sync"

	"securitybot/pkg/logger"
	"securitybot/storage"
)

const onboardingDone = "true"

type OnboardingService interface {
	// HasCompletedOnboarding returns nil only when ctx ends before the flag is read.
	HasCompletedOnboarding(ctx context.Context, deviceID int64) *bool
	CompleteOnboarding(ctx context.Context, deviceID int64) error
	Cached(deviceID int64) *bool
}

type onboardingService struct {
	kv  storage.IKeyValueStorage
	log logger.ILogger

	mu   sync.Mutex
	seen map[int64]bool
}

func NewOnboardingService(stg storage.IStorage, log logger.ILogger) OnboardingService {
	return &onboardingService{
		kv:   stg.KV(),
		log:  log,
		seen: make(map[int64]bool),
	}
}

func (s *onboardingService) HasCompletedOnboarding(ctx context.Context, deviceID int64) *bool {
	if v := s.Cached(deviceID); v != nil {
		return v
	}

	value, ok, err := s.kv.Get(ctx, deviceID, storage.KeyHasSeenOnboarding)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		s.log.Error("failed to check onboarding status", logger.Error(err), logger.Int64("device_id", deviceID))
		done := false
		return &done
	}

	done := ok && value == onboardingDone
	s.mu.Lock()
	s.seen[deviceID] = done
	s.mu.Unlock()
	return &done
}

func (s *onboardingService) CompleteOnboarding(ctx context.Context, deviceID int64) error {
	if err := s.kv.Set(ctx, deviceID, storage.KeyHasSeenOnboarding, onboardingDone); err != nil {
		return fmt.Errorf("persist onboarding flag: %w", err)
	}
	s.mu.Lock()
	s.seen[deviceID] = true
	s.mu.Unlock()
	return nil
}

func (s *onboardingService) Cached(deviceID int64) *bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.seen[deviceID]
	if !ok {
		return nil
	}
	return &v
}
