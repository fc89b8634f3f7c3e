// Package settings owns the player preferences and moves game snapshots in
// and out of a key/value repository.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Service defines settings and snapshot persistence
type Service interface {
	Get() domain.Settings
	Update(ctx context.Context, s domain.Settings) domain.Settings
	// Restore replaces the in-memory settings without logging an update.
	Restore(s domain.Settings)
	// LoadSnapshot reads the stored snapshot over base. found is false when nothing was stored.
	// It changes nothing; the caller applies the snapshot once it has accepted it.
	LoadSnapshot(ctx context.Context, base domain.Snapshot) (snap domain.Snapshot, found bool, err error)
	// SaveSnapshot writes snap and returns how many keys were written.
	SaveSnapshot(ctx context.Context, snap domain.Snapshot) (int, error)
}

type service struct {
	repo Repository

	mu       sync.RWMutex
	settings domain.Settings
}

// NewService creates a settings service backed by repo
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *service) Update(ctx context.Context, settings domain.Settings) domain.Settings {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSettingsUpdated,
		"sound_muted", settings.SoundMuted, "ads_opt_in", settings.AdsOptIn)
	return settings
}

func (s *service) Restore(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *service) LoadSnapshot(ctx context.Context, base domain.Snapshot) (domain.Snapshot, bool, error) {
	log := logger.FromContext(ctx)

	kv, err := s.repo.Load(ctx)
	if err != nil {
		return base, false, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}
	if len(kv) == 0 {
		log.Info(LogMsgNoSnapshot)
		return base, false, nil
	}

	snap, err := domain.SnapshotFromKV(kv, base)
	if err != nil {
		return base, false, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}

	log.Info(LogMsgSnapshotLoaded, "keys", len(kv), "potatoes", snap.Resources.Potatoes)
	return snap, true, nil
}

func (s *service) SaveSnapshot(ctx context.Context, snap domain.Snapshot) (int, error) {
	s.mu.RLock()
	snap.Settings = s.settings
	s.mu.RUnlock()

	kv := snap.ToKV()
	if err := s.repo.Save(ctx, kv); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "keys", len(kv))
	return len(kv), nil
}
