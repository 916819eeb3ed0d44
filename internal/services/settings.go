package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tixbase/dibs-payment-service/internal/cache"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	repository "github.com/tixbase/dibs-payment-service/internal/repositories"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
)

type SettingsService interface {
	UpdateSettings(ctx context.Context, organizer, event string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
	GetSettings(ctx context.Context, organizer, event string) (*models.SettingsResponse, error)
	ResolveAPICredentials(settings *models.EventSettings) dibs.Credentials
}

type settingsService struct {
	repo     repository.SettingsRepository
	cache    cache.Cache
	dibsCfg  *config.DIBS
	cacheTTL time.Duration
}

func NewSettingsService(repo repository.SettingsRepository, cacheStore cache.Cache, cfg *config.Config) SettingsService {
	return &settingsService{
		repo:     repo,
		cache:    cacheStore,
		dibsCfg:  &cfg.DIBS,
		cacheTTL: cfg.Cache.DefaultTTL,
	}
}

// UpdateSettings implements SettingsService.
func (s *settingsService) UpdateSettings(ctx context.Context, organizer, event string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	settings := &models.EventSettings{
		Organizer:   organizer,
		Event:       event,
		MerchantID:  req.MerchantID,
		TestMode:    req.TestMode,
		CaptureNow:  req.CaptureNow,
		MD5Key1:     req.MD5Key1,
		MD5Key2:     req.MD5Key2,
		Decorator:   req.Decorator,
		APIUser:     req.APIUser,
		APIPassword: req.APIPassword,
	}

	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return nil, errors.DatabaseError("Failed to store settings").WithError(err)
	}

	// Drop the stale cache entry; the next read repopulates it.
	if err := s.cache.Delete(ctx, s.cacheKey(organizer, event)); err != nil {
		slog.Warn("settings cache invalidation failed", slog.String("error", err.Error()))
	}

	return &models.SettingsResponse{
		Settings:        settings,
		RefundSupported: s.ResolveAPICredentials(settings).Complete(),
	}, nil
}

// GetSettings implements SettingsService.
func (s *settingsService) GetSettings(ctx context.Context, organizer, event string) (*models.SettingsResponse, error) {
	settings, err := s.getEventSettings(ctx, organizer, event)
	if err != nil {
		return nil, err
	}

	return &models.SettingsResponse{
		Settings:        settings,
		RefundSupported: s.ResolveAPICredentials(settings).Complete(),
	}, nil
}

// ResolveAPICredentials picks the API user for the cgi-adm endpoints: the
// event's own user when set, otherwise the host-wide fallback for the
// merchant. An incomplete result means refunds are unsupported.
func (s *settingsService) ResolveAPICredentials(settings *models.EventSettings) dibs.Credentials {
	creds := dibs.Credentials{Username: settings.APIUser, Password: settings.APIPassword}
	if creds.Complete() {
		return creds
	}

	if username, password, ok := s.dibsCfg.APIAuthFor(settings.MerchantID); ok {
		return dibs.Credentials{Username: username, Password: password}
	}

	return dibs.Credentials{}
}

func (s *settingsService) getEventSettings(ctx context.Context, organizer, event string) (*models.EventSettings, error) {
	key := s.cacheKey(organizer, event)

	cached := &models.EventSettings{}

	found, err := s.cache.Get(ctx, key, cached)
	if err != nil {
		slog.Warn("settings cache read failed", slog.String("error", err.Error()))
	}

	if found {
		return cached, nil
	}

	settings, err := s.repo.GetSettings(ctx, organizer, event)
	if err != nil {
		return nil, errors.ConfigurationError("Payment provider is not configured for this event").WithError(err)
	}

	if err := s.cache.Set(ctx, key, settings, s.cacheTTL); err != nil {
		slog.Warn("settings cache write failed", slog.String("error", err.Error()))
	}

	return settings, nil
}

func (s *settingsService) cacheKey(organizer, event string) string {
	return cache.Key(cache.SettingsKeyPrefix, organizer+"/"+event)
}
