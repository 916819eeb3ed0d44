package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tixbase/dibs-payment-service/internal/models"
	"github.com/tixbase/dibs-payment-service/internal/utils"
)

type SettingsRepository interface {
	UpsertSettings(ctx context.Context, settings *models.EventSettings) error
	GetSettings(ctx context.Context, organizer, event string) (*models.EventSettings, error)
}

type settingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) UpsertSettings(ctx context.Context, settings *models.EventSettings) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO event_settings (organizer, event, merchant_id, test_mode, capture_now, md5_key1, md5_key2, decorator, api_user, api_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (organizer, event) DO UPDATE SET
			merchant_id = EXCLUDED.merchant_id,
			test_mode = EXCLUDED.test_mode,
			capture_now = EXCLUDED.capture_now,
			md5_key1 = EXCLUDED.md5_key1,
			md5_key2 = EXCLUDED.md5_key2,
			decorator = EXCLUDED.decorator,
			api_user = EXCLUDED.api_user,
			api_password = EXCLUDED.api_password,
			updated_at = NOW()
	`

	_, err := r.DB.ExecContext(dbCtx, query, settings.Organizer, settings.Event, settings.MerchantID, settings.TestMode, settings.CaptureNow, settings.MD5Key1, settings.MD5Key2, settings.Decorator, settings.APIUser, settings.APIPassword)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}

func (r *settingsRepository) GetSettings(ctx context.Context, organizer, event string) (*models.EventSettings, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	settings := &models.EventSettings{}

	query := `
		SELECT organizer, event, merchant_id, test_mode, capture_now, md5_key1, md5_key2, decorator, api_user, api_password, created_at, updated_at
		FROM event_settings
		WHERE organizer = $1 AND event = $2
	`

	err := r.DB.QueryRowContext(dbCtx, query, organizer, event).Scan(&settings.Organizer, &settings.Event, &settings.MerchantID, &settings.TestMode, &settings.CaptureNow, &settings.MD5Key1, &settings.MD5Key2, &settings.Decorator, &settings.APIUser, &settings.APIPassword, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get the settings: %w", err)
	}

	return settings, nil
}
