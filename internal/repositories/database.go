package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB *sql.DB

	Payment      PaymentRepository
	Refund       RefundRepository
	Settings     SettingsRepository
	Notification NotificationRepository
}

func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:           db,
		Payment:      NewPaymentRepository(db),
		Refund:       NewRefundRepository(db),
		Settings:     NewSettingsRepository(db),
		Notification: NewNotificationRepository(db),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
