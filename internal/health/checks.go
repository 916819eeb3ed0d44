package health

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/redis/go-redis/v9"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
)

type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	gatewayURL := cfg.DIBS.APIBaseURL
	if gatewayURL == "" {
		gatewayURL = dibs.DefaultAPIBaseURL
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "dibs-payment-service",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "dibs",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					req, err := http.NewRequestWithContext(ctx, http.MethodHead, gatewayURL, nil)
					if err != nil {
						return fmt.Errorf("failed to build gateway probe: %w", err)
					}

					resp, err := http.DefaultClient.Do(req)
					if err != nil {
						return fmt.Errorf("failed to reach the payment gateway: %w", err)
					}

					defer resp.Body.Close()

					if resp.StatusCode >= http.StatusInternalServerError {
						return fmt.Errorf("payment gateway answered %d", resp.StatusCode)
					}

					return nil
				},
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
