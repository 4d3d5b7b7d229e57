// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"
	"time"

	"equilog-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_seed_plans",
			Migrate: func(tx *gorm.DB) error {
				plans := []models.Plan{
					{
						Name:                models.FreePlan,
						MaxDocuments:        5,
						DocumentLimitScope:  models.MonthlyScope,
						MaxHorses:           2,
						MaxAnalysesPerMonth: 1,
					},
					{
						Name:                models.PlusPlan,
						PriceMonthly:        1499,
						PriceAnnual:         14990,
						Currency:            "EUR",
						MaxDocuments:        50,
						DocumentLimitScope:  models.MonthlyScope,
						MaxHorses:           10,
						MaxAnalysesPerMonth: 20,
					},
					{
						Name:                models.ProPlan,
						PriceMonthly:        3999,
						PriceAnnual:         39990,
						Currency:            "EUR",
						MaxDocuments:        models.UnlimitedLimit,
						DocumentLimitScope:  models.LifetimeScope,
						MaxHorses:           models.UnlimitedLimit,
						MaxAnalysesPerMonth: models.UnlimitedLimit,
					},
				}

				for _, plan := range plans {
					if err := tx.Where("name = ?", plan.Name).
						FirstOrCreate(&plan).Error; err != nil {
						return fmt.Errorf("failed to create plan %s: %w", plan.Name, err)
					}
				}

				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			// One active subscription per user, enforced by the database.
			// Concurrent activations cannot race past this index.
			ID: "002_one_active_subscription_per_user",
			Migrate: func(tx *gorm.DB) error {
				dialect := tx.Dialector.Name()
				switch dialect {
				case "postgres", "sqlite":
					if err := tx.Exec(
						"CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_active_per_user ON subscriptions(user_id) WHERE is_active",
					).Error; err != nil {
						return fmt.Errorf("failed to create partial unique index: %w", err)
					}
				default:
					// MySQL has no partial indexes; the resolver still
					// surfaces duplicates as a data-integrity error.
					return nil
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS idx_subscriptions_one_active_per_user").Error
			},
		},
		{
			ID: "003_seed_launch_coupon",
			Migrate: func(tx *gorm.DB) error {
				expiresAt := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
				maxRedemptions := 500
				coupon := models.Coupon{
					Code:            "EQUILOG20",
					DiscountPercent: 20,
					ExpiresAt:       &expiresAt,
					MaxRedemptions:  &maxRedemptions,
				}
				if err := tx.Where("code = ?", coupon.Code).
					FirstOrCreate(&coupon).Error; err != nil {
					return fmt.Errorf("failed to create launch coupon: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Where("code = ?", "EQUILOG20").Delete(&models.Coupon{}).Error
			},
		},
	}
}
