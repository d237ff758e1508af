// Package loader replaces the store's contents with a freshly generated
// dataset. The whole wipe-and-reload runs in one transaction: either the
// new generation lands completely or the prior data stays untouched.
package loader

import (
	"fmt"

	"booking-demo-seeder/internal/database/models"
	seederrors "booking-demo-seeder/internal/errors"
	"booking-demo-seeder/internal/generator"
	"booking-demo-seeder/internal/logger"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// Load wipes the six destination tables and inserts the dataset inside a
// single transaction. Deletion runs children before parents, insertion the
// reverse, so foreign keys stay enforced throughout. Running Load twice
// leaves exactly one generation's worth of rows.
func Load(log *logger.Logger, db *gorm.DB, ds *generator.Dataset) error {
	if len(ds.Organizations) == 0 {
		return seederrors.ErrEmptyDataset
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Children before parents.
		wipeOrder := []interface{}{
			&models.Attendee{},
			&models.Event{},
			&models.Team{},
			&models.Room{},
			&models.User{},
			&models.Organization{},
		}
		for _, model := range wipeOrder {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("wipe %T: %w", model, err)
			}
		}

		// Parents before children.
		if err := tx.CreateInBatches(ds.Organizations, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert organizations: %w", err)
		}
		if err := tx.CreateInBatches(ds.Users, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
		if err := tx.CreateInBatches(ds.Rooms, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert rooms: %w", err)
		}
		if err := tx.CreateInBatches(ds.Teams, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert teams: %w", err)
		}
		if err := tx.CreateInBatches(ds.Events, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert events: %w", err)
		}
		if err := tx.CreateInBatches(ds.Attendees, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert attendees: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"organizations": len(ds.Organizations),
		"users":         len(ds.Users),
		"rooms":         len(ds.Rooms),
		"teams":         len(ds.Teams),
		"events":        len(ds.Events),
		"attendees":     len(ds.Attendees),
	}).Info("Dataset committed")

	return nil
}
