package config

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"recruitment/domain"
)

// Migration is one forward-only schema step. Versions are applied in ascending order, once.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

type SchemaMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(100);not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrations is the schema contract the repositories are written against.
// Version 1 already carries notifications.is_archived, so no read path probes for it.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_notifications",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&domain.Notification{})
		},
	},
	{
		Version: 2,
		Name:    "create_notification_details",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&domain.ImportantDate{},
				&domain.Fee{},
				&domain.Eligibility{},
				&domain.Link{},
			)
		},
	},
	{
		Version: 3,
		Name:    "create_education_qualifications",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&domain.EducationQualification{})
		},
	},
	{
		Version: 4,
		Name:    "create_user_notifications",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&domain.UserNotification{})
		},
	},
}

func Migrate(gdb *gorm.DB) error {
	return RunMigrations(gdb, Migrations)
}

func RunMigrations(gdb *gorm.DB, migrations []Migration) error {
	if err := gdb.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var applied []SchemaMigration
	if err := gdb.Find(&applied).Error; err != nil {
		return fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	last := 0
	for _, m := range migrations {
		if m.Version <= last {
			return fmt.Errorf("migration %d (%s) is out of order", m.Version, m.Name)
		}
		last = m.Version

		if done[m.Version] {
			continue
		}

		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %d (%s): %w", m.Version, m.Name, err)
		}
		GetLogrusInstance().Infof("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// SchemaVersion returns the highest applied migration, 0 on a fresh database.
func SchemaVersion(gdb *gorm.DB) (int, error) {
	var version int
	err := gdb.Model(&SchemaMigration{}).Select("COALESCE(MAX(version), 0)").Scan(&version).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
