package schema

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migration is one versioned schema step. Steps are applied in Version
// order, each in its own transaction, and recorded in schema_migrations.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// AppliedMigration is a row of schema_migrations.
type AppliedMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(255);not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (AppliedMigration) TableName() string {
	return "schema_migrations"
}

// Tables lists every entity table of the canonical schema.
func Tables() []interface{} {
	return []interface{}{
		&model.Product{},
		&model.SoldProduct{},
		&model.User{},
		&model.Buyer{},
		&model.Category{},
		&model.Tower{},
		&model.Equipment{},
	}
}

// Migrations is the ordered list of schema steps. Append new steps here;
// never edit a step that has shipped.
var Migrations = []Migration{
	{Version: 1, Name: "create_core_tables", Up: createMissingTables},
}

// Initialize makes sure every table exists. It only creates what is absent,
// never drops or alters, and is safe to run on every start.
func Initialize(ctx context.Context, db *gorm.DB) error {
	return apply(ctx, db, Migrations)
}

func apply(ctx context.Context, db *gorm.DB, migrations []Migration) error {
	db = db.WithContext(ctx)

	if err := createIfAbsent(db, &AppliedMigration{}); err != nil {
		return fmt.Errorf("schema_migrations: %w", err)
	}

	var applied []AppliedMigration
	if err := db.Order("version ASC").Find(&applied).Error; err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, a := range applied {
		done[a.Version] = true
	}

	for _, m := range migrations {
		if done[m.Version] {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			// Another instance may have applied the same step concurrently.
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&AppliedMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

func createMissingTables(tx *gorm.DB) error {
	for _, t := range Tables() {
		if err := createIfAbsent(tx, t); err != nil {
			return err
		}
	}
	return nil
}

func createIfAbsent(db *gorm.DB, table interface{}) error {
	migrator := db.Migrator()
	if migrator.HasTable(table) {
		return nil
	}
	if err := migrator.CreateTable(table); err != nil {
		return fmt.Errorf("create table for %T: %w", table, err)
	}
	return nil
}
