// Package seeders fills a fresh database with a small sample catalog.
package seeders

import (
	"github.com/shashiranjanraj/vitrine/pkg/logger"
	"gorm.io/gorm"
)

// Seeder is one named seeding step.
type Seeder struct {
	Name string
	Run  func(db *gorm.DB) error
}

var registry []Seeder

// Register adds a seeder. Seeders run in registration order.
func Register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder against db.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		if err := s.Run(db); err != nil {
			logger.Error("seeder failed", "seeder", s.Name, "error", err)
			return err
		}
		logger.Info("seeder finished", "seeder", s.Name)
	}
	return nil
}
