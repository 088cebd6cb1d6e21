package config

import (
	"log"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedCreator(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedCreator seeds the bootstrap CREATOR account.
// Idempotent: keyed on the creator email, safe to run on every start.
func (s *Seeder) seedCreator() error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ?", s.cfg.Creator.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Creator user already exists")
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Creator.Password)
	if err != nil {
		return err
	}

	creator := &models.User{
		FullName:    s.cfg.Creator.FullName,
		Email:       s.cfg.Creator.Email,
		PhoneNumber: s.cfg.Creator.PhoneNumber,
		Password:    hashedPassword,
		Role:        domain.RoleCreator,
		IsActive:    true,
	}

	if err := s.db.Create(creator).Error; err != nil {
		return err
	}

	log.Printf("🆕 Creator user created by default: %s", creator.Email)
	return nil
}
