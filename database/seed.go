package database

import (
	"errors"
	"fmt"
	"os"
	"ticket_master/config"
	"ticket_master/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type SeedFile struct {
	Sports []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Teams       []string `yaml:"teams"`
	} `yaml:"sports"`
	Stadiums []struct {
		Name     string `yaml:"name"`
		Address  string `yaml:"address"`
		Capacity int    `yaml:"capacity"`
	} `yaml:"stadiums"`
}

const defaultStaffPassword = "changeme123"

var ErrStaffPasswordMissing = errors.New("staff password must be set in production")

// SeedData creates the built-in staff accounts and, when path is set, catalog data from YAML.
// Existing rows are left untouched. In production every staff password must come from the environment.
func SeedData(db *gorm.DB, path string, production bool) error {
	staff := []struct {
		name, email, passwordKey string
		role                     model.Role
	}{
		{"Administrator", "admin@tickets.local", "ADMIN_PASSWORD", model.RoleAdmin},
		{"Super Administrator", "superadmin@tickets.local", "SUPER_ADMIN_PASSWORD", model.RoleSuperAdmin},
	}
	for _, s := range staff {
		password := config.Config(s.passwordKey)
		if password == "" {
			if production {
				return fmt.Errorf("%s: %w", s.passwordKey, ErrStaffPasswordMissing)
			}
			log.Warn().Str("email", s.email).Msg("staff password not set, using the development default")
			password = defaultStaffPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			return err
		}
		user := model.User{Name: s.name, Email: s.email, Password: string(hash), Role: s.role, IsActive: true}
		if err := db.Where(model.User{Email: s.email}).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("seed %s: %w", s.email, err)
		}
	}

	if path == "" {
		return nil
	}
	return seedCatalog(db, path)
}

func seedCatalog(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range file.Sports {
			sport := model.Sport{Name: s.Name, Description: s.Description}
			if err := tx.Where(model.Sport{Name: s.Name}).FirstOrCreate(&sport).Error; err != nil {
				return err
			}
			for _, name := range s.Teams {
				team := model.Team{Name: name, SportId: sport.ID}
				if err := tx.Where(model.Team{Name: name}).FirstOrCreate(&team).Error; err != nil {
					return err
				}
			}
		}
		for _, s := range file.Stadiums {
			stadium := model.Stadium{Name: s.Name, Address: s.Address, Capacity: s.Capacity}
			if err := tx.Where(model.Stadium{Name: s.Name}).FirstOrCreate(&stadium).Error; err != nil {
				return err
			}
		}
		log.Info().Int("sports", len(file.Sports)).Int("stadiums", len(file.Stadiums)).Msg("catalog seeded")
		return nil
	})
}
