package repositories

import (
	"fmt"
	"log"
	"os"

	"github.com/rohits-web03/voxdesk/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed lists the select options loaded at startup.
type Seed struct {
	Languages []models.Language `yaml:"languages"`
	Voices    []models.Voice    `yaml:"voices"`
	Prompts   []models.Prompt   `yaml:"prompts"`
	Models    []models.Model    `yaml:"models"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, l := range s.Languages {
		if l.ID == "" || l.Name == "" {
			return nil, fmt.Errorf("languages[%d]: id and name are required", i)
		}
	}
	for i, v := range s.Voices {
		if v.ID == "" || v.Name == "" {
			return nil, fmt.Errorf("voices[%d]: id and name are required", i)
		}
	}
	for i, p := range s.Prompts {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("prompts[%d]: id and name are required", i)
		}
	}
	for i, m := range s.Models {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("models[%d]: id and name are required", i)
		}
	}
	return &s, nil
}

// SeedCatalog inserts the seed rows, leaving existing ids untouched.
func SeedCatalog(db *gorm.DB, s *Seed) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := insertIgnore(tx, s.Languages); err != nil {
			return fmt.Errorf("seed languages: %w", err)
		}
		if err := insertIgnore(tx, s.Voices); err != nil {
			return fmt.Errorf("seed voices: %w", err)
		}
		if err := insertIgnore(tx, s.Prompts); err != nil {
			return fmt.Errorf("seed prompts: %w", err)
		}
		if err := insertIgnore(tx, s.Models); err != nil {
			return fmt.Errorf("seed models: %w", err)
		}
		log.Printf("Seeded catalog: %d languages, %d voices, %d prompts, %d models",
			len(s.Languages), len(s.Voices), len(s.Prompts), len(s.Models))
		return nil
	})
}

// insertIgnore starts a new statement per call; a reused chain would keep
// the table of the first insert.
func insertIgnore[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
