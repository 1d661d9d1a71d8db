package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gorm.io/datatypes"
)

const (
	MinRank = 1
	MaxRank = 5
)

var ErrValidation = errors.New("validation failed")

// CoffeeBean is one journal entry. Notes are stored as a serialized JSON list.
type CoffeeBean struct {
	ID            string                      `gorm:"primaryKey;type:text"     json:"id"`
	Roaster       string                      `gorm:"type:text;not null"       json:"roaster"`
	Name          string                      `gorm:"type:text;not null"       json:"name"`
	Origin        string                      `gorm:"type:text;not null"       json:"origin"`
	RoastLevel    RoastLevel                  `gorm:"type:text;not null"       json:"roastLevel"`
	Notes         datatypes.JSONSlice[string] `gorm:"type:text;not null"       json:"notes"`
	GeneralNotes  string                      `gorm:"type:text"                json:"generalNotes"`
	Rank          int                         `gorm:"not null"                 json:"rank"`
	GramsIn       float64                     `gorm:"not null"                 json:"gramsIn"`
	MlOut         float64                     `gorm:"not null"                 json:"mlOut"`
	BrewTime      int                         `gorm:"not null"                 json:"brewTime"`
	Temperature   int                         `gorm:"not null"                 json:"temperature"`
	Price         float64                     `gorm:"not null"                 json:"price"`
	Weight        int                         `gorm:"not null"                 json:"weight"`
	GrindSize     int                         `gorm:"not null"                 json:"grindSize"`
	OrderAgain    bool                        `gorm:"not null"                 json:"orderAgain"`
	PurchaseCount int                         `gorm:"not null"                 json:"purchaseCount"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime;not null"  json:"created_at"`
}

func (CoffeeBean) TableName() string {
	return "coffee_beans"
}

func (b *CoffeeBean) GetID() string      { return b.ID }
func (b *CoffeeBean) GetName() string    { return b.Name }
func (b *CoffeeBean) GetRoaster() string { return b.Roaster }
func (b *CoffeeBean) GetNotes() []string { return b.Notes }

// Validate reports every missing or out of range field of a bean about to be inserted.
func (b *CoffeeBean) Validate() error {
	var errs error

	errs = multierr.Append(errs, requireText("roaster", b.Roaster))
	errs = multierr.Append(errs, requireText("name", b.Name))
	errs = multierr.Append(errs, requireText("origin", b.Origin))
	errs = multierr.Append(errs, validateRoastLevel(b.RoastLevel))
	errs = multierr.Append(errs, validateRank(b.Rank))

	return errs
}

// Normalize trims the text fields, dedupes the notes and defaults the purchase count.
func (b *CoffeeBean) Normalize() {
	b.Roaster = strings.TrimSpace(b.Roaster)
	b.Name = strings.TrimSpace(b.Name)
	b.Origin = strings.TrimSpace(b.Origin)
	b.Notes = NormalizeNotes(b.Notes)

	if b.PurchaseCount <= 0 {
		b.PurchaseCount = 1
	}
}

// NormalizeNotes trims every note, drops empty ones and suppresses exact duplicates,
// keeping the first occurrence. The result is never nil.
func NormalizeNotes(notes []string) []string {
	result := make([]string, 0, len(notes))
	seen := make(map[string]struct{}, len(notes))

	for _, note := range notes {
		note = strings.TrimSpace(note)
		if note == "" {
			continue
		}

		if _, found := seen[note]; found {
			continue
		}

		seen[note] = struct{}{}
		result = append(result, note)
	}

	return result
}

func requireText(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}

	return nil
}

func validateRank(rank int) error {
	if rank < MinRank || rank > MaxRank {
		return fmt.Errorf("%w: rank must be between %d and %d, got %d", ErrValidation, MinRank, MaxRank, rank)
	}

	return nil
}

func validateRoastLevel(level RoastLevel) error {
	if !level.Valid() {
		return fmt.Errorf("%w: unknown roast level %q", ErrValidation, level)
	}

	return nil
}
