package integrations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"droscher.com/BeanJournal/pkg/model"
)

var (
	ErrEnrichment    = errors.New("failed to fetch")
	ErrMissingAPIKey = fmt.Errorf("%w: api key required", ErrEnrichment)
)

type RecommendationType string

const (
	RecommendByPreferences RecommendationType = "preferences"
	RecommendByJournal     RecommendationType = "journal"
)

type Preferences struct {
	RoastLevel string `json:"roastLevel"`
	Notes      string `json:"notes"`
	PriceRange string `json:"priceRange"`
}

// RecommendationRequest carries either explicit preferences or the journal entries
// used as a taste fingerprint, depending on Type.
type RecommendationRequest struct {
	Type        RecommendationType
	Preferences Preferences
	Journal     []*model.CoffeeBean
}

// Enricher looks beans up in an external source. Implementations check their
// preconditions before making any network call. AutoPopulate may return nil details
// without an error when nothing was found.
type Enricher interface {
	AutoPopulate(ctx context.Context, apiKey, roaster, name string) (*model.BeanDetails, error)
	Recommend(ctx context.Context, apiKey string, request RecommendationRequest) ([]model.Suggestion, error)
}

func RequireAPIKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrMissingAPIKey
	}

	return nil
}

func ValidateLookup(roaster, name string) error {
	var errs error

	if strings.TrimSpace(roaster) == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: roaster is required", model.ErrValidation))
	}

	if strings.TrimSpace(name) == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: name is required", model.ErrValidation))
	}

	return errs
}

// Validate checks the request shape. Preference requests need every preference field.
func (r RecommendationRequest) Validate() error {
	switch r.Type {
	case RecommendByJournal:
		return nil
	case RecommendByPreferences:
		var errs error

		if strings.TrimSpace(r.Preferences.RoastLevel) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: preferred roast level is required", model.ErrValidation))
		}

		if strings.TrimSpace(r.Preferences.Notes) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: preferred notes are required", model.ErrValidation))
		}

		if strings.TrimSpace(r.Preferences.PriceRange) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: price range is required", model.ErrValidation))
		}

		return errs
	default:
		return fmt.Errorf("%w: unknown recommendation type %q", model.ErrValidation, r.Type)
	}
}
