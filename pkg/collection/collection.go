package collection

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"droscher.com/BeanJournal/pkg/model"
)

var ErrInvalidCriteria = errors.New("invalid collection criteria")

// AllRoasters is the roaster filter value that lets every roaster through.
const AllRoasters = "all"

type SortField string

const (
	SortByName    SortField = "name"
	SortByRoaster SortField = "roaster"
	SortByRank    SortField = "rank"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter holds the active predicates. Zero values pass everything through.
type Filter struct {
	Roaster string
	Rank    int
	Query   string
}

// Sort selects one field and one direction. The zero value sorts by name, ascending,
// using the root locale.
type Sort struct {
	Field     SortField
	Direction Direction
	Locale    language.Tag
}

// Apply filters and orders beans without touching the input slice.
func Apply(beans []*model.CoffeeBean, filter Filter, sort Sort) []*model.CoffeeBean {
	result := make([]*model.CoffeeBean, 0, len(beans))

	for _, bean := range beans {
		if filter.Matches(bean) {
			result = append(result, bean)
		}
	}

	slices.SortStableFunc(result, sort.compareFunc())

	return result
}

// Matches reports whether the bean satisfies every active predicate.
func (f Filter) Matches(bean *model.CoffeeBean) bool {
	if f.Roaster != "" && f.Roaster != AllRoasters && bean.Roaster != f.Roaster {
		return false
	}

	if f.Rank != 0 && bean.Rank != f.Rank {
		return false
	}

	return matchesQuery(bean, f.Query)
}

func matchesQuery(bean *model.CoffeeBean, query string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(bean.Name), query) || strings.Contains(strings.ToLower(bean.Roaster), query) {
		return true
	}

	for _, note := range bean.Notes {
		if strings.Contains(strings.ToLower(note), query) {
			return true
		}
	}

	return false
}

func (s Sort) modifier() int {
	if s.Direction == Descending {
		return -1
	}

	return 1
}

func (s Sort) compareFunc() func(a, b *model.CoffeeBean) int {
	modifier := s.modifier()

	if s.Field == SortByRank {
		// higher rank first when ascending
		return func(a, b *model.CoffeeBean) int {
			return (b.Rank - a.Rank) * modifier
		}
	}

	// Collators keep internal buffers and are not safe to share between goroutines.
	collator := collate.New(s.Locale, collate.IgnoreCase)
	field := func(bean *model.CoffeeBean) string { return bean.Name }

	if s.Field == SortByRoaster {
		field = func(bean *model.CoffeeBean) string { return bean.Roaster }
	}

	return func(a, b *model.CoffeeBean) int {
		return collator.CompareString(field(a), field(b)) * modifier
	}
}

func ParseSortField(value string) (SortField, error) {
	switch field := SortField(strings.ToLower(strings.TrimSpace(value))); field {
	case "":
		return SortByName, nil
	case SortByName, SortByRoaster, SortByRank:
		return field, nil
	default:
		return "", fmt.Errorf("%w: unknown sort field %q", ErrInvalidCriteria, value)
	}
}

func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: unknown sort direction %q", ErrInvalidCriteria, value)
	}
}

// ParseRank turns a rank filter value into a rank. "" and "all" mean no rank filter.
func ParseRank(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return 0, nil
	}

	rank, err := strconv.Atoi(value)
	if err != nil || rank < model.MinRank || rank > model.MaxRank {
		return 0, fmt.Errorf("%w: rank filter %q must be all or %d-%d", ErrInvalidCriteria, value, model.MinRank, model.MaxRank)
	}

	return rank, nil
}

// ParseLocale resolves a BCP 47 tag for string sorting. Empty means the root locale.
func ParseLocale(value string) (language.Tag, error) {
	if strings.TrimSpace(value) == "" {
		return language.Und, nil
	}

	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %w", ErrInvalidCriteria, value, err)
	}

	return tag, nil
}

// Roasters lists the distinct roasters in the order they first appear.
func Roasters(beans []*model.CoffeeBean) []string {
	roasters := make([]string, 0)
	seen := make(map[string]struct{})

	for _, bean := range beans {
		if _, ok := seen[bean.Roaster]; ok {
			continue
		}

		seen[bean.Roaster] = struct{}{}
		roasters = append(roasters, bean.Roaster)
	}

	return roasters
}

// Newest returns a copy of beans ordered by creation time, most recent first.
func Newest(beans []*model.CoffeeBean) []*model.CoffeeBean {
	result := slices.Clone(beans)

	slices.SortStableFunc(result, func(a, b *model.CoffeeBean) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result
}

// TopRated picks the best ranked beans, at most limit of them. When nothing reaches
// minRank every bean is a candidate. A limit of zero or less means no limit.
func TopRated(beans []*model.CoffeeBean, minRank, limit int) []*model.CoffeeBean {
	candidates := make([]*model.CoffeeBean, 0, len(beans))

	for _, bean := range beans {
		if bean.Rank >= minRank {
			candidates = append(candidates, bean)
		}
	}

	if len(candidates) == 0 {
		candidates = slices.Clone(beans)
	}

	slices.SortStableFunc(candidates, func(a, b *model.CoffeeBean) int {
		return b.Rank - a.Rank
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates
}
