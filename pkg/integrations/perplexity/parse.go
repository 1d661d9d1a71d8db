package perplexity

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/antonholmquist/jason"
	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"droscher.com/BeanJournal/pkg/model"
)

var (
	errNoJSON = errors.New("no JSON found in reply")

	leadingNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// parseDetails reads whatever bean details the reply contains. Missing or malformed
// fields are left nil.
func parseDetails(content string) (*model.BeanDetails, error) {
	raw, err := extractJSON(content, '{')
	if err != nil {
		return nil, err
	}

	obj, err := jason.NewObjectFromBytes([]byte(raw))
	if err != nil {
		return nil, err
	}

	details := &model.BeanDetails{
		RoastLevel:          roastField(obj, "roastLevel"),
		Notes:               notesField(obj, "notes"),
		RecommendedDose:     floatField(obj, "recommendedDose"),
		RecommendedYield:    floatField(obj, "recommendedYield"),
		RecommendedBrewTime: intField(obj, "recommendedBrewTime"),
		Temperature:         intField(obj, "temperature"),
		GrindSize:           intField(obj, "grindSize"),
		Price:               floatField(obj, "price"),
		Weight:              intField(obj, "weight"),
	}

	if origin, ok := stringField(obj, "origin"); ok {
		details.Origin = &origin
	}

	return details, nil
}

// parseSuggestions accepts a bare array, an object wrapping one, or a single object.
// Entries without a name or roaster are skipped.
func parseSuggestions(content string) ([]model.Suggestion, error) {
	raw, err := extractJSON(content, '[', '{')
	if err != nil {
		return nil, err
	}

	var entries []*jason.Object

	if strings.HasPrefix(raw, "[") {
		value, err := jason.NewValueFromBytes([]byte(raw))
		if err != nil {
			return nil, err
		}

		entries = objects(value)
	} else {
		obj, err := jason.NewObjectFromBytes([]byte(raw))
		if err != nil {
			return nil, err
		}

		entries = []*jason.Object{obj}

		for _, key := range []string{"recommendations", "beans", "coffees"} {
			if value, err := obj.GetValue(key); err == nil {
				entries = objects(value)

				break
			}
		}
	}

	suggestions := make([]model.Suggestion, 0, len(entries))

	for _, entry := range entries {
		name, hasName := stringField(entry, "name")
		roaster, hasRoaster := stringField(entry, "roaster")

		if !hasName || !hasRoaster {
			continue
		}

		suggestion := model.Suggestion{
			ID:         uuid.NewString(),
			Name:       name,
			Roaster:    roaster,
			RoastLevel: roastField(entry, "roastLevel"),
			Notes:      model.NormalizeNotes(notesField(entry, "notes")),
			Price:      floatField(entry, "price"),
			Weight:     intField(entry, "weight"),
		}

		suggestion.Origin, _ = stringField(entry, "origin")
		suggestion.Description, _ = stringField(entry, "description")

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

func objects(value *jason.Value) []*jason.Object {
	values, err := value.Array()
	if err != nil {
		return nil
	}

	result := make([]*jason.Object, 0, len(values))

	for _, item := range values {
		if obj, err := item.Object(); err == nil {
			result = append(result, obj)
		}
	}

	return result
}

// extractJSON drops markdown code fences and returns the first balanced JSON object
// or array starting with one of the given opening brackets.
func extractJSON(content string, opening ...byte) (string, error) {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")

	start := strings.IndexAny(content, string(opening))
	if start < 0 {
		return "", errNoJSON
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(content); i++ {
		char := content[i]

		switch {
		case escaped:
			escaped = false
		case inString && char == '\\':
			escaped = true
		case char == '"':
			inString = !inString
		case inString:
		case char == '{' || char == '[':
			depth++
		case char == '}' || char == ']':
			depth--
			if depth == 0 {
				return content[start : i+1], nil
			}
		}
	}

	return "", errNoJSON
}

func stringField(obj *jason.Object, key string) (string, bool) {
	value, err := obj.GetString(key)
	if err != nil {
		return "", false
	}

	value = strings.TrimSpace(value)

	return value, value != ""
}

// floatField reads numbers sent either as JSON numbers or as text such as "18g" or "$21.50".
func floatField(obj *jason.Object, key string) *float64 {
	value, err := obj.GetValue(key)
	if err != nil {
		return nil
	}

	if number, err := value.Float64(); err == nil {
		return pointy.Float64(number)
	}

	text, err := value.String()
	if err != nil {
		return nil
	}

	match := leadingNumber.FindString(text)
	if match == "" {
		return nil
	}

	number, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}

	return pointy.Float64(number)
}

func intField(obj *jason.Object, key string) *int {
	number := floatField(obj, key)
	if number == nil {
		return nil
	}

	return pointy.Int(int(math.Round(*number)))
}

// notesField accepts an array of strings or one comma separated string.
func notesField(obj *jason.Object, key string) []string {
	value, err := obj.GetValue(key)
	if err != nil {
		return nil
	}

	var notes []string

	if items, err := value.Array(); err == nil {
		for _, item := range items {
			if note, err := item.String(); err == nil {
				notes = append(notes, note)
			}
		}
	} else if text, err := value.String(); err == nil {
		notes = strings.Split(text, ",")
	}

	notes = model.NormalizeNotes(notes)
	if len(notes) == 0 {
		return nil
	}

	return notes
}

func roastField(obj *jason.Object, key string) *model.RoastLevel {
	value, ok := stringField(obj, key)
	if !ok {
		return nil
	}

	level, ok := model.ParseRoastLevel(value)
	if !ok {
		return nil
	}

	return &level
}
