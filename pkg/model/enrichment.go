package model

// Displayable is the capability set shared by journal entries and suggestions.
type Displayable interface {
	GetID() string
	GetName() string
	GetRoaster() string
	GetNotes() []string
}

// BeanDetails is a best-effort guess at a bean's details. Fields that could not be
// determined are nil.
type BeanDetails struct {
	Origin              *string     `json:"origin,omitempty"`
	RoastLevel          *RoastLevel `json:"roastLevel,omitempty"`
	Notes               []string    `json:"notes,omitempty"`
	RecommendedDose     *float64    `json:"recommendedDose,omitempty"`
	RecommendedYield    *float64    `json:"recommendedYield,omitempty"`
	RecommendedBrewTime *int        `json:"recommendedBrewTime,omitempty"`
	Temperature         *int        `json:"temperature,omitempty"`
	GrindSize           *int        `json:"grindSize,omitempty"`
	Price               *float64    `json:"price,omitempty"`
	Weight              *int        `json:"weight,omitempty"`
}

// Patch converts the details into the form fields they fill in.
func (d BeanDetails) Patch() BeanPatch {
	patch := BeanPatch{
		Origin:      d.Origin,
		RoastLevel:  d.RoastLevel,
		GramsIn:     d.RecommendedDose,
		MlOut:       d.RecommendedYield,
		BrewTime:    d.RecommendedBrewTime,
		Temperature: d.Temperature,
		GrindSize:   d.GrindSize,
		Price:       d.Price,
		Weight:      d.Weight,
	}

	if len(d.Notes) > 0 {
		notes := NormalizeNotes(d.Notes)
		patch.Notes = &notes
	}

	return patch
}

// Suggestion is a recommended bean. It is never persisted.
type Suggestion struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Roaster     string      `json:"roaster"`
	Origin      string      `json:"origin,omitempty"`
	RoastLevel  *RoastLevel `json:"roastLevel,omitempty"`
	Notes       []string    `json:"notes"`
	Price       *float64    `json:"price,omitempty"`
	Weight      *int        `json:"weight,omitempty"`
	Description string      `json:"description,omitempty"`
}

func (s *Suggestion) GetID() string      { return s.ID }
func (s *Suggestion) GetName() string    { return s.Name }
func (s *Suggestion) GetRoaster() string { return s.Roaster }
func (s *Suggestion) GetNotes() []string { return s.Notes }
