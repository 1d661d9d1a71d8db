package model

import (
	"strings"

	"go.uber.org/multierr"
	"gorm.io/datatypes"
)

// BeanPatch is a partial update of a bean. Nil fields are left untouched.
type BeanPatch struct {
	Roaster       *string     `json:"roaster,omitempty"`
	Name          *string     `json:"name,omitempty"`
	Origin        *string     `json:"origin,omitempty"`
	RoastLevel    *RoastLevel `json:"roastLevel,omitempty"`
	Notes         *[]string   `json:"notes,omitempty"`
	GeneralNotes  *string     `json:"generalNotes,omitempty"`
	Rank          *int        `json:"rank,omitempty"`
	GramsIn       *float64    `json:"gramsIn,omitempty"`
	MlOut         *float64    `json:"mlOut,omitempty"`
	BrewTime      *int        `json:"brewTime,omitempty"`
	Temperature   *int        `json:"temperature,omitempty"`
	Price         *float64    `json:"price,omitempty"`
	Weight        *int        `json:"weight,omitempty"`
	GrindSize     *int        `json:"grindSize,omitempty"`
	OrderAgain    *bool       `json:"orderAgain,omitempty"`
	PurchaseCount *int        `json:"purchaseCount,omitempty"`
}

func (p BeanPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

func (p BeanPatch) Validate() error {
	var errs error

	if p.Roaster != nil {
		errs = multierr.Append(errs, requireText("roaster", *p.Roaster))
	}

	if p.Name != nil {
		errs = multierr.Append(errs, requireText("name", *p.Name))
	}

	if p.Origin != nil {
		errs = multierr.Append(errs, requireText("origin", *p.Origin))
	}

	if p.RoastLevel != nil {
		errs = multierr.Append(errs, validateRoastLevel(*p.RoastLevel))
	}

	if p.Rank != nil {
		errs = multierr.Append(errs, validateRank(*p.Rank))
	}

	return errs
}

// Columns maps the supplied fields to their column names.
//
//nolint:cyclop // one branch per optional field
func (p BeanPatch) Columns() map[string]any {
	columns := make(map[string]any)

	if p.Roaster != nil {
		columns["roaster"] = strings.TrimSpace(*p.Roaster)
	}

	if p.Name != nil {
		columns["name"] = strings.TrimSpace(*p.Name)
	}

	if p.Origin != nil {
		columns["origin"] = strings.TrimSpace(*p.Origin)
	}

	if p.RoastLevel != nil {
		columns["roast_level"] = *p.RoastLevel
	}

	if p.Notes != nil {
		columns["notes"] = datatypes.JSONSlice[string](NormalizeNotes(*p.Notes))
	}

	if p.GeneralNotes != nil {
		columns["general_notes"] = *p.GeneralNotes
	}

	if p.Rank != nil {
		columns["rank"] = *p.Rank
	}

	if p.GramsIn != nil {
		columns["grams_in"] = *p.GramsIn
	}

	if p.MlOut != nil {
		columns["ml_out"] = *p.MlOut
	}

	if p.BrewTime != nil {
		columns["brew_time"] = *p.BrewTime
	}

	if p.Temperature != nil {
		columns["temperature"] = *p.Temperature
	}

	if p.Price != nil {
		columns["price"] = *p.Price
	}

	if p.Weight != nil {
		columns["weight"] = *p.Weight
	}

	if p.GrindSize != nil {
		columns["grind_size"] = *p.GrindSize
	}

	if p.OrderAgain != nil {
		columns["order_again"] = *p.OrderAgain
	}

	if p.PurchaseCount != nil {
		columns["purchase_count"] = *p.PurchaseCount
	}

	return columns
}

// ApplyTo merges the supplied fields into bean.
//
//nolint:cyclop // one branch per optional field
func (p BeanPatch) ApplyTo(bean *CoffeeBean) {
	if p.Roaster != nil {
		bean.Roaster = strings.TrimSpace(*p.Roaster)
	}

	if p.Name != nil {
		bean.Name = strings.TrimSpace(*p.Name)
	}

	if p.Origin != nil {
		bean.Origin = strings.TrimSpace(*p.Origin)
	}

	if p.RoastLevel != nil {
		bean.RoastLevel = *p.RoastLevel
	}

	if p.Notes != nil {
		bean.Notes = NormalizeNotes(*p.Notes)
	}

	if p.GeneralNotes != nil {
		bean.GeneralNotes = *p.GeneralNotes
	}

	if p.Rank != nil {
		bean.Rank = *p.Rank
	}

	if p.GramsIn != nil {
		bean.GramsIn = *p.GramsIn
	}

	if p.MlOut != nil {
		bean.MlOut = *p.MlOut
	}

	if p.BrewTime != nil {
		bean.BrewTime = *p.BrewTime
	}

	if p.Temperature != nil {
		bean.Temperature = *p.Temperature
	}

	if p.Price != nil {
		bean.Price = *p.Price
	}

	if p.Weight != nil {
		bean.Weight = *p.Weight
	}

	if p.GrindSize != nil {
		bean.GrindSize = *p.GrindSize
	}

	if p.OrderAgain != nil {
		bean.OrderAgain = *p.OrderAgain
	}

	if p.PurchaseCount != nil {
		bean.PurchaseCount = *p.PurchaseCount
	}
}
