package grpc

import (
	"fmt"

	"go.openly.dev/pointy"
	"go.uber.org/multierr"

	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/model"
	api "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
)

func BeansFromModel(beans []*model.CoffeeBean) []*api.Bean {
	pbBeans := make([]*api.Bean, 0, len(beans))

	for _, bean := range beans {
		pbBeans = append(pbBeans, BeanFromModel(bean))
	}

	return pbBeans
}

func BeanFromModel(bean *model.CoffeeBean) *api.Bean {
	notes := make([]string, 0, len(bean.Notes))
	notes = append(notes, bean.Notes...)

	pbBean := api.Bean{
		Id:            bean.ID,
		Roaster:       bean.Roaster,
		Name:          bean.Name,
		Origin:        bean.Origin,
		RoastLevel:    string(bean.RoastLevel),
		Notes:         notes,
		GeneralNotes:  bean.GeneralNotes,
		Rank:          pointy.Int(bean.Rank),
		GramsIn:       pointy.Float64(bean.GramsIn),
		MlOut:         pointy.Float64(bean.MlOut),
		BrewTime:      pointy.Int(bean.BrewTime),
		Temperature:   pointy.Int(bean.Temperature),
		Price:         pointy.Float64(bean.Price),
		Weight:        pointy.Int(bean.Weight),
		GrindSize:     pointy.Int(bean.GrindSize),
		OrderAgain:    bean.OrderAgain,
		PurchaseCount: pointy.Int(bean.PurchaseCount),
	}

	if !bean.CreatedAt.IsZero() {
		createdAt := bean.CreatedAt
		pbBean.CreatedAt = &createdAt
	}

	return &pbBean
}

// BeanToModel converts a bean about to be inserted. Every brew and purchase parameter
// must be present; validation of the values themselves is left to the repository.
func BeanToModel(pbBean *api.Bean) (model.CoffeeBean, error) {
	if pbBean == nil {
		return model.CoffeeBean{}, fmt.Errorf("%w: bean is required", model.ErrValidation)
	}

	var missing error

	require := func(field string, present bool) {
		if !present {
			missing = multierr.Append(missing, fmt.Errorf("%w: %s is required", model.ErrValidation, field))
		}
	}

	require("rank", pbBean.Rank != nil)
	require("gramsIn", pbBean.GramsIn != nil)
	require("mlOut", pbBean.MlOut != nil)
	require("brewTime", pbBean.BrewTime != nil)
	require("temperature", pbBean.Temperature != nil)
	require("price", pbBean.Price != nil)
	require("weight", pbBean.Weight != nil)
	require("grindSize", pbBean.GrindSize != nil)

	if missing != nil {
		return model.CoffeeBean{}, missing
	}

	bean := model.CoffeeBean{
		Roaster:      pbBean.Roaster,
		Name:         pbBean.Name,
		Origin:       pbBean.Origin,
		RoastLevel:   roastLevelToModel(pbBean.RoastLevel),
		Notes:        pbBean.Notes,
		GeneralNotes: pbBean.GeneralNotes,
		Rank:         *pbBean.Rank,
		GramsIn:      *pbBean.GramsIn,
		MlOut:        *pbBean.MlOut,
		BrewTime:     *pbBean.BrewTime,
		Temperature:  *pbBean.Temperature,
		Price:        *pbBean.Price,
		Weight:       *pbBean.Weight,
		GrindSize:    *pbBean.GrindSize,
		OrderAgain:   pbBean.OrderAgain,
	}

	if pbBean.PurchaseCount != nil {
		bean.PurchaseCount = *pbBean.PurchaseCount
	}

	return bean, nil
}

func BeanUpdateToModel(update *api.BeanUpdate) model.BeanPatch {
	if update == nil {
		return model.BeanPatch{}
	}

	patch := model.BeanPatch{
		Roaster:       update.Roaster,
		Name:          update.Name,
		Origin:        update.Origin,
		Notes:         update.Notes,
		GeneralNotes:  update.GeneralNotes,
		Rank:          update.Rank,
		GramsIn:       update.GramsIn,
		MlOut:         update.MlOut,
		BrewTime:      update.BrewTime,
		Temperature:   update.Temperature,
		Price:         update.Price,
		Weight:        update.Weight,
		GrindSize:     update.GrindSize,
		OrderAgain:    update.OrderAgain,
		PurchaseCount: update.PurchaseCount,
	}

	if update.RoastLevel != nil {
		level := roastLevelToModel(*update.RoastLevel)
		patch.RoastLevel = &level
	}

	return patch
}

func BeanUpdateFromModel(patch model.BeanPatch) *api.BeanUpdate {
	update := api.BeanUpdate{
		Roaster:       patch.Roaster,
		Name:          patch.Name,
		Origin:        patch.Origin,
		Notes:         patch.Notes,
		GeneralNotes:  patch.GeneralNotes,
		Rank:          patch.Rank,
		GramsIn:       patch.GramsIn,
		MlOut:         patch.MlOut,
		BrewTime:      patch.BrewTime,
		Temperature:   patch.Temperature,
		Price:         patch.Price,
		Weight:        patch.Weight,
		GrindSize:     patch.GrindSize,
		OrderAgain:    patch.OrderAgain,
		PurchaseCount: patch.PurchaseCount,
	}

	if patch.RoastLevel != nil {
		update.RoastLevel = pointy.String(string(*patch.RoastLevel))
	}

	return &update
}

func DetailsFromModel(details *model.BeanDetails) *api.BeanDetails {
	pbDetails := api.BeanDetails{
		Origin:              details.Origin,
		Notes:               details.Notes,
		RecommendedDose:     details.RecommendedDose,
		RecommendedYield:    details.RecommendedYield,
		RecommendedBrewTime: details.RecommendedBrewTime,
		Temperature:         details.Temperature,
		GrindSize:           details.GrindSize,
		Price:               details.Price,
		Weight:              details.Weight,
	}

	if details.RoastLevel != nil {
		pbDetails.RoastLevel = pointy.String(string(*details.RoastLevel))
	}

	return &pbDetails
}

func SuggestionsFromModel(suggestions []model.Suggestion) []*api.Suggestion {
	pbSuggestions := make([]*api.Suggestion, 0, len(suggestions))

	for _, suggestion := range suggestions {
		pbSuggestion := api.Suggestion{
			Id:          suggestion.ID,
			Name:        suggestion.Name,
			Roaster:     suggestion.Roaster,
			Origin:      suggestion.Origin,
			Notes:       suggestion.Notes,
			Price:       suggestion.Price,
			Weight:      suggestion.Weight,
			Description: suggestion.Description,
		}

		if suggestion.RoastLevel != nil {
			pbSuggestion.RoastLevel = pointy.String(string(*suggestion.RoastLevel))
		}

		if pbSuggestion.Notes == nil {
			pbSuggestion.Notes = []string{}
		}

		pbSuggestions = append(pbSuggestions, &pbSuggestion)
	}

	return pbSuggestions
}

func PreferencesToModel(preferences *api.Preferences) integrations.Preferences {
	if preferences == nil {
		return integrations.Preferences{}
	}

	return integrations.Preferences{
		RoastLevel: preferences.RoastLevel,
		Notes:      preferences.Notes,
		PriceRange: preferences.PriceRange,
	}
}

// roastLevelToModel accepts loosely written levels. Anything unrecognised is passed
// through as is so validation can name it.
func roastLevelToModel(value string) model.RoastLevel {
	if level, ok := model.ParseRoastLevel(value); ok {
		return level
	}

	return model.RoastLevel(value)
}
