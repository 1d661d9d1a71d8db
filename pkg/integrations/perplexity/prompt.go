package perplexity

import (
	"fmt"
	"strings"

	"droscher.com/BeanJournal/pkg/collection"
	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/model"
)

const (
	journalMinRank = 4
	journalLimit   = 10
)

const detailsSystemPrompt = `You are a specialty coffee expert. Answer with a single JSON object and nothing else.
Use these keys when you know the value and leave the key out otherwise:
"origin" (string), "roastLevel" (one of Light, Medium-Light, Medium, Medium-Dark, Dark),
"notes" (array of short flavour notes), "recommendedDose" (grams), "recommendedYield" (ml),
"recommendedBrewTime" (seconds), "temperature" (celsius), "grindSize" (number),
"price" (number), "weight" (grams in the bag).`

const recommendationsSystemPrompt = `You are a specialty coffee expert. Answer with a JSON array and nothing else.
Each element is an object with "name", "roaster", "origin", "roastLevel"
(one of Light, Medium-Light, Medium, Medium-Dark, Dark), "notes" (array of strings),
"price" (number), "weight" (grams) and "description" (one sentence). Suggest currently
available beans only.`

func detailsPrompt(roaster, name string) string {
	return fmt.Sprintf("Find the details of the coffee %q roasted by %q, including the roaster's espresso brew recipe if published.", name, roaster)
}

func recommendationPrompt(request integrations.RecommendationRequest) string {
	if request.Type == integrations.RecommendByPreferences {
		return fmt.Sprintf(
			"Recommend 5 coffee beans for someone who likes a %s roast with notes of %s, in the price range %s.",
			request.Preferences.RoastLevel, request.Preferences.Notes, request.Preferences.PriceRange,
		)
	}

	favourites := collection.TopRated(request.Journal, journalMinRank, journalLimit)
	if len(favourites) == 0 {
		return "Recommend 5 popular specialty coffee beans for someone starting a coffee journal."
	}

	var builder strings.Builder

	builder.WriteString("Recommend 5 coffee beans similar to these favourites, excluding the ones listed:\n")

	for _, bean := range favourites {
		fmt.Fprintf(&builder, "- %s by %s (%s, %s roast, rated %d/%d)", bean.Name, bean.Roaster, bean.Origin, bean.RoastLevel, bean.Rank, model.MaxRank)

		if len(bean.Notes) > 0 {
			fmt.Fprintf(&builder, ", notes: %s", strings.Join(bean.Notes, ", "))
		}

		builder.WriteString("\n")
	}

	return builder.String()
}
