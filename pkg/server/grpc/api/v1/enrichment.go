package apiv1

type BeanDetails struct {
	Origin              *string  `json:"origin,omitempty"`
	RoastLevel          *string  `json:"roastLevel,omitempty"`
	Notes               []string `json:"notes,omitempty"`
	RecommendedDose     *float64 `json:"recommendedDose,omitempty"`
	RecommendedYield    *float64 `json:"recommendedYield,omitempty"`
	RecommendedBrewTime *int     `json:"recommendedBrewTime,omitempty"`
	Temperature         *int     `json:"temperature,omitempty"`
	GrindSize           *int     `json:"grindSize,omitempty"`
	Price               *float64 `json:"price,omitempty"`
	Weight              *int     `json:"weight,omitempty"`
}

type Suggestion struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Roaster     string   `json:"roaster"`
	Origin      string   `json:"origin,omitempty"`
	RoastLevel  *string  `json:"roastLevel,omitempty"`
	Notes       []string `json:"notes"`
	Price       *float64 `json:"price,omitempty"`
	Weight      *int     `json:"weight,omitempty"`
	Description string   `json:"description,omitempty"`
}

type Preferences struct {
	RoastLevel string `json:"roastLevel"`
	Notes      string `json:"notes"`
	PriceRange string `json:"priceRange"`
}

// AutoPopulateRequest looks a bean up by roaster and name. ApiKey overrides and
// replaces the stored key. Calls sharing a RequestToken supersede each other.
type AutoPopulateRequest struct {
	Roaster      string `json:"roaster"`
	Name         string `json:"name"`
	ApiKey       string `json:"apiKey,omitempty"`
	RequestToken string `json:"requestToken,omitempty"`
}

func (x *AutoPopulateRequest) GetRoaster() string {
	if x != nil {
		return x.Roaster
	}

	return ""
}

func (x *AutoPopulateRequest) GetName() string {
	if x != nil {
		return x.Name
	}

	return ""
}

func (x *AutoPopulateRequest) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}

	return ""
}

func (x *AutoPopulateRequest) GetRequestToken() string {
	if x != nil {
		return x.RequestToken
	}

	return ""
}

// AutoPopulateResponse returns what was found twice: as details, and as the form
// updates those details translate to.
type AutoPopulateResponse struct {
	Details *BeanDetails `json:"details"`
	Updates *BeanUpdate  `json:"updates"`
}

type GetRecommendationsRequest struct {
	Type         string       `json:"type"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	ApiKey       string       `json:"apiKey,omitempty"`
	RequestToken string       `json:"requestToken,omitempty"`
}

func (x *GetRecommendationsRequest) GetType() string {
	if x != nil {
		return x.Type
	}

	return ""
}

func (x *GetRecommendationsRequest) GetPreferences() *Preferences {
	if x != nil {
		return x.Preferences
	}

	return nil
}

func (x *GetRecommendationsRequest) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}

	return ""
}

func (x *GetRecommendationsRequest) GetRequestToken() string {
	if x != nil {
		return x.RequestToken
	}

	return ""
}

type GetRecommendationsResponse struct {
	Recommendations []*Suggestion `json:"recommendations"`
}

type GetAPIKeyStatusRequest struct{}

type GetAPIKeyStatusResponse struct {
	Configured bool `json:"configured"`
}

type SaveAPIKeyRequest struct {
	ApiKey string `json:"apiKey"`
}

func (x *SaveAPIKeyRequest) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}

	return ""
}

type SaveAPIKeyResponse struct {
	Configured bool `json:"configured"`
}
