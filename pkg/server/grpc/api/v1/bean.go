package apiv1

import "time"

// Bean is the wire form of a journal entry. Brew and purchase parameters are pointers
// so a missing field can be told apart from a zero.
type Bean struct {
	Id            string     `json:"id,omitempty"`
	Roaster       string     `json:"roaster"`
	Name          string     `json:"name"`
	Origin        string     `json:"origin"`
	RoastLevel    string     `json:"roastLevel"`
	Notes         []string   `json:"notes"`
	GeneralNotes  string     `json:"generalNotes,omitempty"`
	Rank          *int       `json:"rank"`
	GramsIn       *float64   `json:"gramsIn"`
	MlOut         *float64   `json:"mlOut"`
	BrewTime      *int       `json:"brewTime"`
	Temperature   *int       `json:"temperature"`
	Price         *float64   `json:"price"`
	Weight        *int       `json:"weight"`
	GrindSize     *int       `json:"grindSize"`
	OrderAgain    bool       `json:"orderAgain"`
	PurchaseCount *int       `json:"purchaseCount,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// BeanUpdate carries only the fields to change.
type BeanUpdate struct {
	Roaster       *string   `json:"roaster,omitempty"`
	Name          *string   `json:"name,omitempty"`
	Origin        *string   `json:"origin,omitempty"`
	RoastLevel    *string   `json:"roastLevel,omitempty"`
	Notes         *[]string `json:"notes,omitempty"`
	GeneralNotes  *string   `json:"generalNotes,omitempty"`
	Rank          *int      `json:"rank,omitempty"`
	GramsIn       *float64  `json:"gramsIn,omitempty"`
	MlOut         *float64  `json:"mlOut,omitempty"`
	BrewTime      *int      `json:"brewTime,omitempty"`
	Temperature   *int      `json:"temperature,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	Weight        *int      `json:"weight,omitempty"`
	GrindSize     *int      `json:"grindSize,omitempty"`
	OrderAgain    *bool     `json:"orderAgain,omitempty"`
	PurchaseCount *int      `json:"purchaseCount,omitempty"`
}

type ListBeansRequest struct {
	Roaster       string `json:"roaster,omitempty"`
	Rank          string `json:"rank,omitempty"`
	Query         string `json:"query,omitempty"`
	SortField     string `json:"sortField,omitempty"`
	SortDirection string `json:"sortDirection,omitempty"`
}

func (x *ListBeansRequest) GetRoaster() string {
	if x != nil {
		return x.Roaster
	}

	return ""
}

func (x *ListBeansRequest) GetRank() string {
	if x != nil {
		return x.Rank
	}

	return ""
}

func (x *ListBeansRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}

	return ""
}

func (x *ListBeansRequest) GetSortField() string {
	if x != nil {
		return x.SortField
	}

	return ""
}

func (x *ListBeansRequest) GetSortDirection() string {
	if x != nil {
		return x.SortDirection
	}

	return ""
}

type ListBeansResponse struct {
	Beans    []*Bean  `json:"beans"`
	Roasters []string `json:"roasters"`
	Total    int      `json:"total"`
}

type GetBeanRequest struct {
	Id string `json:"id"`
}

func (x *GetBeanRequest) GetId() string {
	if x != nil {
		return x.Id
	}

	return ""
}

type GetBeanResponse struct {
	Bean *Bean `json:"bean"`
}

type AddBeanRequest struct {
	Bean *Bean `json:"bean"`
}

func (x *AddBeanRequest) GetBean() *Bean {
	if x != nil {
		return x.Bean
	}

	return nil
}

type AddBeanResponse struct {
	Bean *Bean `json:"bean"`
}

type UpdateBeanRequest struct {
	Id      string      `json:"id"`
	Updates *BeanUpdate `json:"updates"`
}

func (x *UpdateBeanRequest) GetId() string {
	if x != nil {
		return x.Id
	}

	return ""
}

func (x *UpdateBeanRequest) GetUpdates() *BeanUpdate {
	if x != nil {
		return x.Updates
	}

	return nil
}

type UpdateBeanResponse struct {
	Bean *Bean `json:"bean"`
}

type DeleteBeanRequest struct {
	Id string `json:"id"`
}

func (x *DeleteBeanRequest) GetId() string {
	if x != nil {
		return x.Id
	}

	return ""
}

type DeleteBeanResponse struct{}

type RecordPurchaseRequest struct {
	Id string `json:"id"`
}

func (x *RecordPurchaseRequest) GetId() string {
	if x != nil {
		return x.Id
	}

	return ""
}

type RecordPurchaseResponse struct {
	Bean *Bean `json:"bean"`
}

type ListPurchaseHistoryRequest struct{}

type ListPurchaseHistoryResponse struct {
	Beans []*Bean `json:"beans"`
}
