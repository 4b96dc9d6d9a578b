package dto

type PlanResponse struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	BillingPeriod string   `json:"billing_period"`
	Cta           string   `json:"cta"`
	Badge         string   `json:"badge,omitempty"`
	IsMostPopular bool     `json:"is_most_popular"`
	Features      []string `json:"features"`
}
