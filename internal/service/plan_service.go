package service

import (
	"context"

	"wearly-be/internal/dto"
)

type IPlanService interface {
	GetAllPlans(ctx context.Context) []*dto.PlanResponse
}

type planService struct{}

func NewPlanService() IPlanService {
	return &planService{}
}

// GetAllPlans returns the subscription tiers shown on the pricing page. The
// tiers are static copy; there is no billing behind them.
func (s *planService) GetAllPlans(ctx context.Context) []*dto.PlanResponse {
	return []*dto.PlanResponse{
		{
			Name:          "Free",
			Slug:          "free",
			Price:         0,
			Currency:      "EUR",
			BillingPeriod: "month",
			Cta:           "Try Free",
			Features: []string{
				"Limited access to outfit recommendations",
				"Limited number of product searches",
				"Basic virtual try-on (slow generation)",
				"Limited wardrobe memory",
				"Limited access to style insights",
			},
		},
		{
			Name:          "Plus",
			Slug:          "plus",
			Price:         9.99,
			Currency:      "EUR",
			BillingPeriod: "month",
			Cta:           "Get Plus",
			Badge:         "Everything in Free and:",
			IsMostPopular: true,
			Features: []string{
				"Extended number of product searches",
				"Faster and higher-quality virtual try-on",
				"Access to more stores and brands",
				"Extended outfit recommendations (per item)",
				"Unlimited wishlists and saved looks",
				"Priority response speed",
			},
		},
		{
			Name:          "Pro",
			Slug:          "pro",
			Price:         23,
			Currency:      "EUR",
			BillingPeriod: "month",
			Cta:           "Get Pro",
			Badge:         "Everything in Plus and:",
			Features: []string{
				"Advanced virtual try-on with poses and backgrounds",
				"Unlimited product searches",
				"Extended wardrobe memory & personalization",
				"Deeper AI style analysis and event-based outfits",
				"Complete look builder (full outfit generation)",
				"Early access to new features",
				"Creator tools (HD exports, social-ready formats)",
			},
		},
		{
			Name:          "Business",
			Slug:          "business",
			Price:         79,
			Currency:      "EUR",
			BillingPeriod: "month",
			Cta:           "Get Business",
			Badge:         "Everything in Pro and:",
			Features: []string{
				"Team dashboard & multi-user management",
				"Wearly API access (product search + try-on)",
				"Advanced scraping across partner stores",
				"Trend, size, and customer preference analytics",
				"E-commerce integrations (Shopify, WooCommerce)",
				"Priority support & SLAs",
				"Custom branding (logo, colors, domain)",
			},
		},
	}
}
