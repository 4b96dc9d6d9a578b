package dto

import "wearly-be/pkg/catalog"

type TryOnRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	ProductId string `json:"product_id" validate:"required"`
}

type TryOnResponse struct {
	TryOnImageURL string          `json:"try_on_image_url"`
	Message       string          `json:"message,omitempty"`
	Product       catalog.Product `json:"product"`
}
