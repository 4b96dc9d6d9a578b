package dto

import "wearly-be/pkg/catalog"

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

// ChatResponse always carries a usable reply and product list. Simulated is
// set when the assistant could not be reached and the products are locally
// generated substitutes, so the client can label them as such.
type ChatResponse struct {
	Reply     string            `json:"reply"`
	SessionId string            `json:"session_id"`
	Simulated bool              `json:"simulated"`
	Products  []catalog.Product `json:"products"`
}
