package dto

// Request DTOs

type TriageRequest struct {
	Symptoms string `json:"symptoms" validate:"required,min=3"`
}

// Response DTOs

type TriageResponse struct {
	Severity     int    `json:"severity"`
	Response     string `json:"response"`
	Category     string `json:"category"`
	BetterPrompt string `json:"betterPrompt"`
}
