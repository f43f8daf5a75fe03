// FILE: internal/dto/dashboard_dto.go
package dto

type RiskFactorResponse struct {
	Name        string `json:"name"`
	Level       int    `json:"level"` // normalized 0..100
	Description string `json:"description"`
	Color       string `json:"color"` // "low" | "medium" | "high"
}

type RisksResponse struct {
	Crop     string               `json:"crop"`
	Location string               `json:"location"`
	Risks    []RiskFactorResponse `json:"risks"`
}

type ProductFeedbackResponse struct {
	Helpful *bool  `json:"helpful"`
	Comment string `json:"comment,omitempty"`
}

type RecommendedProductResponse struct {
	Id                string                   `json:"id"`
	Name              string                   `json:"name"`
	Type              string                   `json:"type"`
	Description       string                   `json:"description"`
	Benefits          []string                 `json:"benefits"`
	ApplicationTiming string                   `json:"application_timing"`
	EfficacyScore     int                      `json:"efficacy_score"`
	Link              string                   `json:"link,omitempty"`
	UserFeedback      *ProductFeedbackResponse `json:"user_feedback,omitempty"`
}

type RecommendationsResponse struct {
	Crop     string                       `json:"crop"`
	Products []RecommendedProductResponse `json:"products"`
}

type ProductFeedbackRequest struct {
	Helpful *bool  `json:"helpful" validate:"required"`
	Comment string `json:"comment"`
}

type ProductApplication struct {
	Date    string `json:"date"`
	Product string `json:"product"`
}

type TrackerResponse struct {
	Crop            string               `json:"crop"`
	Dates           []string             `json:"dates"`
	Yield           []float64            `json:"yield"` // kg/ha
	ProductsApplied []ProductApplication `json:"products_applied"`
}
