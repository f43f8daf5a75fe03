// FILE: internal/dto/wizard_dto.go
package dto

type SelectionResponse struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Crop      string  `json:"crop"`
}

type WizardStateResponse struct {
	Step      string            `json:"step"` // "location" | "crop" | "dashboard"
	ActiveTab string            `json:"active_tab"`
	Selection SelectionResponse `json:"selection"`
}

type SelectCropRequest struct {
	Crop string `json:"crop" validate:"required"`
}

type BackRequest struct {
	From string `json:"from" validate:"required,oneof=crop dashboard"`
}

type CropListResponse struct {
	Crops []CropOption `json:"crops"`
}

type CropOption struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
