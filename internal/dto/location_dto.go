// FILE: internal/dto/location_dto.go
package dto

// DetectLocationRequest carries either the device coordinates or the reason
// the client could not obtain them ("denied" | "unsupported").
type DetectLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Reason    string   `json:"reason,omitempty"`
}

type ManualLocationRequest struct {
	Query string `json:"query" validate:"required"`
}

type ConfirmLocationRequest struct {
	Location string `json:"location" validate:"required"`
}

// PendingLocationResponse is the proposed location awaiting user confirmation.
// It is never persisted.
type PendingLocationResponse struct {
	Location string `json:"location"`
	Source   string `json:"source"` // "detected" | "manual"
}
