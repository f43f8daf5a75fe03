// FILE: internal/service/tracker_service.go
package service

import (
	"context"

	"harvestguard-be/internal/dto"
)

type ITrackerService interface {
	GetTracker(ctx context.Context) (*dto.TrackerResponse, error)
}

type trackerService struct {
	wizardService IWizardService
}

func NewTrackerService(wizardService IWizardService) ITrackerService {
	return &trackerService{wizardService: wizardService}
}

// Seasonal performance data. Static for now; a future revision should source
// this from the yield-forecast endpoint once it returns real data.
var forecastDates = []string{
	"2025-01-01", "2025-02-01", "2025-03-01", "2025-04-01",
	"2025-05-01", "2025-06-01", "2025-07-01", "2025-08-01",
	"2025-09-01", "2025-10-01", "2025-11-01", "2025-12-01",
}

var forecastYield = []float64{5, 7, 20, 25, 10, 35, 37, 42, 32, 35, 30, 28}

var productApplications = []dto.ProductApplication{
	{Date: "2025-02-01", Product: "Stress Buster"},
	{Date: "2025-05-01", Product: "Nutrient Booster"},
	{Date: "2025-09-01", Product: "Stress Buster"},
}

func (s *trackerService) GetTracker(ctx context.Context) (*dto.TrackerResponse, error) {
	selection, err := s.wizardService.Selection(ctx)
	if err != nil {
		return nil, err
	}
	if selection.Crop == "" {
		return nil, ErrSelectionIncomplete
	}

	return &dto.TrackerResponse{
		Crop:            selection.Crop,
		Dates:           forecastDates,
		Yield:           forecastYield,
		ProductsApplied: productApplications,
	}, nil
}
