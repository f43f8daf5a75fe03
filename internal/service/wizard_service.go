// FILE: internal/service/wizard_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"harvestguard-be/internal/config"
	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/repository/contract"
)

// Step is one of the wizard pages the client should be showing.
type Step string

const (
	StepLocation  Step = "location"
	StepCrop      Step = "crop"
	StepDashboard Step = "dashboard"
)

var ErrUnsupportedCrop = errors.New("unsupported crop")

// StepFor computes the wizard step from store presence flags. It is the whole
// state machine: idempotent, re-entrant, and safe against deep links because
// every page-level read goes through it.
func StepFor(locationPresent, cropPresent bool) Step {
	switch {
	case locationPresent && cropPresent:
		return StepDashboard
	case locationPresent:
		return StepCrop
	default:
		return StepLocation
	}
}

type IWizardService interface {
	State(ctx context.Context) (*dto.WizardStateResponse, error)
	SelectCrop(ctx context.Context, crop string) (*dto.WizardStateResponse, error)
	Back(ctx context.Context, from string) (*dto.WizardStateResponse, error)
	ResetAll(ctx context.Context) (*dto.WizardStateResponse, error)
	Selection(ctx context.Context) (*dto.SelectionResponse, error)
	Crops() *dto.CropListResponse
}

type wizardService struct {
	selectionRepo contract.SelectionRepository
	defaults      config.DefaultCoordinates
}

func NewWizardService(selectionRepo contract.SelectionRepository, defaults config.DefaultCoordinates) IWizardService {
	return &wizardService{
		selectionRepo: selectionRepo,
		defaults:      defaults,
	}
}

// Selection reads the persisted selection. Malformed stored floats fall back
// to the configured default coordinates instead of failing the read.
func (s *wizardService) Selection(ctx context.Context) (*dto.SelectionResponse, error) {
	location, err := s.selectionRepo.Get(ctx, constant.KeySelectedLocation)
	if err != nil {
		return nil, err
	}
	crop, err := s.selectionRepo.Get(ctx, constant.KeySelectedCrop)
	if err != nil {
		return nil, err
	}

	lat := s.defaults.Latitude
	if raw, err := s.selectionRepo.Get(ctx, constant.KeyLatitude); err == nil && raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			lat = parsed
		}
	}
	lon := s.defaults.Longitude
	if raw, err := s.selectionRepo.Get(ctx, constant.KeyLongitude); err == nil && raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			lon = parsed
		}
	}

	return &dto.SelectionResponse{
		Location:  location,
		Latitude:  lat,
		Longitude: lon,
		Crop:      crop,
	}, nil
}

func (s *wizardService) State(ctx context.Context) (*dto.WizardStateResponse, error) {
	selection, err := s.Selection(ctx)
	if err != nil {
		return nil, err
	}

	activeTab, err := s.selectionRepo.Get(ctx, constant.KeyActiveTab)
	if err != nil {
		return nil, err
	}
	if activeTab == "" {
		activeTab = constant.TabRisks
	}

	return &dto.WizardStateResponse{
		Step:      string(StepFor(selection.Location != "", selection.Crop != "")),
		ActiveTab: activeTab,
		Selection: *selection,
	}, nil
}

func (s *wizardService) SelectCrop(ctx context.Context, crop string) (*dto.WizardStateResponse, error) {
	crop = strings.ToLower(strings.TrimSpace(crop))
	if !constant.IsSupportedCrop(crop) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCrop, crop)
	}
	if err := s.selectionRepo.Set(ctx, constant.KeySelectedCrop, crop); err != nil {
		return nil, err
	}
	return s.State(ctx)
}

// Back only changes which step the client displays. The store is untouched,
// so re-entering a later step restores the previously stored values.
func (s *wizardService) Back(ctx context.Context, from string) (*dto.WizardStateResponse, error) {
	state, err := s.State(ctx)
	if err != nil {
		return nil, err
	}

	switch Step(from) {
	case StepDashboard:
		state.Step = string(StepCrop)
	case StepCrop:
		state.Step = string(StepLocation)
	}
	return state, nil
}

// ResetAll clears the location and crop selection. Stored coordinates are
// deliberately left in place, matching the observed client behavior.
func (s *wizardService) ResetAll(ctx context.Context) (*dto.WizardStateResponse, error) {
	if err := s.selectionRepo.Remove(ctx, constant.KeySelectedLocation); err != nil {
		return nil, err
	}
	if err := s.selectionRepo.Remove(ctx, constant.KeySelectedCrop); err != nil {
		return nil, err
	}
	if err := s.selectionRepo.Remove(ctx, constant.KeyActiveTab); err != nil {
		return nil, err
	}
	return s.State(ctx)
}

func (s *wizardService) Crops() *dto.CropListResponse {
	crops := make([]dto.CropOption, 0, len(constant.SupportedCrops))
	for _, id := range constant.SupportedCrops {
		crops = append(crops, dto.CropOption{
			Id:   id,
			Name: strings.ToUpper(id[:1]) + id[1:],
		})
	}
	return &dto.CropListResponse{Crops: crops}
}
