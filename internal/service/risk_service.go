// FILE: internal/service/risk_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/pkg/logger"
	"harvestguard-be/pkg/events"
)

var (
	ErrLocationNotAvailable = errors.New("location not available")
	ErrSelectionIncomplete  = errors.New("crop not selected")
)

type IRiskService interface {
	GetRisks(ctx context.Context) (*dto.RisksResponse, error)
}

type riskService struct {
	riskAPIBaseURL string
	wizardService  IWizardService
	publisher      IPublisherService
	logger         logger.ILogger
}

func NewRiskService(riskAPIBaseURL string, wizardService IWizardService, publisher IPublisherService, log logger.ILogger) IRiskService {
	return &riskService{
		riskAPIBaseURL: riskAPIBaseURL,
		wizardService:  wizardService,
		publisher:      publisher,
		logger:         log,
	}
}

// riskResponse mirrors the risk service payload. Pointers distinguish missing
// fields, which normalize to risk level 0.
type riskResponse struct {
	DaytimeHeatStress   *float64 `json:"daytime_heat_stress"`
	NighttimeHeatStress *float64 `json:"nighttime_heat_stress"`
	FrostStress         *float64 `json:"frost_stress"`
	DroughtIndex        *float64 `json:"drought_index"`
}

func (s *riskService) GetRisks(ctx context.Context) (*dto.RisksResponse, error) {
	selection, err := s.wizardService.Selection(ctx)
	if err != nil {
		return nil, err
	}
	if selection.Latitude == 0 && selection.Longitude == 0 {
		return nil, ErrLocationNotAvailable
	}
	if selection.Crop == "" {
		return nil, ErrSelectionIncomplete
	}

	result := &dto.RisksResponse{
		Crop:     selection.Crop,
		Location: selection.Location,
		Risks:    []dto.RiskFactorResponse{},
	}

	raw, err := s.fetchRisks(ctx, selection.Latitude, selection.Longitude, selection.Crop)
	if err != nil {
		// Network and malformed-response failures degrade to an empty risk
		// list; the dashboard shows no risks instead of an error dialog.
		s.logger.Error("RiskService", "Failed to fetch risks", map[string]interface{}{"error": err.Error(), "crop": selection.Crop})
		return result, nil
	}

	result.Risks = normalizeRisks(raw, selection.Crop)

	for _, factor := range result.Risks {
		if factor.Level > constant.SeriousRiskThreshold {
			s.notifySeriousRisk(ctx, factor)
		}
	}

	return result, nil
}

func (s *riskService) fetchRisks(ctx context.Context, latitude, longitude float64, crop string) (*riskResponse, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Add("crop", crop)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.riskAPIBaseURL+"/risks?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("risk service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw riskResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// normalizeRisks maps the raw 0-9 stress scores and the drought index onto
// 0-100 risk levels, sorted descending by level.
func normalizeRisks(raw *riskResponse, crop string) []dto.RiskFactorResponse {
	factors := []dto.RiskFactorResponse{
		newRiskFactor("Daytime Heat Stress", scaleStress(raw.DaytimeHeatStress),
			fmt.Sprintf("High daytime temperatures may affect %s growth and flowering", crop)),
		newRiskFactor("Nighttime Heat Stress", scaleStress(raw.NighttimeHeatStress),
			fmt.Sprintf("Warm nights can reduce %s grain fill and recovery", crop)),
		newRiskFactor("Frost Stress", scaleStress(raw.FrostStress),
			fmt.Sprintf("Low temperatures may damage %s tissue during sensitive stages", crop)),
		newRiskFactor("Drought Risk", droughtLevel(raw.DroughtIndex),
			fmt.Sprintf("Water availability during critical %s growth stages", crop)),
	}

	sort.Slice(factors, func(i, j int) bool { return factors[i].Level > factors[j].Level })
	return factors
}

func newRiskFactor(name string, level int, description string) dto.RiskFactorResponse {
	return dto.RiskFactorResponse{
		Name:        name,
		Level:       level,
		Description: description,
		Color:       severityColor(level),
	}
}

// scaleStress maps a raw 0-9 stress score to 0-100.
func scaleStress(value *float64) int {
	if value == nil {
		return 0
	}
	return int(*value * 10)
}

// droughtLevel inverts the drought index: an index >= 1 means no drought
// risk, an index of 0 means maximum risk. Clamped to 0-100.
func droughtLevel(index *float64) int {
	if index == nil {
		return 0
	}
	level := (1 - *index) * 100
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return int(level)
}

func severityColor(level int) string {
	switch {
	case level > 70:
		return "high"
	case level > 40:
		return "medium"
	default:
		return "low"
	}
}

func (s *riskService) notifySeriousRisk(ctx context.Context, factor dto.RiskFactorResponse) {
	event := events.BaseEvent{
		Type: constant.TopicSeriousRisk,
		Data: map[string]interface{}{
			"name":        factor.Name,
			"level":       factor.Level,
			"description": factor.Description,
			"color":       factor.Color,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("RiskService", "Failed to publish serious risk event", map[string]interface{}{"error": err.Error()})
	}
}
