// FILE: internal/service/location_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/pkg/logger"
	"harvestguard-be/internal/repository/contract"
)

var (
	ErrGeolocationDenied      = errors.New("location access denied")
	ErrGeolocationUnsupported = errors.New("geolocation not supported")
	ErrEmptyLocation          = errors.New("location must not be empty")
)

type ILocationService interface {
	// Detect persists the device coordinates, then resolves them to a
	// human-readable pending location name.
	Detect(ctx context.Context, latitude, longitude float64) (*dto.PendingLocationResponse, error)
	SubmitManual(ctx context.Context, query string) (*dto.PendingLocationResponse, error)
	Confirm(ctx context.Context, location string) error
	ResetLocation(ctx context.Context) error
}

type locationService struct {
	nominatimBaseURL string
	selectionRepo    contract.SelectionRepository
	logger           logger.ILogger
	cache            sync.Map // In-memory reverse-geocode cache
}

// Cache Item Wrapper
type cachedName struct {
	name      string
	expiresAt time.Time
}

func NewLocationService(nominatimBaseURL string, selectionRepo contract.SelectionRepository, log logger.ILogger) ILocationService {
	return &locationService{
		nominatimBaseURL: nominatimBaseURL,
		selectionRepo:    selectionRepo,
		logger:           log,
	}
}

func (s *locationService) Detect(ctx context.Context, latitude, longitude float64) (*dto.PendingLocationResponse, error) {
	// Coordinates are committed before the name lookup so that any reader
	// of the store sees them even if the lookup is slow or fails.
	if err := s.selectionRepo.Set(ctx, constant.KeyLatitude, strconv.FormatFloat(latitude, 'f', -1, 64)); err != nil {
		return nil, err
	}
	if err := s.selectionRepo.Set(ctx, constant.KeyLongitude, strconv.FormatFloat(longitude, 'f', -1, 64)); err != nil {
		return nil, err
	}

	name := s.resolveName(ctx, latitude, longitude)
	return &dto.PendingLocationResponse{Location: name, Source: "detected"}, nil
}

func (s *locationService) SubmitManual(ctx context.Context, query string) (*dto.PendingLocationResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyLocation
	}
	// Manual entry carries no coordinate resolution: whatever was last
	// detected (or the configured default) stays in the store.
	return &dto.PendingLocationResponse{Location: query, Source: "manual"}, nil
}

func (s *locationService) Confirm(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	return s.selectionRepo.Set(ctx, constant.KeySelectedLocation, location)
}

func (s *locationService) ResetLocation(ctx context.Context) error {
	return s.selectionRepo.Remove(ctx, constant.KeySelectedLocation)
}

// resolveName reverse-geocodes the coordinates. Every failure path degrades
// to a synthesized "Location at lat, lon" string so the flow never blocks on
// the geocoding service.
func (s *locationService) resolveName(ctx context.Context, latitude, longitude float64) string {
	fallback := fmt.Sprintf("Location at %.4f, %.4f", latitude, longitude)

	cacheKey := fmt.Sprintf("reverse:%.4f:%.4f", latitude, longitude)
	if val, ok := s.cache.Load(cacheKey); ok {
		item := val.(cachedName)
		if time.Now().Before(item.expiresAt) {
			return item.name
		}
		s.cache.Delete(cacheKey)
	}

	params := url.Values{}
	params.Add("format", "json")
	params.Add("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Add("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.nominatimBaseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", "harvestguard-be/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		s.logger.Warn("LocationService", "Reverse geocoding request failed", map[string]interface{}{"error": err.Error()})
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("LocationService", "Reverse geocoding returned non-200", map[string]interface{}{"status": resp.StatusCode})
		return fallback
	}

	body, _ := io.ReadAll(resp.Body)

	var result struct {
		Address *struct {
			City     string `json:"city"`
			Town     string `json:"town"`
			Village  string `json:"village"`
			Hamlet   string `json:"hamlet"`
			State    string `json:"state"`
			Province string `json:"province"`
			County   string `json:"county"`
			Country  string `json:"country"`
		} `json:"address"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		s.logger.Warn("LocationService", "Failed to parse reverse geocoding response", map[string]interface{}{"error": err.Error()})
		return fallback
	}

	name := fallback
	if result.Address != nil {
		city := firstNonEmpty(result.Address.City, result.Address.Town, result.Address.Village, result.Address.Hamlet)
		state := firstNonEmpty(result.Address.State, result.Address.Province, result.Address.County)
		country := result.Address.Country

		switch {
		case city != "" && country != "":
			name = city + ", " + country
		case state != "" && country != "":
			name = state + ", " + country
		case country != "":
			name = country
		case result.DisplayName != "":
			name = firstSegments(result.DisplayName, 2)
		}
	} else if result.DisplayName != "" {
		name = firstSegments(result.DisplayName, 2)
	}

	s.cache.Store(cacheKey, cachedName{name: name, expiresAt: time.Now().Add(24 * time.Hour)})
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstSegments(displayName string, n int) string {
	parts := strings.Split(displayName, ",")
	if len(parts) > n {
		parts = parts[:n]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}
