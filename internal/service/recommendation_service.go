// FILE: internal/service/recommendation_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/entity"
	"harvestguard-be/internal/pkg/logger"
	"harvestguard-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type IRecommendationService interface {
	GetRecommendations(ctx context.Context) (*dto.RecommendationsResponse, error)
	SubmitFeedback(ctx context.Context, productID string, req *dto.ProductFeedbackRequest) error
}

type recommendationService struct {
	riskAPIBaseURL string
	wizardService  IWizardService
	productRepo    contract.ProductRepository
	logger         logger.ILogger

	// feedback is ephemeral by design: it lives for the session, never in
	// the selection store.
	feedback *cache.Cache
}

func NewRecommendationService(riskAPIBaseURL string, wizardService IWizardService, productRepo contract.ProductRepository, log logger.ILogger) IRecommendationService {
	return &recommendationService{
		riskAPIBaseURL: riskAPIBaseURL,
		wizardService:  wizardService,
		productRepo:    productRepo,
		logger:         log,
		feedback:       cache.New(1*time.Hour, 10*time.Minute),
	}
}

type recommendationResponse struct {
	Product             string `json:"product"`
	DetailedDescription string `json:"detailed_description"`
	SimpleDescription   string `json:"simple_description"`
}

func (s *recommendationService) GetRecommendations(ctx context.Context) (*dto.RecommendationsResponse, error) {
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

	result := &dto.RecommendationsResponse{
		Crop:     selection.Crop,
		Products: []dto.RecommendedProductResponse{},
	}

	raw, err := s.fetchRecommendations(ctx, selection.Latitude, selection.Longitude, selection.Crop)
	if err != nil {
		s.logger.Error("RecommendationService", "Failed to fetch recommendations", map[string]interface{}{"error": err.Error(), "crop": selection.Crop})
		return result, nil
	}

	for _, rec := range raw {
		product, err := s.productRepo.FindByName(ctx, rec.Product)
		if err != nil {
			s.logger.Warn("RecommendationService", "Catalog lookup failed", map[string]interface{}{"error": err.Error(), "product": rec.Product})
			product = nil
		}
		result.Products = append(result.Products, s.buildProduct(rec, product))
	}

	return result, nil
}

func (s *recommendationService) fetchRecommendations(ctx context.Context, latitude, longitude float64, crop string) ([]recommendationResponse, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Add("crop", crop)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.riskAPIBaseURL+"/recommendations?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw []recommendationResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// buildProduct joins a recommendation against the catalog. Product names the
// catalog does not know get placeholder metadata instead of failing the
// whole panel.
func (s *recommendationService) buildProduct(rec recommendationResponse, product *entity.Product) dto.RecommendedProductResponse {
	description := rec.DetailedDescription
	if description == "" {
		description = rec.SimpleDescription
	}

	resp := dto.RecommendedProductResponse{
		Name:        rec.Product,
		Description: description,
	}

	if product != nil {
		resp.Id = product.Id.String()
		resp.Type = product.Type
		resp.Benefits = product.Benefits
		resp.ApplicationTiming = product.ApplicationTiming
		resp.EfficacyScore = product.EfficacyScore
		resp.Link = product.Link
	} else {
		resp.Id = slugify(rec.Product)
		resp.Type = "Biological Product"
		resp.Benefits = []string{}
		resp.ApplicationTiming = "See product label"
	}

	if fb, found := s.feedback.Get(resp.Id); found {
		feedback := fb.(dto.ProductFeedbackResponse)
		resp.UserFeedback = &feedback
	}

	return resp
}

func (s *recommendationService) SubmitFeedback(ctx context.Context, productID string, req *dto.ProductFeedbackRequest) error {
	s.feedback.Set(productID, dto.ProductFeedbackResponse{
		Helpful: req.Helpful,
		Comment: req.Comment,
	}, cache.DefaultExpiration)
	return nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
