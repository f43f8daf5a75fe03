package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"harvestguard-be/internal/config"
	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationFixture(t *testing.T, body string, status int) IRecommendationService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommendations", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	repo := memory.NewSelectionRepository()
	seedDashboardSelection(t, repo)

	wizard := NewWizardService(repo, config.DefaultCoordinates{})
	products := memory.NewProductRepository(constant.ProductCatalog)

	return NewRecommendationService(srv.URL, wizard, products, nopLogger{})
}

func TestRecommendationService_KnownProductJoinsCatalog(t *testing.T) {
	svc := newRecommendationFixture(t, `[
		{"product": "Stress Buster", "detailed_description": "Apply during heat waves", "simple_description": "Heat help"}
	]`, http.StatusOK)

	result, err := svc.GetRecommendations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "rice", result.Crop)
	require.Len(t, result.Products, 1)

	p := result.Products[0]
	assert.Equal(t, "Stress Buster", p.Name)
	assert.Equal(t, "Apply during heat waves", p.Description)
	assert.NotEmpty(t, p.Id)
	assert.NotEmpty(t, p.Type)
	assert.NotEmpty(t, p.Benefits)
	assert.NotEmpty(t, p.ApplicationTiming)
	assert.Greater(t, p.EfficacyScore, 0)
}

func TestRecommendationService_UnknownProductGetsPlaceholder(t *testing.T) {
	svc := newRecommendationFixture(t, `[
		{"product": "Mystery Tonic", "simple_description": "Unknown remedy"}
	]`, http.StatusOK)

	result, err := svc.GetRecommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Products, 1)

	p := result.Products[0]
	assert.Equal(t, "Mystery Tonic", p.Name)
	assert.Equal(t, "mystery-tonic", p.Id)
	assert.Equal(t, "Biological Product", p.Type)
	assert.Equal(t, "Unknown remedy", p.Description)
	assert.NotNil(t, p.Benefits)
	assert.Empty(t, p.Benefits)
	assert.Equal(t, "See product label", p.ApplicationTiming)
	assert.Zero(t, p.EfficacyScore)
}

func TestRecommendationService_DetailedDescriptionPreferred(t *testing.T) {
	svc := newRecommendationFixture(t, `[
		{"product": "Mystery Tonic", "detailed_description": "", "simple_description": "Short form"}
	]`, http.StatusOK)

	result, err := svc.GetRecommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Short form", result.Products[0].Description)
}

func TestRecommendationService_FetchFailureDegradesToEmpty(t *testing.T) {
	svc := newRecommendationFixture(t, `not json`, http.StatusOK)

	result, err := svc.GetRecommendations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Products)
}

func TestRecommendationService_Guards(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSelectionRepository()
	wizard := NewWizardService(repo, config.DefaultCoordinates{})
	svc := NewRecommendationService("http://unused", wizard, memory.NewProductRepository(nil), nopLogger{})

	_, err := svc.GetRecommendations(ctx)
	assert.ErrorIs(t, err, ErrLocationNotAvailable)

	require.NoError(t, repo.Set(ctx, constant.KeyLatitude, "18.52"))
	require.NoError(t, repo.Set(ctx, constant.KeyLongitude, "73.85"))

	_, err = svc.GetRecommendations(ctx)
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestRecommendationService_FeedbackRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newRecommendationFixture(t, `[
		{"product": "Mystery Tonic", "simple_description": "Unknown remedy"}
	]`, http.StatusOK)

	helpful := true
	require.NoError(t, svc.SubmitFeedback(ctx, "mystery-tonic", &dto.ProductFeedbackRequest{
		Helpful: &helpful,
		Comment: "worked well",
	}))

	result, err := svc.GetRecommendations(ctx)
	require.NoError(t, err)
	require.Len(t, result.Products, 1)

	fb := result.Products[0].UserFeedback
	require.NotNil(t, fb)
	require.NotNil(t, fb.Helpful)
	assert.True(t, *fb.Helpful)
	assert.Equal(t, "worked well", fb.Comment)
}
