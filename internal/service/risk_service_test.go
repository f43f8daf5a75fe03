package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"harvestguard-be/internal/config"
	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/repository/contract"
	"harvestguard-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestScaleStress(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		want  int
	}{
		{name: "missing field", value: nil, want: 0},
		{name: "zero", value: floatPtr(0), want: 0},
		{name: "mid scale", value: floatPtr(5), want: 50},
		{name: "max scale", value: floatPtr(9), want: 90},
		{name: "fractional", value: floatPtr(7.2), want: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleStress(tt.value); got != tt.want {
				t.Errorf("scaleStress = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDroughtLevel(t *testing.T) {
	tests := []struct {
		name  string
		index *float64
		want  int
	}{
		{name: "missing index", index: nil, want: 0},
		{name: "no drought", index: floatPtr(1.0), want: 0},
		{name: "maximum drought", index: floatPtr(0.0), want: 100},
		{name: "partial drought", index: floatPtr(0.25), want: 75},
		{name: "index above one clamps to zero", index: floatPtr(1.5), want: 0},
		{name: "negative index clamps to hundred", index: floatPtr(-0.5), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := droughtLevel(tt.index); got != tt.want {
				t.Errorf("droughtLevel = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 0, want: "low"},
		{level: 40, want: "low"},
		{level: 41, want: "medium"},
		{level: 70, want: "medium"},
		{level: 71, want: "high"},
		{level: 100, want: "high"},
	}

	for _, tt := range tests {
		if got := severityColor(tt.level); got != tt.want {
			t.Errorf("severityColor(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNormalizeRisks_SortedDescending(t *testing.T) {
	raw := &riskResponse{
		DaytimeHeatStress:   floatPtr(3),
		NighttimeHeatStress: floatPtr(8),
		FrostStress:         nil,
		DroughtIndex:        floatPtr(0.5),
	}

	risks := normalizeRisks(raw, "wheat")
	require.Len(t, risks, 4)

	assert.Equal(t, "Nighttime Heat Stress", risks[0].Name)
	assert.Equal(t, 80, risks[0].Level)
	assert.Equal(t, "high", risks[0].Color)

	assert.Equal(t, "Drought Risk", risks[1].Name)
	assert.Equal(t, 50, risks[1].Level)

	assert.Equal(t, "Daytime Heat Stress", risks[2].Name)
	assert.Equal(t, 30, risks[2].Level)

	assert.Equal(t, "Frost Stress", risks[3].Name)
	assert.Equal(t, 0, risks[3].Level)

	for i := 1; i < len(risks); i++ {
		assert.GreaterOrEqual(t, risks[i-1].Level, risks[i].Level)
	}
}

func seedDashboardSelection(t *testing.T, repo contract.SelectionRepository) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, constant.KeySelectedLocation, "Pune, India"))
	require.NoError(t, repo.Set(ctx, constant.KeySelectedCrop, "rice"))
	require.NoError(t, repo.Set(ctx, constant.KeyLatitude, "18.52"))
	require.NoError(t, repo.Set(ctx, constant.KeyLongitude, "73.85"))
}

func newRiskFixture(t *testing.T, riskBody string, status int) (IRiskService, *gochannel.GoChannel) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/risks", r.URL.Path)
		assert.Equal(t, "rice", r.URL.Query().Get("crop"))
		w.WriteHeader(status)
		w.Write([]byte(riskBody))
	}))
	t.Cleanup(srv.Close)

	repo := memory.NewSelectionRepository()
	seedDashboardSelection(t, repo)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	wizard := NewWizardService(repo, config.DefaultCoordinates{})
	publisher := NewPublisherService(constant.TopicSeriousRisk, pubSub)

	return NewRiskService(srv.URL, wizard, publisher, nopLogger{}), pubSub
}

func TestRiskService_GetRisks(t *testing.T) {
	svc, _ := newRiskFixture(t, `{"daytime_heat_stress": 6, "nighttime_heat_stress": 2, "frost_stress": 0, "drought_index": 0.9}`, http.StatusOK)

	result, err := svc.GetRisks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "rice", result.Crop)
	assert.Equal(t, "Pune, India", result.Location)
	require.Len(t, result.Risks, 4)
	assert.Equal(t, "Daytime Heat Stress", result.Risks[0].Name)
	assert.Equal(t, 60, result.Risks[0].Level)
	assert.Equal(t, "medium", result.Risks[0].Color)
}

func TestRiskService_GetRisks_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("no coordinates", func(t *testing.T) {
		repo := memory.NewSelectionRepository()
		require.NoError(t, repo.Set(ctx, constant.KeySelectedCrop, "rice"))
		wizard := NewWizardService(repo, config.DefaultCoordinates{})
		svc := NewRiskService("http://unused", wizard, nil, nopLogger{})

		_, err := svc.GetRisks(ctx)
		assert.ErrorIs(t, err, ErrLocationNotAvailable)
	})

	t.Run("no crop", func(t *testing.T) {
		repo := memory.NewSelectionRepository()
		require.NoError(t, repo.Set(ctx, constant.KeyLatitude, "18.52"))
		require.NoError(t, repo.Set(ctx, constant.KeyLongitude, "73.85"))
		wizard := NewWizardService(repo, config.DefaultCoordinates{})
		svc := NewRiskService("http://unused", wizard, nil, nopLogger{})

		_, err := svc.GetRisks(ctx)
		assert.ErrorIs(t, err, ErrSelectionIncomplete)
	})
}

func TestRiskService_GetRisks_FetchFailureDegradesToEmpty(t *testing.T) {
	svc, _ := newRiskFixture(t, `oops`, http.StatusBadGateway)

	result, err := svc.GetRisks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Risks)
}

func TestRiskService_SeriousRiskPublishesEvent(t *testing.T) {
	// 7.1 daytime stress scales to 71, strictly above the threshold.
	svc, pubSub := newRiskFixture(t, `{"daytime_heat_stress": 7.1, "drought_index": 1}`, http.StatusOK)

	messages, err := pubSub.Subscribe(context.Background(), constant.TopicSeriousRisk)
	require.NoError(t, err)

	_, err = svc.GetRisks(context.Background())
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var envelope struct {
			Type    string                 `json:"type"`
			Payload map[string]interface{} `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &envelope))
		assert.Equal(t, constant.TopicSeriousRisk, envelope.Type)
		assert.Equal(t, "Daytime Heat Stress", envelope.Payload["name"])
		assert.Equal(t, float64(71), envelope.Payload["level"])
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("expected a serious risk event, got none")
	}
}

func TestRiskService_ThresholdLevelDoesNotPublish(t *testing.T) {
	// Exactly 70 is not serious; the threshold is strict.
	svc, pubSub := newRiskFixture(t, `{"daytime_heat_stress": 7, "drought_index": 1}`, http.StatusOK)

	messages, err := pubSub.Subscribe(context.Background(), constant.TopicSeriousRisk)
	require.NoError(t, err)

	_, err = svc.GetRisks(context.Background())
	require.NoError(t, err)

	select {
	case msg := <-messages:
		t.Fatalf("unexpected event published: %s", msg.Payload)
	case <-time.After(200 * time.Millisecond):
	}
}
