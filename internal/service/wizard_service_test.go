package service

import (
	"context"
	"testing"

	"harvestguard-be/internal/config"
	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestStepFor(t *testing.T) {
	tests := []struct {
		name            string
		locationPresent bool
		cropPresent     bool
		want            Step
	}{
		{name: "nothing stored", locationPresent: false, cropPresent: false, want: StepLocation},
		{name: "location only", locationPresent: true, cropPresent: false, want: StepCrop},
		{name: "location and crop", locationPresent: true, cropPresent: true, want: StepDashboard},
		{name: "crop without location", locationPresent: false, cropPresent: true, want: StepLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepFor(tt.locationPresent, tt.cropPresent)
			if got != tt.want {
				t.Errorf("StepFor(%v, %v) = %q, want %q", tt.locationPresent, tt.cropPresent, got, tt.want)
			}
			// Presence flags fully determine the step; computing it again
			// must not change anything.
			if again := StepFor(tt.locationPresent, tt.cropPresent); again != got {
				t.Errorf("StepFor is not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestWizardService_State_EmptyStore(t *testing.T) {
	svc := NewWizardService(memory.NewSelectionRepository(), config.DefaultCoordinates{})

	state, err := svc.State(context.Background())
	require.NoError(t, err)

	assert.Equal(t, string(StepLocation), state.Step)
	assert.Equal(t, constant.TabRisks, state.ActiveTab)
	assert.Empty(t, state.Selection.Location)
	assert.Empty(t, state.Selection.Crop)
}

func TestWizardService_SelectCrop(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSelectionRepository()
	svc := NewWizardService(repo, config.DefaultCoordinates{})

	require.NoError(t, repo.Set(ctx, constant.KeySelectedLocation, "Pune, India"))

	state, err := svc.SelectCrop(ctx, "  Rice ")
	require.NoError(t, err)

	assert.Equal(t, string(StepDashboard), state.Step)
	assert.Equal(t, "rice", state.Selection.Crop)

	stored, err := repo.Get(ctx, constant.KeySelectedCrop)
	require.NoError(t, err)
	assert.Equal(t, "rice", stored)
}

func TestWizardService_SelectCrop_Unsupported(t *testing.T) {
	svc := NewWizardService(memory.NewSelectionRepository(), config.DefaultCoordinates{})

	_, err := svc.SelectCrop(context.Background(), "mango")
	assert.ErrorIs(t, err, ErrUnsupportedCrop)
}

func TestWizardService_Back_DoesNotTouchStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSelectionRepository()
	svc := NewWizardService(repo, config.DefaultCoordinates{})

	require.NoError(t, repo.Set(ctx, constant.KeySelectedLocation, "Pune, India"))
	require.NoError(t, repo.Set(ctx, constant.KeySelectedCrop, "wheat"))

	state, err := svc.Back(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, string(StepCrop), state.Step)

	// Stored values survive navigation: the next plain state read computes
	// dashboard again from presence.
	state, err = svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(StepDashboard), state.Step)
	assert.Equal(t, "wheat", state.Selection.Crop)
}

func TestWizardService_ResetAll_LeavesCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSelectionRepository()
	svc := NewWizardService(repo, config.DefaultCoordinates{})

	require.NoError(t, repo.Set(ctx, constant.KeySelectedLocation, "Pune, India"))
	require.NoError(t, repo.Set(ctx, constant.KeySelectedCrop, "rice"))
	require.NoError(t, repo.Set(ctx, constant.KeyLatitude, "18.52"))
	require.NoError(t, repo.Set(ctx, constant.KeyLongitude, "73.85"))
	require.NoError(t, repo.Set(ctx, constant.KeyActiveTab, constant.TabRecommendations))

	state, err := svc.ResetAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(StepLocation), state.Step)
	assert.Equal(t, constant.TabRisks, state.ActiveTab)
	assert.Empty(t, state.Selection.Location)
	assert.Empty(t, state.Selection.Crop)
	assert.Equal(t, 18.52, state.Selection.Latitude)
	assert.Equal(t, 73.85, state.Selection.Longitude)
}

func TestWizardService_Selection_MalformedCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSelectionRepository()
	svc := NewWizardService(repo, config.DefaultCoordinates{Latitude: 10, Longitude: 20})

	require.NoError(t, repo.Set(ctx, constant.KeyLatitude, "not-a-number"))

	selection, err := svc.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, selection.Latitude)
	assert.Equal(t, 20.0, selection.Longitude)
}

func TestWizardService_Crops(t *testing.T) {
	svc := NewWizardService(memory.NewSelectionRepository(), config.DefaultCoordinates{})

	crops := svc.Crops()
	require.Len(t, crops.Crops, len(constant.SupportedCrops))
	assert.Equal(t, "rice", crops.Crops[0].Id)
	assert.Equal(t, "Rice", crops.Crops[0].Name)
}
