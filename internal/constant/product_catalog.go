package constant

import (
	"github.com/google/uuid"

	"harvestguard-be/internal/entity"
)

// ProductCatalog is the built-in metadata table joined against the names the
// recommendation service returns. It seeds the database catalog on startup
// and serves directly when no database is configured.
var ProductCatalog = []entity.Product{
	{
		Id:                uuid.MustParse("5f0c8b1e-1d3a-4f6b-9b3e-0a1c2d3e4f50"),
		Name:              "Stress Buster",
		Type:              "Biostimulant",
		Benefits:          []string{"Activates stress tolerance pathways", "Protects yield under abiotic stress", "Supports recovery after heat events"},
		ApplicationTiming: "Apply before forecasted stress periods",
		EfficacyScore:     92,
		Link:              "https://www.syngentabiologicals.com/stress-buster",
	},
	{
		Id:                uuid.MustParse("6a1d9c2f-2e4b-5a7c-8c4f-1b2d3e4f5a61"),
		Name:              "Nutrient Booster",
		Type:              "Nutrient Use Efficiency",
		Benefits:          []string{"Improves nutrient uptake", "Enhances root development", "Increases fertilizer efficiency"},
		ApplicationTiming: "Apply at early growth stages",
		EfficacyScore:     88,
		Link:              "https://www.syngentabiologicals.com/nutrient-booster",
	},
	{
		Id:                uuid.MustParse("7b2e0d3a-3f5c-6b8d-9d5a-2c3e4f5a6b72"),
		Name:              "Yield Booster",
		Type:              "Biostimulant",
		Benefits:          []string{"Maximizes grain fill", "Improves crop quality", "Supports photosynthetic capacity"},
		ApplicationTiming: "Apply at flowering",
		EfficacyScore:     85,
		Link:              "https://www.syngentabiologicals.com/yield-booster",
	},
	{
		Id:                uuid.MustParse("8c3f1e4b-4a6d-7c9e-0e6b-3d4f5a6b7c83"),
		Name:              "NaturalShield Pro",
		Type:              "Microbial Inoculant",
		Benefits:          []string{"Improves root development", "Enhances nutrient absorption", "Reduces transplant shock"},
		ApplicationTiming: "Apply at planting or early growth stage",
		EfficacyScore:     92,
		Link:              "https://www.syngentabiologicals.com/naturalshield-pro",
	},
	{
		Id:                uuid.MustParse("9d4a2f5c-5b7e-8d0f-1f7c-4e5a6b7c8d94"),
		Name:              "BioDefend",
		Type:              "Biological Fungicide",
		Benefits:          []string{"Controls powdery mildew", "Prevents root rot", "Stimulates plant immune system"},
		ApplicationTiming: "Apply preventatively every 14-21 days",
		EfficacyScore:     88,
		Link:              "https://www.syngentabiologicals.com/biodefend",
	},
	{
		Id:                uuid.MustParse("0e5b3a6d-6c8f-9e1a-2a8d-5f6b7c8d9e05"),
		Name:              "SoilVitality",
		Type:              "Soil Amendment",
		Benefits:          []string{"Enhances water retention", "Improves soil aeration", "Promotes beneficial microorganisms"},
		ApplicationTiming: "Apply 2-4 weeks before planting",
		EfficacyScore:     85,
		Link:              "https://www.syngentabiologicals.com/soilvitality",
	},
}
