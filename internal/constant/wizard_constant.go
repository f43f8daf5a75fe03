package constant

// Persisted selection keys. These mirror the key-value layout the web client
// used before the store moved server-side, so no migration is needed.
const (
	KeySelectedLocation = "selectedLocation"
	KeySelectedCrop     = "selectedCrop"
	KeyLatitude         = "latitude"
	KeyLongitude        = "longitude"
	KeyActiveTab        = "activeTab"
)

// Dashboard tabs.
const (
	TabRisks           = "risks"
	TabRecommendations = "recommendations"
	TabTracker         = "tracker"
)

// Event topics.
const (
	TopicSeriousRisk = "SERIOUS_RISK"
)

// SeriousRiskThreshold is the level above which (strictly) a risk factor
// triggers the recommendations focus shift.
const SeriousRiskThreshold = 70

// SupportedCrops is the union of the crop picker and the crops the agronomic
// stress thresholds are defined for.
var SupportedCrops = []string{"rice", "wheat", "cotton", "soybean", "corn"}

func IsSupportedCrop(crop string) bool {
	for _, c := range SupportedCrops {
		if c == crop {
			return true
		}
	}
	return false
}
