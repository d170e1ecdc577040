package models

// Aspect is one of the fixed product attributes reviews are tagged against.
// The set is closed; extending it means extending the keyword table in the
// aspects package as well.
type Aspect string

const (
	AspectCamera       Aspect = "Camera"
	AspectBattery      Aspect = "Battery"
	AspectPerformance  Aspect = "Performance"
	AspectDisplay      Aspect = "Display"
	AspectValue        Aspect = "Value"
	AspectBuildQuality Aspect = "Build Quality"
)

// AllAspects fixes the declaration order used for ranking ties and for the
// rows of the aspect matrix.
var AllAspects = []Aspect{
	AspectCamera,
	AspectBattery,
	AspectPerformance,
	AspectDisplay,
	AspectValue,
	AspectBuildQuality,
}
