package integrator

// QualityConfig trades image quality for speed while the user is interacting
type QualityConfig struct {
	Interactive       bool // Reduced quality mode is active
	InteractiveLights int  // Number of lights evaluated while interactive (<= 0 means all)
	SkipSpecular      bool // Drop specular highlights while interactive
	SkipReflection    bool // Drop mirror reflection while interactive

	// Probability of skipping a shadow test (the light counts as unoccluded)
	ShadowSkipProbability            float64 // Full quality
	InteractiveShadowSkipProbability float64 // Interactive
}

// DefaultQualityConfig returns the interactive reductions of the editing app, starting at full quality.
// Full quality always traces shadow rays, so a finished frame is deterministic.
func DefaultQualityConfig() QualityConfig {
	return QualityConfig{
		Interactive:                      false,
		InteractiveLights:                1,
		SkipSpecular:                     true,
		SkipReflection:                   true,
		ShadowSkipProbability:            0,
		InteractiveShadowSkipProbability: 0.7,
	}
}

// FullQuality returns a config that never reduces quality
func FullQuality() QualityConfig {
	return QualityConfig{}
}

// lightCount returns how many of the available lights should be evaluated
func (q QualityConfig) lightCount(available int) int {
	if q.Interactive && q.InteractiveLights > 0 && q.InteractiveLights < available {
		return q.InteractiveLights
	}
	return available
}

func (q QualityConfig) specularEnabled() bool {
	return !(q.Interactive && q.SkipSpecular)
}

func (q QualityConfig) reflectionEnabled() bool {
	return !(q.Interactive && q.SkipReflection)
}

func (q QualityConfig) shadowSkipProbability() float64 {
	if q.Interactive {
		return q.InteractiveShadowSkipProbability
	}
	return q.ShadowSkipProbability
}
