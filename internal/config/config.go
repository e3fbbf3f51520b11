// Package config provides YAML-based tuning for the dimension modules:
// outcome-ladder magnitudes, ascension thresholds, and geometric
// tolerances, with embedded defaults.
package config

// Ladder defines the four-outcome magnitudes a dimension applies on each
// discrete event. Perfect/white raises saturation and multiplies score by
// the streak; partial and mismatch drain saturation and reset the streak.
type Ladder struct {
	BaseScore       int     `yaml:"base_score"`
	SaturationGain  float64 `yaml:"saturation_gain"`
	PartialPenalty  float64 `yaml:"partial_penalty"`
	MismatchPenalty float64 `yaml:"mismatch_penalty"`
}

// PointTuning configures dimension 0 (pure timing against a beat).
type PointTuning struct {
	Ladder       Ladder  `yaml:"ladder"`
	BeatInterval float64 `yaml:"beat_interval"` // seconds between beats
	AscendBeats  int     `yaml:"ascend_beats"`  // consecutive perfect/white beats
	BlackChance  float64 `yaml:"black_chance"`  // probability of a void beat
}

// LineTuning configures dimension 1 (moving points on one axis).
type LineTuning struct {
	Ladder        Ladder  `yaml:"ladder"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	ApproachSpeed float64 `yaml:"approach_speed"`
	ContactRadius float64 `yaml:"contact_radius"`
	SegmentLength float64 `yaml:"segment_length"` // line growth per success
	TargetLength  float64 `yaml:"target_length"`  // accumulated length to ascend
	BlackChance   float64 `yaml:"black_chance"`
}

// PlaneTuning configures dimension 2 (shape-holed walls).
type PlaneTuning struct {
	Ladder            Ladder  `yaml:"ladder"`
	WallInterval      float64 `yaml:"wall_interval"`
	WallSpeed         float64 `yaml:"wall_speed"`
	LateralSpeed      float64 `yaml:"lateral_speed"`
	RotateSpeed       float64 `yaml:"rotate_speed"`
	RotationTolerance float64 `yaml:"rotation_tolerance"`
	FitTolerance      float64 `yaml:"fit_tolerance"` // hole enlargement fraction
	HoleHalfWidth     float64 `yaml:"hole_half_width"`
	AscendPasses      int     `yaml:"ascend_passes"`
}

// SpaceTuning configures dimension 3 (rotated triangles in depth).
type SpaceTuning struct {
	Ladder         Ladder  `yaml:"ladder"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	ApproachSpeed  float64 `yaml:"approach_speed"`
	MoveAccel      float64 `yaml:"move_accel"`
	Momentum       float64 `yaml:"momentum"` // velocity retained per second
	RotateSpeed    float64 `yaml:"rotate_speed"`
	AlignTolerance float64 `yaml:"align_tolerance"` // radians
	ContactRadius  float64 `yaml:"contact_radius"`
	AscendPasses   int     `yaml:"ascend_passes"`
}

// FoldTuning configures dimension 4 (expanding/contracting rings).
type FoldTuning struct {
	Ladder        Ladder  `yaml:"ladder"`
	RingInterval  float64 `yaml:"ring_interval"`
	RingSpeed     float64 `yaml:"ring_speed"` // units/sec of ring radius change
	ScaleSpeed    float64 `yaml:"scale_speed"`
	RotateSpeed   float64 `yaml:"rotate_speed"`
	SizeTolerance float64 `yaml:"size_tolerance"` // units
	MinScale      float64 `yaml:"min_scale"`
	MaxScale      float64 `yaml:"max_scale"`
	AscendPhases  int     `yaml:"ascend_phases"`
}

// NebulaTuning configures dimension 5 (density clouds).
type NebulaTuning struct {
	Ladder           Ladder  `yaml:"ladder"`
	CloudInterval    float64 `yaml:"cloud_interval"`
	DriftSpeed       float64 `yaml:"drift_speed"`
	DensityRate      float64 `yaml:"density_rate"` // player density change/sec
	ScaleSpeed       float64 `yaml:"scale_speed"`
	RotateSpeed      float64 `yaml:"rotate_speed"`
	DensityTolerance float64 `yaml:"density_tolerance"`
	AscendMerges     int     `yaml:"ascend_merges"`
}

// InfiniteTuning configures the terminal stage.
type InfiniteTuning struct {
	Hold float64 `yaml:"hold"` // seconds of stillness before rebirth
}

// Tuning aggregates all per-dimension parameters.
type Tuning struct {
	Point    PointTuning    `yaml:"point"`
	Line     LineTuning     `yaml:"line"`
	Plane    PlaneTuning    `yaml:"plane"`
	Space    SpaceTuning    `yaml:"space"`
	Fold     FoldTuning     `yaml:"fold"`
	Nebula   NebulaTuning   `yaml:"nebula"`
	Infinite InfiniteTuning `yaml:"infinite"`

	// RedshiftStreak is the streak at which the driver flags the
	// redshift excess state (render-only).
	RedshiftStreak int `yaml:"redshift_streak"`
}
