package config

import (
	_ "embed"
)

//go:embed defaults/dimensions.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hardcoded fallback tuning, used if the
// embedded YAML fails to parse. Values here mirror defaults/dimensions.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Point: PointTuning{
			Ladder:       Ladder{BaseScore: 10, SaturationGain: 0.05, PartialPenalty: 0.1, MismatchPenalty: 0.2},
			BeatInterval: 1.2,
			AscendBeats:  8,
			BlackChance:  0.05,
		},
		Line: LineTuning{
			Ladder:        Ladder{BaseScore: 15, SaturationGain: 0.05, PartialPenalty: 0.1, MismatchPenalty: 0.2},
			SpawnInterval: 1.5,
			ApproachSpeed: 30,
			ContactRadius: 2,
			SegmentLength: 30,
			TargetLength:  300,
			BlackChance:   0.12,
		},
		Plane: PlaneTuning{
			Ladder:            Ladder{BaseScore: 25, SaturationGain: 0.06, PartialPenalty: 0.1, MismatchPenalty: 0.25},
			WallInterval:      3.0,
			WallSpeed:         25,
			LateralSpeed:      30,
			RotateSpeed:       2.4,
			RotationTolerance: 0.3,
			FitTolerance:      0.15,
			HoleHalfWidth:     8,
			AscendPasses:      10,
		},
		Space: SpaceTuning{
			Ladder:         Ladder{BaseScore: 30, SaturationGain: 0.06, PartialPenalty: 0.12, MismatchPenalty: 0.25},
			SpawnInterval:  2.2,
			ApproachSpeed:  40,
			MoveAccel:      60,
			Momentum:       0.85,
			RotateSpeed:    2.0,
			AlignTolerance: 0.49,
			ContactRadius:  6,
			AscendPasses:   15,
		},
		Fold: FoldTuning{
			Ladder:        Ladder{BaseScore: 40, SaturationGain: 0.07, PartialPenalty: 0.12, MismatchPenalty: 0.3},
			RingInterval:  2.5,
			RingSpeed:     45,
			ScaleSpeed:    50,
			RotateSpeed:   1.8,
			SizeTolerance: 35,
			MinScale:      20,
			MaxScale:      180,
			AscendPhases:  12,
		},
		Nebula: NebulaTuning{
			Ladder:           Ladder{BaseScore: 50, SaturationGain: 0.08, PartialPenalty: 0.15, MismatchPenalty: 0.3},
			CloudInterval:    3.0,
			DriftSpeed:       20,
			DensityRate:      0.4,
			ScaleSpeed:       30,
			RotateSpeed:      1.5,
			DensityTolerance: 0.15,
			AscendMerges:     10,
		},
		Infinite: InfiniteTuning{
			Hold: 7.0,
		},
		RedshiftStreak: 20,
	}
}
