package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	tuning, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tuning.Point.BeatInterval <= 0 {
		t.Errorf("point beat interval = %v, expected positive", tuning.Point.BeatInterval)
	}
	if tuning.Infinite.Hold <= 0 {
		t.Errorf("infinite hold = %v, expected positive", tuning.Infinite.Hold)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dimensions.yaml")
	partial := "point:\n  ascend_beats: 4\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tuning, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tuning.Point.AscendBeats != 4 {
		t.Errorf("ascend beats = %d, expected the file's 4", tuning.Point.AscendBeats)
	}
	// Everything the file omits stays at its default, including the beat
	// interval that drives dimension 0's update loop.
	def := DefaultTuning()
	if tuning.Point.BeatInterval != def.Point.BeatInterval {
		t.Errorf("beat interval = %v, expected default %v", tuning.Point.BeatInterval, def.Point.BeatInterval)
	}
	if tuning.Line.ContactRadius != def.Line.ContactRadius {
		t.Errorf("line contact radius = %v, expected default %v", tuning.Line.ContactRadius, def.Line.ContactRadius)
	}
	if tuning.RedshiftStreak != def.RedshiftStreak {
		t.Errorf("redshift streak = %d, expected default %d", tuning.RedshiftStreak, def.RedshiftStreak)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}
