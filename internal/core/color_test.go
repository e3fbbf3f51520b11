package core

import "testing"

func TestMatchColors(t *testing.T) {
	tests := []struct {
		name   string
		player Color
		other  Color
		want   MatchGrade
	}{
		{"same chromatic", Red, Red, Perfect},
		{"same chromatic green", Green, Green, Perfect},
		{"distinct chromatic", Red, Blue, Mismatch},
		{"distinct chromatic reversed", Blue, Red, Mismatch},
		{"white player", White, Red, WhiteMatch},
		{"white other", Green, White, WhiteMatch},
		{"white both", White, White, WhiteMatch},
		{"black other", Red, Black, Void},
		{"black player", Black, Red, Void},
		{"black both", Black, Black, Void},
		{"black beats white", White, Black, Void},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchColors(tt.player, tt.other); got != tt.want {
				t.Errorf("MatchColors(%v, %v) = %v, want %v", tt.player, tt.other, got, tt.want)
			}
		})
	}
}

func TestMatchGradeSuccess(t *testing.T) {
	if !Perfect.Success() || !WhiteMatch.Success() {
		t.Error("perfect and white grades must count as successes")
	}
	if Mismatch.Success() || Void.Success() {
		t.Error("mismatch and void grades must not count as successes")
	}
}

func TestGradeOutcome(t *testing.T) {
	tests := []struct {
		grade MatchGrade
		want  Outcome
	}{
		{Perfect, OutcomePerfect},
		{WhiteMatch, OutcomeWhite},
		{Mismatch, OutcomeMismatch},
		{Void, OutcomeVoid},
	}

	for _, tt := range tests {
		if got := GradeOutcome(tt.grade); got != tt.want {
			t.Errorf("GradeOutcome(%v) = %v, want %v", tt.grade, got, tt.want)
		}
	}
}

func TestOutcomeSuccess(t *testing.T) {
	if !OutcomePerfect.Success() || !OutcomeWhite.Success() {
		t.Error("perfect and white outcomes must count as successes")
	}
	if OutcomePartial.Success() || OutcomeMismatch.Success() || OutcomeVoid.Success() {
		t.Error("partial, mismatch and void outcomes must not count as successes")
	}
}

func TestPlayerColorsExcludeBlack(t *testing.T) {
	for _, c := range PlayerColors {
		if c == Black {
			t.Fatal("black must never be selectable")
		}
	}
	if len(PlayerColors) != 4 {
		t.Errorf("expected 4 selectable colors, got %d", len(PlayerColors))
	}
}

func TestClamp(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v", got)
	}
	if got := ClampF(-0.2, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.2, 0, 1) = %v", got)
	}
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %v", got)
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp(7, 0, 5) = %d", got)
	}
}
