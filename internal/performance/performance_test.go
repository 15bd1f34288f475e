package performance

import "testing"

func TestApplyDerived(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantAvg string
		wantERA string
	}{
		{
			name:    "both computed",
			entry:   Entry{AtBats: 4, Hits: 2, InningsPitched: 9, EarnedRuns: 3},
			wantAvg: "0.500",
			wantERA: "3.00",
		},
		{
			name:    "zero innings suppresses era",
			entry:   Entry{AtBats: 4, Hits: 2, InningsPitched: 0, EarnedRuns: 3},
			wantAvg: "0.500",
			wantERA: "",
		},
		{
			name:    "zero at-bats suppresses average",
			entry:   Entry{AtBats: 0, Hits: 0, InningsPitched: 7, EarnedRuns: 2},
			wantAvg: "",
			wantERA: "2.57",
		},
		{
			name:    "submitted value survives a failed guard",
			entry:   Entry{AtBats: 0, Hits: 2, BattingAvg: "typed-by-user", InningsPitched: 0, EarnedRuns: 3, ERA: "4.99"},
			wantAvg: "typed-by-user",
			wantERA: "4.99",
		},
		{
			name:    "rounding",
			entry:   Entry{AtBats: 3, Hits: 1, InningsPitched: 7, EarnedRuns: 2},
			wantAvg: "0.333",
			wantERA: "2.57",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyDerived(&tt.entry)
			if tt.entry.BattingAvg != tt.wantAvg {
				t.Errorf("BattingAvg = %q, want %q", tt.entry.BattingAvg, tt.wantAvg)
			}
			if tt.entry.ERA != tt.wantERA {
				t.Errorf("ERA = %q, want %q", tt.entry.ERA, tt.wantERA)
			}
		})
	}
}
