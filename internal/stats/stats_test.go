package stats

import "testing"

func TestBattingAvg(t *testing.T) {
	tests := []struct {
		name    string
		hits    float64
		atBats  float64
		want    float64
		wantOK  bool
	}{
		{"two for four", 2, 4, 0.500, true},
		{"one for three rounds", 1, 3, 0.333, true},
		{"perfect", 4, 4, 1.000, true},
		{"rounds up", 2, 3, 0.667, true},
		{"zero at-bats suppresses", 2, 0, 0, false},
		{"zero hits suppresses", 0, 4, 0, false},
		{"both zero suppresses", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BattingAvg(tt.hits, tt.atBats)
			if ok != tt.wantOK {
				t.Fatalf("BattingAvg(%v, %v) ok = %v, want %v", tt.hits, tt.atBats, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("BattingAvg(%v, %v) = %v, want %v", tt.hits, tt.atBats, got, tt.want)
			}
		})
	}
}

func TestERA(t *testing.T) {
	tests := []struct {
		name       string
		earnedRuns float64
		innings    float64
		want       float64
		wantOK     bool
	}{
		{"three over nine", 3, 9, 3.00, true},
		{"rounds to cents", 2, 7, 2.57, true},
		{"ugly outing", 5, 0.2, 225.00, true},
		{"zero innings suppresses", 3, 0, 0, false},
		{"zero earned runs suppresses", 0, 9, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ERA(tt.earnedRuns, tt.innings)
			if ok != tt.wantOK {
				t.Fatalf("ERA(%v, %v) ok = %v, want %v", tt.earnedRuns, tt.innings, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ERA(%v, %v) = %v, want %v", tt.earnedRuns, tt.innings, got, tt.want)
			}
		})
	}
}
