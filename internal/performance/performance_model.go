// internal/performance/performance_model.go
package performance

import (
	"time"

	"gorm.io/gorm"
)

// Entry is one player's raw counting stats for one game or stretch, plus the
// derived batting average and ERA. The derived fields are stored as formatted
// strings because that is what list views and PDF exports render directly.
type Entry struct {
	gorm.Model
	PlayerID uint      `json:"player_id"`
	GameDate time.Time `json:"game_date"`
	Opponent string    `json:"opponent"`

	// Hitting
	AtBats      float64 `json:"at_bats"`
	Hits        float64 `json:"hits"`
	Doubles     float64 `json:"doubles"`
	Triples     float64 `json:"triples"`
	HomeRuns    float64 `json:"home_runs"`
	Runs        float64 `json:"runs"`
	RBIs        float64 `json:"rbis"`
	Walks       float64 `json:"walks"`
	Strikeouts  float64 `json:"strikeouts"`
	StolenBases float64 `json:"stolen_bases"`

	// Pitching
	InningsPitched float64 `json:"innings_pitched"`
	EarnedRuns     float64 `json:"earned_runs"`
	PitchKs        float64 `json:"pitching_strikeouts"`
	WalksAllowed   float64 `json:"walks_allowed"`
	HitsAllowed    float64 `json:"hits_allowed"`

	// Derived at submission time; left as submitted when the guards fail.
	BattingAvg string `json:"batting_avg"`
	ERA        string `json:"era"`
}

func (Entry) TableName() string {
	return "performance_entries"
}
