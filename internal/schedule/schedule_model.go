// internal/schedule/schedule_model.go
package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SectionType is the closed set of section categories a practice plan can use.
type SectionType string

const (
	SectionGeneral            SectionType = "general"
	SectionPositionPlayers    SectionType = "position_players"
	SectionPitchers           SectionType = "pitchers"
	SectionGrinderPerformance SectionType = "grinder_performance"
	SectionGrinderHitting     SectionType = "grinder_hitting"
	SectionGrinderDefensive   SectionType = "grinder_defensive"
	SectionBullpen            SectionType = "bullpen"
	SectionLiveBP             SectionType = "live_bp"
)

// SectionTypes lists all valid section types in skeleton order.
var SectionTypes = []SectionType{
	SectionGeneral,
	SectionPositionPlayers,
	SectionPitchers,
	SectionGrinderPerformance,
	SectionGrinderHitting,
	SectionGrinderDefensive,
	SectionBullpen,
	SectionLiveBP,
}

// sectionTitles maps each type to its default display title.
var sectionTitles = map[SectionType]string{
	SectionGeneral:            "General",
	SectionPositionPlayers:    "Position Players",
	SectionPitchers:           "Pitchers",
	SectionGrinderPerformance: "Grinder Performance",
	SectionGrinderHitting:     "Grinder Hitting",
	SectionGrinderDefensive:   "Grinder Defensive",
	SectionBullpen:            "Bullpen",
	SectionLiveBP:             "Live BP",
}

// Valid reports whether t is a member of the closed section-type set.
func (t SectionType) Valid() bool {
	_, ok := sectionTitles[t]
	return ok
}

// Normalize maps unknown section types to the first enumeration member.
// This is a display fallback for documents written by older clients, not an error.
func (t SectionType) Normalize() SectionType {
	if t.Valid() {
		return t
	}
	return SectionTypes[0]
}

// DefaultTitle returns the default display title for the type.
func (t SectionType) DefaultTitle() string {
	return sectionTitles[t.Normalize()]
}

// Activity is a single timed item within a section.
type Activity struct {
	LocalID  string `json:"localId"`
	Time     string `json:"time"`
	Name     string `json:"activityName"`
	Location string `json:"location,omitempty"`
	Staff    string `json:"staffOrGroup,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Section is a titled, typed grouping of activities within a schedule.
type Section struct {
	LocalID    string      `json:"localId"`
	Type       SectionType `json:"sectionType"`
	Title      string      `json:"title"`
	Activities []Activity  `json:"activities"`
}

// SectionList is the JSONB column holding a document's full sections tree.
// Section and activity localIds are stored as-is; the payload is not stripped
// of client-generated ids before persistence.
type SectionList []Section

func (s SectionList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *SectionList) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("SectionList: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Document is a schedule for one team on one date. A draft has ID 0 and lives
// only in memory; a persisted schedule is one row with the sections tree in a
// JSONB column.
type Document struct {
	gorm.Model
	TeamID      uint        `json:"team_id"`
	ProgramName string      `json:"program_name"`
	Date        time.Time   `json:"date"`
	Motto       string      `json:"motto,omitempty"`
	Sections    SectionList `gorm:"type:jsonb" json:"sections"`
}

func (Document) TableName() string {
	return "schedules"
}
