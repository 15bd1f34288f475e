// internal/roster/roster_model.go
package roster

import (
	"time"

	"gorm.io/gorm"
)

// The roster entities are deliberately flat: every one of them is served by
// the same generic list/create/update/delete machinery, so all that differs
// between them is the field schema.

// Player is a recruit or rostered player.
type Player struct {
	gorm.Model
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Position  string `json:"position"`
	GradYear  int    `json:"grad_year"`
	School    string `json:"school"`
	State     string `json:"state"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	TeamID    uint   `json:"team_id"`
}

// Coach is a member of the coaching staff.
type Coach struct {
	gorm.Model
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TeamID    uint   `json:"team_id"`
}

// Scout is an external or internal talent evaluator.
type Scout struct {
	gorm.Model
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	Organization string `json:"organization"`
	Region       string `json:"region"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// Vendor is an equipment or service provider.
type Vendor struct {
	gorm.Model
	Company     string `gorm:"not null" json:"company"`
	Service     string `json:"service"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

// ScoutingReport is an evaluation of one player by one scout.
type ScoutingReport struct {
	gorm.Model
	PlayerID     uint      `json:"player_id"`
	ScoutID      uint      `json:"scout_id"`
	ReportDate   time.Time `json:"report_date"`
	OverallGrade string    `json:"overall_grade"`
	Summary      string    `json:"summary"`
}
