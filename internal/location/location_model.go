package location

import "gorm.io/gorm"

// Location is a place an activity can be held. The standard facility spots
// are seeded once; coaches add their own through the same endpoint.
type Location struct {
	gorm.Model
	Name string `gorm:"not null;unique" json:"name"`
}

// DefaultLocations are seeded on startup if the table is empty.
var DefaultLocations = []string{
	"Main Field",
	"Practice Field",
	"Batting Cages",
	"Bullpen Mounds",
	"Weight Room",
	"Indoor Facility",
	"Classroom",
}
