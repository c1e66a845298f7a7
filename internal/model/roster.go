package model

import "strings"

// Roster is the fixed set of children whose practices appear on the schedule.
var Roster = []string{"Nastya", "Alisa"}

// Venue is a swim location referenced by short code on the schedule.
type Venue struct {
	Name    string
	Address string
}

// Venues maps schedule location codes to venue details. Codes not present
// here render as "TBD" rather than failing.
var Venues = map[string]Venue{
	"MW": {Name: "Mountain View Swim Center", Address: "1160 Terra Bella Ave, Mountain View, CA"},
	"RC": {Name: "Rinconada Pool", Address: "777 Embarcadero Rd, Palo Alto, CA"},
	"GN": {Name: "Gunn High School Pool", Address: "780 Arastradero Rd, Palo Alto, CA"},
	"FH": {Name: "Foothill College Pool", Address: "12345 El Monte Rd, Los Altos Hills, CA"},
}

// KnownChild reports whether the name is on the roster, ignoring case.
func KnownChild(name string) bool {
	for _, child := range Roster {
		if strings.EqualFold(child, name) {
			return true
		}
	}
	return false
}

// EmptyScheduleMessage is rendered when extraction yields zero events.
var EmptyScheduleMessage = "No practice events found for " + strings.Join(Roster, " or ") +
	". Make sure the uploaded PDF is a swim practice schedule."
