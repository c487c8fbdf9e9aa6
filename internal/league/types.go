package league

import (
	"fmt"
	"time"
)

// Collection names as they exist in the backing document store.
const (
	TeamsCollection         = "teams"
	PlayersCollection       = "players"
	ConferencesCollection   = "conferences"
	PositionTypesCollection = "positionTypes"
	ScheduleCollection      = "currentWeekSchedule"
)

// Team is an NFL franchise. Division and conference are free-text keys, not
// enforced foreign keys; a team may name a division no Conference document
// knows about.
type Team struct {
	ID              string   `json:"id"`
	Abbreviation    string   `json:"abbreviation"`
	Color           string   `json:"color"`
	Division        string   `json:"division"`
	Conference      string   `json:"conference,omitempty"`
	Established     int      `json:"established"`
	HeadCoach       string   `json:"headCoach"`
	Location        string   `json:"location"`
	LogoURL         string   `json:"logoUrl"`
	Name            string   `json:"name"`
	Owners          []string `json:"owners"`
	SeasonSummary   string   `json:"seasonSummary,omitempty"`
	StandingSummary string   `json:"standingSummary,omitempty"`
	WebsiteURL      string   `json:"websiteUrl"`
}

// Headshot is a player photo with its alt text.
type Headshot struct {
	Href string `json:"href"`
	Alt  string `json:"alt"`
}

// BirthPlace is a player's structured place of birth.
type BirthPlace struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Position is a player's position and the position type it belongs to.
type Position struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Player is the canonical player shape. Two stored generations exist (flat
// legacy fields vs nested sub-objects); both normalize into this one.
type Player struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	FullName      string     `json:"fullName"`
	Age           int        `json:"age"`
	Height        float64    `json:"height,omitempty"`
	Weight        float64    `json:"weight,omitempty"`
	DisplayHeight string     `json:"displayHeight,omitempty"`
	DisplayWeight string     `json:"displayWeight,omitempty"`
	Slug          string     `json:"slug"`
	Jersey        string     `json:"jersey"`
	Headshot      Headshot   `json:"headshot"`
	DateOfBirth   string     `json:"dateOfBirth"`
	BirthPlace    BirthPlace `json:"birthPlace"`
	Experience    int        `json:"experience"`
	Position      Position   `json:"position"`
	Status        string     `json:"status"`
	Team          string     `json:"team"`
}

// Division is an embedded division inside a Conference.
type Division struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Conference is one of the two NFL conferences with its divisions.
type Conference struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation"`
	Divisions    []Division `json:"divisions"`
}

// PositionType groups position names (offense, defense, special teams).
type PositionType struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
}

// TeamLogo is a competitor's logo with its alt text.
type TeamLogo struct {
	Alt string `json:"alt"`
	URL string `json:"url"`
}

// Competitor is one side of an Event. Events always carry exactly two.
type Competitor struct {
	Score    int      `json:"score"`
	TeamLogo TeamLogo `json:"teamLogo"`
	Winner   bool     `json:"winner"`
}

// Event is a single scheduled game.
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Completed   bool         `json:"completed"`
	Date        EventDate    `json:"date"`
	Competitors []Competitor `json:"competitors"`
}

// Schedule is the current week's slate of events.
type Schedule struct {
	Season int     `json:"season,omitempty"`
	Week   int     `json:"week,omitempty"`
	Events []Event `json:"events"`
}

// eventDateLayout renders kickoff instants the way the public API always has:
// ISO-8601 UTC with millisecond precision.
const eventDateLayout = "2006-01-02T15:04:05.000Z"

// EventDate is an event's kickoff instant. Stored with sub-second precision,
// served without it.
type EventDate time.Time

func (d EventDate) Time() time.Time {
	return time.Time(d)
}

func (d EventDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).UTC().Format(eventDateLayout) + `"`), nil
}

func (d *EventDate) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid event date %q", string(b))
	}
	t, err := time.Parse(eventDateLayout, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("invalid event date: %w", err)
	}
	*d = EventDate(t)
	return nil
}
