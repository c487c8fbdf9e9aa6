package league

import (
	"strings"
	"time"

	"github.com/marioniya/nfl-api/internal/docstore"
)

// This file maps raw stored documents into the canonical response shapes.
// The functions are pure: no I/O, inputs never mutated.
//
// Players and conferences have two stored generations. The old generation
// keeps everything flat (birthPlace as one string, position + positionType as
// two strings, headshotUrl, divisions as bare names); the new one nests
// sub-objects. The nested shape is the canonical output and flat documents
// are up-converted into it.

// rawDoc wraps a document's untyped field map with forgiving accessors.
// Missing or mistyped fields read as zero values; the store never guarantees
// a schema, so the normalizer cannot either.
type rawDoc map[string]any

func (r rawDoc) str(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r rawDoc) number(key string) float64 {
	// JSON decoding yields float64 for all numbers.
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func (r rawDoc) integer(key string) int {
	return int(r.number(key))
}

func (r rawDoc) boolean(key string) bool {
	b, _ := r[key].(bool)
	return b
}

func (r rawDoc) object(key string) (rawDoc, bool) {
	m, ok := r[key].(map[string]any)
	return rawDoc(m), ok
}

func (r rawDoc) list(key string) []any {
	l, _ := r[key].([]any)
	return l
}

func (r rawDoc) stringList(key string) []string {
	out := []string{}
	for _, v := range r.list(key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// docID returns the canonical id for a document: the store key wins, a stored
// "id" field is only a fallback for documents written before keys were
// authoritative.
func docID(doc docstore.Document) string {
	if doc.ID != "" {
		return doc.ID
	}
	return rawDoc(doc.Data).str("id")
}

// TeamFromDoc shapes a raw team document into the response contract.
func TeamFromDoc(doc docstore.Document) Team {
	r := rawDoc(doc.Data)
	return Team{
		ID:              docID(doc),
		Abbreviation:    r.str("abbreviation"),
		Color:           r.str("color"),
		Division:        r.str("division"),
		Conference:      r.str("conference"),
		Established:     r.integer("established"),
		HeadCoach:       r.str("headCoach"),
		Location:        r.str("location"),
		LogoURL:         r.str("logoUrl"),
		Name:            r.str("name"),
		Owners:          r.stringList("owners"),
		SeasonSummary:   r.str("seasonSummary"),
		StandingSummary: r.str("standingSummary"),
		WebsiteURL:      r.str("websiteUrl"),
	}
}

// PlayerFromDoc shapes a raw player document of either stored generation into
// the canonical nested contract.
func PlayerFromDoc(doc docstore.Document) Player {
	r := rawDoc(doc.Data)
	p := Player{
		ID:            docID(doc),
		FirstName:     r.str("firstName"),
		LastName:      r.str("lastName"),
		FullName:      r.str("fullName"),
		Age:           r.integer("age"),
		Height:        r.number("height"),
		Weight:        r.number("weight"),
		DisplayHeight: r.str("displayHeight"),
		DisplayWeight: r.str("displayWeight"),
		Slug:          r.str("slug"),
		Jersey:        r.str("jersey"),
		DateOfBirth:   r.str("dateOfBirth"),
		Status:        r.str("status"),
		Team:          r.str("team"),
	}

	if pos, ok := r.object("position"); ok {
		p.Position = Position{Name: pos.str("name"), Type: pos.str("type")}
	} else {
		p.Position = Position{Name: r.str("position"), Type: r.str("positionType")}
	}

	if hs, ok := r.object("headshot"); ok {
		p.Headshot = Headshot{Href: hs.str("href"), Alt: hs.str("alt")}
	} else if url := r.str("headshotUrl"); url != "" {
		p.Headshot = Headshot{Href: url, Alt: p.FullName}
	}

	if bp, ok := r.object("birthPlace"); ok {
		p.BirthPlace = BirthPlace{City: bp.str("city"), State: bp.str("state"), Country: bp.str("country")}
	} else {
		p.BirthPlace = splitBirthPlace(r.str("birthPlace"))
	}

	if exp, ok := r.object("experience"); ok {
		p.Experience = exp.integer("years")
	} else {
		p.Experience = r.integer("experience")
	}

	return p
}

// splitBirthPlace up-converts a legacy flat birth place ("Tyler, TX, USA")
// into the structured shape, best effort.
func splitBirthPlace(s string) BirthPlace {
	if s == "" {
		return BirthPlace{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 1:
		return BirthPlace{City: parts[0]}
	case 2:
		return BirthPlace{City: parts[0], State: parts[1]}
	default:
		return BirthPlace{City: parts[0], State: parts[1], Country: parts[2]}
	}
}

// ConferenceFromDoc shapes a raw conference document. Divisions are stored
// either as embedded {id, name} objects or as bare name strings.
func ConferenceFromDoc(doc docstore.Document) Conference {
	r := rawDoc(doc.Data)
	divisions := []Division{}
	for _, v := range r.list("divisions") {
		switch d := v.(type) {
		case map[string]any:
			divisions = append(divisions, Division{ID: rawDoc(d).str("id"), Name: rawDoc(d).str("name")})
		case string:
			divisions = append(divisions, Division{Name: d})
		}
	}
	return Conference{
		ID:           docID(doc),
		Name:         r.str("name"),
		Abbreviation: r.str("abbreviation"),
		Divisions:    divisions,
	}
}

// PositionTypeFromDoc shapes a raw position type document.
func PositionTypeFromDoc(doc docstore.Document) PositionType {
	r := rawDoc(doc.Data)
	return PositionType{
		ID:        docID(doc),
		Name:      r.str("name"),
		Positions: r.stringList("positions"),
	}
}

// ScheduleFromDoc shapes the current week document. Event dates are stored as
// {seconds, nanoseconds} pairs; only the seconds survive into the response.
func ScheduleFromDoc(doc docstore.Document) Schedule {
	r := rawDoc(doc.Data)
	schedule := Schedule{
		Season: r.integer("season"),
		Week:   r.integer("week"),
		Events: []Event{},
	}

	for _, v := range r.list("events") {
		raw, ok := v.(map[string]any)
		if !ok {
			continue
		}
		ev := rawDoc(raw)
		event := Event{
			ID:          ev.str("id"),
			Name:        ev.str("name"),
			Completed:   ev.boolean("completed"),
			Competitors: []Competitor{},
		}
		if date, ok := ev.object("date"); ok {
			event.Date = EventDate(time.UnixMilli(int64(date.number("seconds")) * 1000).UTC())
		}
		for _, c := range ev.list("competitors") {
			rawComp, ok := c.(map[string]any)
			if !ok {
				continue
			}
			comp := rawDoc(rawComp)
			competitor := Competitor{
				Score:  comp.integer("score"),
				Winner: comp.boolean("winner"),
			}
			if logo, ok := comp.object("teamLogo"); ok {
				competitor.TeamLogo = TeamLogo{Alt: logo.str("alt"), URL: logo.str("url")}
			}
			event.Competitors = append(event.Competitors, competitor)
		}
		schedule.Events = append(schedule.Events, event)
	}

	return schedule
}
