package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/marioniya/nfl-api/internal/docstore"
	"github.com/marioniya/nfl-api/internal/league"
)

// Simplified config loading for the script
func dataDir() string {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	if dir, ok := os.LookupEnv("DATA_DIR"); ok {
		return dir
	}
	return "data"
}

func main() {
	log.Info("Starting document store seeder...")

	store, err := docstore.Open(dataDir())
	if err != nil {
		log.Fatalf("Failed to open document store: %s", err)
	}
	defer store.Close()

	ctx := context.Background()

	// A representative slice of the league. Players deliberately cover both
	// stored schema generations so the read path sees what production sees.
	teams := []docstore.Document{
		{ID: "KC", Data: map[string]any{
			"abbreviation": "KC", "color": "e31837", "division": "AFC West", "conference": "AFC",
			"established": 1960, "headCoach": "Andy Reid", "location": "Kansas City",
			"logoUrl": "https://a.espncdn.com/i/teamlogos/nfl/500/kc.png", "name": "Chiefs",
			"owners": []any{"Clark Hunt"}, "websiteUrl": "https://www.chiefs.com",
			"standingSummary": "1st in AFC West",
		}},
		{ID: "LV", Data: map[string]any{
			"abbreviation": "LV", "color": "000000", "division": "AFC West", "conference": "AFC",
			"established": 1960, "headCoach": "Antonio Pierce", "location": "Las Vegas",
			"logoUrl": "https://a.espncdn.com/i/teamlogos/nfl/500/lv.png", "name": "Raiders",
			"owners": []any{"Mark Davis"}, "websiteUrl": "https://www.raiders.com",
		}},
		{ID: "SF", Data: map[string]any{
			"abbreviation": "SF", "color": "aa0000", "division": "NFC West", "conference": "NFC",
			"established": 1946, "headCoach": "Kyle Shanahan", "location": "San Francisco",
			"logoUrl": "https://a.espncdn.com/i/teamlogos/nfl/500/sf.png", "name": "49ers",
			"owners": []any{"Denise DeBartolo York", "John York"}, "websiteUrl": "https://www.49ers.com",
		}},
		{ID: "DAL", Data: map[string]any{
			"abbreviation": "DAL", "color": "002a5c", "division": "NFC East", "conference": "NFC",
			"established": 1960, "headCoach": "Mike McCarthy", "location": "Dallas",
			"logoUrl": "https://a.espncdn.com/i/teamlogos/nfl/500/dal.png", "name": "Cowboys",
			"owners": []any{"Jerry Jones"}, "websiteUrl": "https://www.dallascowboys.com",
		}},
	}

	players := []docstore.Document{
		// Current generation: nested sub-objects.
		{ID: "3139477", Data: map[string]any{
			"firstName": "Patrick", "lastName": "Mahomes", "fullName": "Patrick Mahomes",
			"age": 29, "height": 74, "weight": 225, "displayHeight": `6' 2"`, "displayWeight": "225 lbs",
			"slug": "patrick-mahomes", "jersey": "15",
			"headshot":    map[string]any{"href": "https://a.espncdn.com/i/headshots/nfl/players/full/3139477.png", "alt": "Patrick Mahomes"},
			"dateOfBirth": "1995-09-17",
			"birthPlace":  map[string]any{"city": "Tyler", "state": "TX", "country": "USA"},
			"experience":  map[string]any{"years": 8},
			"position":    map[string]any{"name": "Quarterback", "type": "Offense"},
			"status":      "Active", "team": "KC",
		}},
		{ID: "4361741", Data: map[string]any{
			"firstName": "Brock", "lastName": "Purdy", "fullName": "Brock Purdy",
			"age": 24, "height": 73, "weight": 220, "displayHeight": `6' 1"`, "displayWeight": "220 lbs",
			"slug": "brock-purdy", "jersey": "13",
			"headshot":    map[string]any{"href": "https://a.espncdn.com/i/headshots/nfl/players/full/4361741.png", "alt": "Brock Purdy"},
			"dateOfBirth": "1999-12-27",
			"birthPlace":  map[string]any{"city": "Queen Creek", "state": "AZ", "country": "USA"},
			"experience":  map[string]any{"years": 3},
			"position":    map[string]any{"name": "Quarterback", "type": "Offense"},
			"status":      "Active", "team": "SF",
		}},
		// Legacy generation: flat fields.
		{ID: "15847", Data: map[string]any{
			"firstName": "Travis", "lastName": "Kelce", "fullName": "Travis Kelce",
			"age": 35, "height": 77, "weight": 250,
			"slug": "travis-kelce", "jersey": "87",
			"headshotUrl": "https://a.espncdn.com/i/headshots/nfl/players/full/15847.png",
			"dateOfBirth": "1989-10-05", "birthPlace": "Westlake, OH, USA",
			"experience": 12, "position": "Tight End", "positionType": "Offense",
			"status": "Active", "team": "KC",
		}},
		{ID: "4241457", Data: map[string]any{
			"firstName": "CeeDee", "lastName": "Lamb", "fullName": "CeeDee Lamb",
			"age": 25, "height": 74, "weight": 200,
			"slug": "ceedee-lamb", "jersey": "88",
			"headshotUrl": "https://a.espncdn.com/i/headshots/nfl/players/full/4241457.png",
			"dateOfBirth": "1999-04-08", "birthPlace": "Opelousas, LA, USA",
			"experience": 5, "position": "Wide Receiver", "positionType": "Offense",
			"status": "Active", "team": "DAL",
		}},
	}

	conferences := []docstore.Document{
		{ID: "afc", Data: map[string]any{
			"name": "American Football Conference", "abbreviation": "AFC",
			"divisions": []any{
				map[string]any{"id": "afc-east", "name": "AFC East"},
				map[string]any{"id": "afc-north", "name": "AFC North"},
				map[string]any{"id": "afc-south", "name": "AFC South"},
				map[string]any{"id": "afc-west", "name": "AFC West"},
			},
		}},
		// Legacy generation: bare division names.
		{ID: "nfc", Data: map[string]any{
			"name": "National Football Conference", "abbreviation": "NFC",
			"divisions": []any{"NFC East", "NFC North", "NFC South", "NFC West"},
		}},
	}

	positionTypes := []docstore.Document{
		{ID: "offense", Data: map[string]any{
			"name":      "Offense",
			"positions": []any{"Quarterback", "Running Back", "Fullback", "Wide Receiver", "Tight End", "Center", "Guard", "Offensive Tackle"},
		}},
		{ID: "defense", Data: map[string]any{
			"name":      "Defense",
			"positions": []any{"Defensive End", "Defensive Tackle", "Linebacker", "Cornerback", "Safety"},
		}},
		{ID: "special-teams", Data: map[string]any{
			"name":      "Special Teams",
			"positions": []any{"Kicker", "Punter", "Long Snapper"},
		}},
	}

	schedule := []docstore.Document{
		// The current week document is keyed by a generated id; the store key
		// is not meaningful for a singleton collection.
		{ID: uuid.NewString(), Data: map[string]any{
			"season": 2023,
			"week":   11,
			"events": []any{
				map[string]any{
					"id": "401547500", "name": "Kansas City Chiefs at Las Vegas Raiders", "completed": true,
					"date": map[string]any{"seconds": 1700000000, "nanoseconds": 0},
					"competitors": []any{
						map[string]any{"score": 31, "winner": true, "teamLogo": map[string]any{"alt": "Chiefs", "url": "https://a.espncdn.com/i/teamlogos/nfl/500/kc.png"}},
						map[string]any{"score": 17, "winner": false, "teamLogo": map[string]any{"alt": "Raiders", "url": "https://a.espncdn.com/i/teamlogos/nfl/500/lv.png"}},
					},
				},
				map[string]any{
					"id": "401547501", "name": "Dallas Cowboys at San Francisco 49ers", "completed": false,
					"date": map[string]any{"seconds": 1700354700, "nanoseconds": 0},
					"competitors": []any{
						map[string]any{"score": 0, "winner": false, "teamLogo": map[string]any{"alt": "Cowboys", "url": "https://a.espncdn.com/i/teamlogos/nfl/500/dal.png"}},
						map[string]any{"score": 0, "winner": false, "teamLogo": map[string]any{"alt": "49ers", "url": "https://a.espncdn.com/i/teamlogos/nfl/500/sf.png"}},
					},
				},
			},
		}},
	}

	seed := map[string][]docstore.Document{
		league.TeamsCollection:         teams,
		league.PlayersCollection:       players,
		league.ConferencesCollection:   conferences,
		league.PositionTypesCollection: positionTypes,
		league.ScheduleCollection:      schedule,
	}

	for collection, documents := range seed {
		if err := store.PutAll(ctx, collection, documents); err != nil {
			log.Fatalf("Failed to seed %s: %s", collection, err)
		}
		count, err := store.Count(ctx, collection)
		if err != nil {
			log.Fatalf("Failed to count %s: %s", collection, err)
		}
		log.Info("Seeded collection", "collection", collection, "documents", count)
	}

	log.Info("Seeding complete")
}
