package seed

import (
	"context"
	"fmt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// schema creates every table the API reads and writes. Statements are
// idempotent so the seeder can run against an existing database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS destinations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		cost_tier TEXT NOT NULL DEFAULT 'mid-range'
	)`,
	`CREATE TABLE IF NOT EXISTS landmarks (
		id BIGSERIAL PRIMARY KEY,
		destination_id TEXT NOT NULL REFERENCES destinations(id),
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS saved_destinations (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		destination_id TEXT NOT NULL REFERENCES destinations(id),
		UNIQUE (user_id, destination_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		destination_id TEXT NOT NULL REFERENCES destinations(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_landmarks_destination ON landmarks (destination_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_destination ON reviews (destination_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_user ON saved_destinations (user_id)`,
}

// Destinations is the curated catalog. Tags are a comma-joined bag mixing
// themes (romance, beach), trip scope (domestic, international) and traveler
// types (solo, couple, family, student); search matches them by substring.
var Destinations = []model.Destination{
	{ID: "goa001", Name: "Goa", City: "Goa", Country: "India", Description: "A coastal paradise known for its vibrant nightlife, serene beaches, and Portuguese heritage.", Tags: "beach,party,nightlife,relaxation,food,domestic,couple,student,family,solo", Lat: 15.345, Lon: 74.08, CostTier: "mid-range"},
	{ID: "udai001", Name: "Udaipur, City of Lakes", City: "Udaipur", Country: "India", Description: "A royal city of palaces and lakes, often called the Venice of the East.", Tags: "romance,history,culture,palace,lake,domestic,couple,family", Lat: 24.5854, Lon: 73.7125, CostTier: "luxury"},
	{ID: "rish001", Name: "Rishikesh", City: "Rishikesh", Country: "India", Description: "The yoga capital of the world, set on the banks of the Ganges in the Himalayan foothills.", Tags: "yoga,spiritual,adventure,rafting,mountain,domestic,solo,student", Lat: 30.0869, Lon: 78.2676, CostTier: "budget"},
	{ID: "manali001", Name: "Manali", City: "Manali", Country: "India", Description: "A high-altitude resort town famed for trekking, snow sports, and mountain scenery.", Tags: "mountain,adventure,trekking,snow,nature,domestic,couple,solo,student", Lat: 32.2396, Lon: 77.1887, CostTier: "budget"},
	{ID: "kera001", Name: "Kerala Backwaters", City: "Alleppey", Country: "India", Description: "A serene network of lagoons and canals best explored on a traditional houseboat.", Tags: "nature,relaxation,houseboat,backwaters,domestic,couple,family", Lat: 9.4981, Lon: 76.3388, CostTier: "mid-range"},
	{ID: "agra001", Name: "Agra", City: "Agra", Country: "India", Description: "Home of the Taj Mahal, the world's most famous monument to love.", Tags: "history,romance,unesco,architecture,domestic,couple,family,solo", Lat: 27.1767, Lon: 78.0081, CostTier: "budget"},
	{ID: "paris001", Name: "Paris", City: "Paris", Country: "France", Description: "The iconic \"City of Love,\" celebrated for its world-class art, fashion, gastronomy, and historic landmarks.", Tags: "romance,art,luxury,food,history,sightseeing,unesco,international,couple,family,solo,student", Lat: 48.8566, Lon: 2.3522, CostTier: "luxury"},
	{ID: "rome001", Name: "Rome", City: "Rome", Country: "Italy", Description: "A city steeped in 3,000 years of history, from the ancient Colosseum to the splendor of the Vatican.", Tags: "history,art,culture,food,sightseeing,unesco,international,couple,family,solo,student", Lat: 41.9028, Lon: 12.4964, CostTier: "mid-range"},
	{ID: "london001", Name: "London", City: "London", Country: "UK", Description: "A global hub of history, culture, and finance, where royal tradition meets modern energy.", Tags: "history,culture,sightseeing,shopping,metropolis,art,international,family,couple,student,solo", Lat: 51.5074, Lon: -0.1278, CostTier: "luxury"},
	{ID: "barca001", Name: "Barcelona", City: "Barcelona", Country: "Spain", Description: "A masterpiece of architectural wonders by Gaudí, combined with sun-soaked beaches and a vibrant culinary scene.", Tags: "art,architecture,party,beach,food,international,couple,student,solo,family", Lat: 41.3851, Lon: 2.1734, CostTier: "mid-range"},
	{ID: "prague001", Name: "Prague", City: "Prague", Country: "Czech Republic", Description: "A fairytale city of a hundred spires, with a medieval Old Town Square and the historic Charles Bridge.", Tags: "history,culture,architecture,romance,castle,unesco,international,couple,student,solo", Lat: 50.0755, Lon: 14.4378, CostTier: "budget"},
	{ID: "venice001", Name: "Venice", City: "Venice", Country: "Italy", Description: "A unique and timelessly romantic city of canals, gondolas, and magnificent Renaissance architecture.", Tags: "romance,history,art,culture,sightseeing,unesco,international,couple,solo", Lat: 45.4408, Lon: 12.3155, CostTier: "luxury"},
	{ID: "santorini001", Name: "Santorini", City: "Fira", Country: "Greece", Description: "A breathtaking volcanic island known for its cliffside white-washed villages and dramatic sunsets over the Aegean Sea.", Tags: "romance,beach,luxury,relaxation,sightseeing,international,couple,honeymoon", Lat: 36.3932, Lon: 25.4615, CostTier: "luxury"},
	{ID: "interlaken001", Name: "Interlaken", City: "Interlaken", Country: "Switzerland", Description: "Nestled between two emerald lakes, this town is the ultimate gateway for alpine adventures and stunning hikes.", Tags: "mountain,adventure,nature,hiking,lake,international,solo,student,couple", Lat: 46.6863, Lon: 7.8632, CostTier: "luxury"},
	{ID: "reykjavik001", Name: "Reykjavik", City: "Reykjavik", Country: "Iceland", Description: "The gateway to Iceland's otherworldly landscapes of glaciers, geysers, and the magical Northern Lights.", Tags: "nature,adventure,northern-lights,lagoons,road-trip,international,solo,student,couple", Lat: 64.1466, Lon: -21.9426, CostTier: "luxury"},
	{ID: "lisbon001", Name: "Lisbon", City: "Lisbon", Country: "Portugal", Description: "A coastal capital of colorful tiled buildings, historic trams, and melancholic Fado music.", Tags: "history,culture,food,coast,city-trip,international,couple,solo,student", Lat: 38.7223, Lon: -9.1393, CostTier: "budget"},
	{ID: "budapest001", Name: "Budapest", City: "Budapest", Country: "Hungary", Description: "The \"Pearl of the Danube,\" known for its stunning parliament building, historic thermal baths, and vibrant ruin bars.", Tags: "history,culture,thermal-baths,architecture,party,international,student,couple,solo", Lat: 47.4979, Lon: 19.0402, CostTier: "budget"},
	{ID: "kyoto001", Name: "Kyoto", City: "Kyoto", Country: "Japan", Description: "Japan's former imperial capital, home to serene temples, traditional teahouses, and blossoming gardens.", Tags: "history,culture,temple,nature,unesco,international,couple,solo,family", Lat: 35.0116, Lon: 135.7681, CostTier: "mid-range"},
	{ID: "tokyo001", Name: "Tokyo", City: "Tokyo", Country: "Japan", Description: "A dazzling metropolis where ultramodern neon districts sit beside historic shrines and gardens.", Tags: "metropolis,food,culture,shopping,technology,international,solo,couple,student,family", Lat: 35.6762, Lon: 139.6503, CostTier: "luxury"},
	{ID: "bali001", Name: "Bali", City: "Denpasar", Country: "Indonesia", Description: "An island paradise of volcanic beaches, terraced rice fields, and spiritual temple ceremonies.", Tags: "beach,relaxation,spiritual,nature,surfing,international,couple,solo,honeymoon", Lat: -8.3405, Lon: 115.092, CostTier: "budget"},
	{ID: "bkk001", Name: "Bangkok", City: "Bangkok", Country: "Thailand", Description: "A vibrant capital of ornate shrines, floating markets, and legendary street food.", Tags: "food,culture,nightlife,temple,shopping,international,student,solo,couple", Lat: 13.7563, Lon: 100.5018, CostTier: "budget"},
	{ID: "nyc001", Name: "New York City", City: "New York", Country: "USA", Description: "The city that never sleeps, packed with world-famous museums, Broadway shows, and iconic skylines.", Tags: "metropolis,art,culture,food,shopping,sightseeing,international,solo,couple,family,student", Lat: 40.7128, Lon: -74.006, CostTier: "luxury"},
	{ID: "queenstown001", Name: "Queenstown", City: "Queenstown", Country: "New Zealand", Description: "The adventure capital of the world, set against the dramatic Remarkables mountain range.", Tags: "adventure,mountain,bungee,skiing,nature,international,solo,student,couple", Lat: -45.0312, Lon: 168.6626, CostTier: "luxury"},
	{ID: "marrakech001", Name: "Marrakech", City: "Marrakech", Country: "Morocco", Description: "A sensory feast of souks, palaces, and gardens at the edge of the Sahara.", Tags: "culture,history,market,desert,food,international,couple,solo", Lat: 31.6295, Lon: -7.9811, CostTier: "mid-range"},
}

// Landmarks is the curated must-see list keyed by destination.
var Landmarks = []model.Landmark{
	{DestinationID: "paris001", Name: "Eiffel Tower", Category: model.CategoryAttraction, Address: "Champ de Mars, 5 Av. Anatole France, 75007 Paris, France", Lat: 48.8584, Lon: 2.2945},
	{DestinationID: "paris001", Name: "Louvre Museum", Category: model.CategoryAttraction, Address: "Rue de Rivoli, 75001 Paris, France", Lat: 48.8606, Lon: 2.3376},
	{DestinationID: "paris001", Name: "Notre-Dame Cathedral", Category: model.CategoryAttraction, Address: "6 Parvis Notre-Dame - Pl. Jean-Paul II, 75004 Paris, France", Lat: 48.853, Lon: 2.3499},
	{DestinationID: "paris001", Name: "Le Procope", Category: model.CategoryRestaurant, Address: "13 Rue de l'Ancienne Comédie, 75006 Paris, France", Lat: 48.8533, Lon: 2.3387},
	{DestinationID: "rome001", Name: "Colosseum", Category: model.CategoryAttraction, Address: "Piazza del Colosseo, 1, 00184 Roma RM, Italy", Lat: 41.8902, Lon: 12.4922},
	{DestinationID: "rome001", Name: "Pantheon", Category: model.CategoryAttraction, Address: "Piazza della Rotonda, 00186 Roma RM, Italy", Lat: 41.8986, Lon: 12.4769},
	{DestinationID: "rome001", Name: "Trevi Fountain", Category: model.CategoryAttraction, Address: "Piazza di Trevi, 00187 Roma RM, Italy", Lat: 41.9009, Lon: 12.4833},
	{DestinationID: "rome001", Name: "Roscioli Salumeria con Cucina", Category: model.CategoryRestaurant, Address: "Via dei Giubbonari, 21, 00186 Roma RM, Italy", Lat: 41.8943, Lon: 12.4725},
	{DestinationID: "london001", Name: "The British Museum", Category: model.CategoryAttraction, Address: "Great Russell St, London WC1B 3DG, UK", Lat: 51.5194, Lon: -0.127},
	{DestinationID: "london001", Name: "Tower of London", Category: model.CategoryAttraction, Address: "London EC3N 4AB, UK", Lat: 51.5081, Lon: -0.0759},
	{DestinationID: "london001", Name: "Dishoom Covent Garden", Category: model.CategoryRestaurant, Address: "12 Upper St Martin's Ln, London WC2H 9FB, UK", Lat: 51.5126, Lon: -0.1264},
	{DestinationID: "barca001", Name: "La Sagrada Familia", Category: model.CategoryAttraction, Address: "C/ de Mallorca, 401, 08013 Barcelona, Spain", Lat: 41.4036, Lon: 2.1744},
	{DestinationID: "barca001", Name: "Park Güell", Category: model.CategoryAttraction, Address: "08024 Barcelona, Spain", Lat: 41.4145, Lon: 2.1527},
	{DestinationID: "tokyo001", Name: "Senso-ji Temple", Category: model.CategoryAttraction, Address: "2 Chome-3-1 Asakusa, Taito City, Tokyo, Japan", Lat: 35.7148, Lon: 139.7967},
	{DestinationID: "tokyo001", Name: "Sukiyabashi Jiro", Category: model.CategoryRestaurant, Address: "Tsukamoto Sogyo Building, 2 Chome-15 Ginza, Chuo City, Tokyo, Japan", Lat: 35.6717, Lon: 139.7636},
	{DestinationID: "goa001", Name: "Basilica of Bom Jesus", Category: model.CategoryAttraction, Address: "Old Goa Rd, Bainguinim, Goa 403402, India", Lat: 15.5009, Lon: 73.9116},
	{DestinationID: "goa001", Name: "Fisherman's Wharf", Category: model.CategoryRestaurant, Address: "Near Mobor Beach, Cavelossim, Goa, India", Lat: 15.1518, Lon: 73.9437},
	{DestinationID: "agra001", Name: "Taj Mahal", Category: model.CategoryAttraction, Address: "Dharmapuri, Forest Colony, Tajganj, Agra, India", Lat: 27.1751, Lon: 78.0421},
}

// Apply creates the schema and loads the curated catalog. Destination and
// landmark inserts use ON CONFLICT DO NOTHING so re-running is safe.
func Apply(ctx context.Context, db database.Querier) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seed schema: %w", err)
		}
	}

	for _, d := range Destinations {
		_, err := db.Exec(ctx, `
			INSERT INTO destinations (id, name, city, country, description, tags, lat, lon, cost_tier)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			d.ID, d.Name, d.City, d.Country, d.Description, d.Tags, d.Lat, d.Lon, d.CostTier)
		if err != nil {
			return fmt.Errorf("seed destination %s: %w", d.ID, err)
		}
	}

	for _, l := range Landmarks {
		exists, err := landmarkExists(ctx, db, l)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = db.Exec(ctx, `
			INSERT INTO landmarks (destination_id, name, category, address, lat, lon)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			l.DestinationID, l.Name, l.Category, l.Address, l.Lat, l.Lon)
		if err != nil {
			return fmt.Errorf("seed landmark %s: %w", l.Name, err)
		}
	}

	return nil
}

func landmarkExists(ctx context.Context, db database.Querier, l model.Landmark) (bool, error) {
	row := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM landmarks WHERE destination_id = $1 AND name = $2
		)`, l.DestinationID, l.Name)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("seed landmark check: %w", err)
	}
	return exists, nil
}
