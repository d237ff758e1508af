package testutils

import (
	"time"

	"booking-demo-seeder/internal/database/models"
	"booking-demo-seeder/internal/generator"

	"golang.org/x/crypto/bcrypt"
)

// TinyCatalog returns a two-organization catalogue for tests that do not
// need the full built-in set.
func TinyCatalog() []models.Organization {
	return []models.Organization{
		{
			ID:         1,
			Name:       "Acme",
			Address:    "Keizersgracht 1, 1015 CN Amsterdam",
			Domain:     "acme.test",
			PhoneArea:  "20",
			TeamPrefix: "Acme",
			RoomLabel:  "Canal Room",
			EventDesc:  "Quarterly planning sync.",
		},
		{
			ID:         2,
			Name:       "Globex",
			Address:    "Stationsplein 2, 3013 AJ Rotterdam",
			Domain:     "globex.test",
			PhoneArea:  "10",
			TeamPrefix: "Globex",
			RoomLabel:  "Harbour Room",
			EventDesc:  "Logistics review.",
		},
	}
}

// TinyParams returns a shrunken generation shape that still exercises every
// entity type. MinCost keeps the bcrypt step from dominating test time.
func TinyParams() generator.Params {
	return generator.Params{
		UserCount:      16,
		RoomCount:      5,
		TeamCount:      4,
		EventCount:     6,
		TeamSeed:       generator.DefaultTeamSeed,
		EventSeed:      generator.DefaultEventSeed,
		EventBaseStart: time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC),
		EventDuration:  generator.EventDuration,
		BcryptCost:     bcrypt.MinCost,
	}
}
