// Package catalog holds the fixed organization reference data every other
// entity indexes into. The built-in set matches the demo environment; a
// YAML file can swap it out wholesale, but the catalogue is immutable once
// validated.
package catalog

import (
	"fmt"
	"os"

	"booking-demo-seeder/internal/database/models"
	seederrors "booking-demo-seeder/internal/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML shape for a catalogue override.
type File struct {
	Organizations []models.Organization `yaml:"organizations"`
}

var validate = validator.New()

// Default returns the built-in organization catalogue.
func Default() []models.Organization {
	return []models.Organization{
		{
			ID:         1,
			Name:       "ASML",
			Address:    "De Run 6501, 5504 DR Veldhoven",
			Domain:     "asml.com",
			PhoneArea:  "40",
			TeamPrefix: "ASML",
			RoomLabel:  "Veldhoven Lab",
			EventDesc:  "Lithografie roadmap-sync met productlijnen.",
		},
		{
			ID:         2,
			Name:       "Philips",
			Address:    "High Tech Campus 52, 5656 AG Eindhoven",
			Domain:     "philips.com",
			PhoneArea:  "40",
			TeamPrefix: "Philips",
			RoomLabel:  "Innovation Hub",
			EventDesc:  "Health-tech concept review met clinical insights.",
		},
		{
			ID:         3,
			Name:       "Heineken",
			Address:    "Stadhouderskade 78, 1072 AE Amsterdam",
			Domain:     "heineken.com",
			PhoneArea:  "20",
			TeamPrefix: "Heineken",
			RoomLabel:  "Brew Lab",
			EventDesc:  "Brouwportfolio en merkactivatie afstemming.",
		},
		{
			ID:         4,
			Name:       "ING",
			Address:    "Bijlmerdreef 106, 1102 CT Amsterdam",
			Domain:     "ing.com",
			PhoneArea:  "20",
			TeamPrefix: "ING",
			RoomLabel:  "Orange Studio",
			EventDesc:  "Fintech release readiness en risk alignment.",
		},
		{
			ID:         5,
			Name:       "Bol.com",
			Address:    "Papendorpseweg 100, 3528 BJ Utrecht",
			Domain:     "bol.com",
			PhoneArea:  "30",
			TeamPrefix: "Bol.com",
			RoomLabel:  "Logistiek Studio",
			EventDesc:  "E-commerce fulfillment en campagneplanning.",
		},
	}
}

// LoadFile reads a catalogue override from a YAML file and validates it.
func LoadFile(path string) ([]models.Organization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := Validate(file.Organizations); err != nil {
		return nil, err
	}
	return file.Organizations, nil
}

// Validate checks the catalogue shape: per-entry struct tags plus the
// cross-entry rules the generators depend on (ids sequential from 1,
// unique names and domains). A failure here is a fatal precondition; the
// seeder must abort before touching the store.
func Validate(orgs []models.Organization) error {
	if len(orgs) == 0 {
		return seederrors.NewCatalogError("", "catalogue is empty")
	}

	names := make(map[string]bool, len(orgs))
	domains := make(map[string]bool, len(orgs))
	for i, org := range orgs {
		if err := validate.Struct(org); err != nil {
			return seederrors.NewCatalogError(org.Name, err.Error())
		}
		if org.ID != int64(i+1) {
			return seederrors.NewCatalogError(org.Name,
				fmt.Sprintf("id %d out of sequence, want %d", org.ID, i+1))
		}
		if names[org.Name] {
			return seederrors.NewCatalogError(org.Name, "duplicate organization name")
		}
		if domains[org.Domain] {
			return seederrors.NewCatalogError(org.Name, "duplicate organization domain")
		}
		names[org.Name] = true
		domains[org.Domain] = true
	}
	return nil
}
