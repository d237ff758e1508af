// Package generator fabricates the in-memory record sets the loader
// persists. Partitioning across organizations is deterministic (round-robin
// by index for users, teams and events; even split with remainder for
// rooms); only the membership sampling steps are random, and those run off
// two independently seeded sources so results reproduce run-to-run.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"booking-demo-seeder/internal/credentials"
	"booking-demo-seeder/internal/database/models"
	seederrors "booking-demo-seeder/internal/errors"
	"booking-demo-seeder/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// Default generation tunables. These are compile-time configuration, not
// runtime flags; the demo environment expects exactly this shape.
const (
	DefaultUserCount  = 80
	DefaultRoomCount  = 40
	DefaultTeamCount  = 30
	DefaultEventCount = 50

	// Independent seeds so reseeding team composition does not perturb
	// event composition, and vice versa.
	DefaultTeamSeed  = 42
	DefaultEventSeed = 84

	// Every event runs exactly this long.
	EventDuration = 2*time.Hour + 30*time.Minute
)

// Params bundles the generation tunables so tests can shrink the shape.
type Params struct {
	UserCount  int
	RoomCount  int
	TeamCount  int
	EventCount int

	TeamSeed  int64
	EventSeed int64

	EventBaseStart time.Time
	EventDuration  time.Duration

	// bcrypt cost for user password hashes; tests dial this down.
	BcryptCost int
}

// DefaultParams returns the production generation shape.
func DefaultParams() Params {
	return Params{
		UserCount:      DefaultUserCount,
		RoomCount:      DefaultRoomCount,
		TeamCount:      DefaultTeamCount,
		EventCount:     DefaultEventCount,
		TeamSeed:       DefaultTeamSeed,
		EventSeed:      DefaultEventSeed,
		EventBaseStart: time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC),
		EventDuration:  EventDuration,
		BcryptCost:     bcrypt.DefaultCost,
	}
}

// Dataset holds one generation run's worth of records, ready for the
// loader, plus the per-organization id pools the samplers drew from.
type Dataset struct {
	Organizations []models.Organization
	Users         []models.User
	Rooms         []models.Room
	Teams         []models.Team
	Events        []models.Event
	Attendees     []models.Attendee

	// Cleartext credentials for the post-commit report. Never persisted.
	Credentials []credentials.Record

	usersByOrg map[int64][]int64
	roomsByOrg map[int64][]int64
}

// UserPool returns the user ids generated for an organization.
func (d *Dataset) UserPool(orgID int64) []int64 {
	return d.usersByOrg[orgID]
}

// RoomPool returns the room ids generated for an organization.
func (d *Dataset) RoomPool(orgID int64) []int64 {
	return d.roomsByOrg[orgID]
}

// Generate produces a complete, internally consistent dataset for the given
// organization catalogue. The catalogue must already be validated; an
// undersized sampling pool aborts the whole run with a PoolTooSmallError.
func Generate(log *logger.Logger, orgs []models.Organization, p Params) (*Dataset, error) {
	if len(orgs) == 0 {
		return nil, seederrors.ErrEmptyDataset
	}

	ds := &Dataset{
		Organizations: orgs,
		usersByOrg:    make(map[int64][]int64, len(orgs)),
		roomsByOrg:    make(map[int64][]int64, len(orgs)),
	}

	if err := ds.buildUsers(orgs, p); err != nil {
		return nil, fmt.Errorf("build users: %w", err)
	}
	ds.buildRooms(orgs, p)
	if err := ds.buildTeams(orgs, p); err != nil {
		return nil, fmt.Errorf("build teams: %w", err)
	}
	if err := ds.buildEvents(orgs, p); err != nil {
		return nil, fmt.Errorf("build events: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"organizations": len(ds.Organizations),
		"users":         len(ds.Users),
		"rooms":         len(ds.Rooms),
		"teams":         len(ds.Teams),
		"events":        len(ds.Events),
		"attendees":     len(ds.Attendees),
	}).Info("Dataset generated")

	return ds, nil
}

// buildUsers assigns users round-robin across the catalogue, cycling the
// name and title pools by index. The numeric id embedded in the email
// guarantees uniqueness regardless of pool size.
func (ds *Dataset) buildUsers(orgs []models.Organization, p Params) error {
	roles := models.Roles()
	ds.Users = make([]models.User, 0, p.UserCount)
	ds.Credentials = make([]credentials.Record, 0, p.UserCount)

	for idx := 1; idx <= p.UserCount; idx++ {
		org := orgs[(idx-1)%len(orgs)]
		first := firstNames[(idx-1)%len(firstNames)]
		last := lastNames[(idx-1)%len(lastNames)]
		name := first + " " + last
		email := fmt.Sprintf("%s.%s%d@%s", emailToken(first), emailToken(last), idx, org.Domain)
		phone := fmt.Sprintf("+31 %s %03d %04d", org.PhoneArea, 500+(idx%400), 1000+idx)

		password, err := credentials.GeneratePassword()
		if err != nil {
			return fmt.Errorf("generate password for user %d: %w", idx, err)
		}
		hash, err := credentials.HashPassword(password, p.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for user %d: %w", idx, err)
		}

		ds.Users = append(ds.Users, models.User{
			ID:             int64(idx),
			Name:           name,
			Role:           roles[idx%len(roles)],
			Email:          email,
			PhoneNumber:    phone,
			PasswordHash:   hash,
			OrganizationID: org.ID,
			JobTitle:       jobTitles[idx%len(jobTitles)],
		})
		ds.Credentials = append(ds.Credentials, credentials.Record{
			UserID:   int64(idx),
			Email:    email,
			Password: password,
		})
		ds.usersByOrg[org.ID] = append(ds.usersByOrg[org.ID], int64(idx))
	}
	return nil
}

// buildRooms splits the room count as evenly as possible, with the
// remainder going to the first organizations in catalogue order. Capacity
// is a pure function of the room index and always lands in [8, 31].
func (ds *Dataset) buildRooms(orgs []models.Organization, p Params) {
	base := p.RoomCount / len(orgs)
	extra := p.RoomCount % len(orgs)

	ds.Rooms = make([]models.Room, 0, p.RoomCount)
	roomID := int64(1)
	for i, org := range orgs {
		count := base
		if i < extra {
			count++
		}
		for j := 0; j < count; j++ {
			capacity := 8 + int(roomID+int64(j))*3%24
			ds.Rooms = append(ds.Rooms, models.Room{
				ID:             roomID,
				Capacity:       capacity,
				Location:       fmt.Sprintf("%s %02d", org.RoomLabel, j+1),
				OrganizationID: org.ID,
			})
			ds.roomsByOrg[org.ID] = append(ds.roomsByOrg[org.ID], roomID)
			roomID++
		}
	}
}

// buildTeams samples 4-6 members per team from the team's organization
// pool, without replacement. The first sampled member is the lead. A user
// may sit on several teams; there is deliberately no cross-team uniqueness.
func (ds *Dataset) buildTeams(orgs []models.Organization, p Params) error {
	r := rand.New(rand.NewSource(p.TeamSeed))

	ds.Teams = make([]models.Team, 0, p.TeamCount)
	for idx := 1; idx <= p.TeamCount; idx++ {
		org := orgs[(idx-1)%len(orgs)]
		pool := ds.usersByOrg[org.ID]
		memberCount := 4 + idx%3

		members, err := sampleIDs(r, "team member", pool, memberCount)
		if err != nil {
			return fmt.Errorf("team %d (%s): %w", idx, org.Name, err)
		}

		ds.Teams = append(ds.Teams, models.Team{
			ID:        int64(idx),
			Name:      fmt.Sprintf("%s Team %02d", org.TeamPrefix, idx),
			LeadID:    members[0],
			MemberIDs: models.IDList(members),
		})
	}
	return nil
}

// buildEvents schedules events off a fixed base timestamp with day and hour
// offsets derived from the event index, samples 5-8 attendees and 1-2 rooms
// from the event's organization pools, and picks the organizer from among
// the attendees.
func (ds *Dataset) buildEvents(orgs []models.Organization, p Params) error {
	r := rand.New(rand.NewSource(p.EventSeed))

	ds.Events = make([]models.Event, 0, p.EventCount)
	ds.Attendees = make([]models.Attendee, 0, p.EventCount*8)
	for idx := 1; idx <= p.EventCount; idx++ {
		org := orgs[(idx-1)%len(orgs)]

		dayOffset := idx / 2
		hourOffset := (idx % 4) * 2
		start := p.EventBaseStart.AddDate(0, 0, dayOffset).Add(time.Duration(hourOffset) * time.Hour)
		end := start.Add(p.EventDuration)

		attendeeCount := 5 + idx%4
		attendees, err := sampleIDs(r, "event attendee", ds.usersByOrg[org.ID], attendeeCount)
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", idx, org.Name, err)
		}
		organizer := attendees[r.Intn(len(attendees))]

		roomCount := 1
		if idx%3 == 0 {
			roomCount = 2
		}
		roomIDs, err := sampleIDs(r, "event room", ds.roomsByOrg[org.ID], roomCount)
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", idx, org.Name, err)
		}
		sort.Slice(roomIDs, func(i, j int) bool { return roomIDs[i] < roomIDs[j] })

		ds.Events = append(ds.Events, models.Event{
			ID:          int64(idx),
			StartTime:   start,
			EndTime:     end,
			Description: org.EventDesc,
			Name:        fmt.Sprintf("Planningsmoment #%03d", idx),
			OrganizerID: organizer,
			RoomIDs:     models.IDList(roomIDs),
		})
		for _, userID := range attendees {
			ds.Attendees = append(ds.Attendees, models.Attendee{
				EventID: int64(idx),
				UserID:  userID,
			})
		}
	}
	return nil
}

// emailToken normalizes a name fragment for use in an email local part.
func emailToken(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}
