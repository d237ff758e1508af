package catalog

import (
	"os"
	"path/filepath"
	"testing"

	seederrors "booking-demo-seeder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	orgs := Default()
	require.Len(t, orgs, 5)
	assert.NoError(t, Validate(orgs))
}

func TestValidate(t *testing.T) {
	t.Run("empty catalogue rejected", func(t *testing.T) {
		err := Validate(nil)
		require.Error(t, err)
		assert.True(t, seederrors.IsCatalog(err))
	})

	t.Run("out of sequence ids rejected", func(t *testing.T) {
		orgs := Default()
		orgs[2].ID = 7
		err := Validate(orgs)
		require.Error(t, err)
		assert.True(t, seederrors.IsCatalog(err))
		assert.Contains(t, err.Error(), "out of sequence")
	})

	t.Run("duplicate domain rejected", func(t *testing.T) {
		orgs := Default()
		orgs[1].Domain = orgs[0].Domain
		err := Validate(orgs)
		require.Error(t, err)
		assert.True(t, seederrors.IsCatalog(err))
		assert.Contains(t, err.Error(), "duplicate organization domain")
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		orgs := Default()
		orgs[1].Name = orgs[0].Name
		err := Validate(orgs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate organization name")
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		orgs := Default()
		orgs[0].Domain = ""
		err := Validate(orgs)
		require.Error(t, err)
		assert.True(t, seederrors.IsCatalog(err))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("valid override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "organizations.yaml")
		yaml := `organizations:
  - id: 1
    name: Acme
    address: Keizersgracht 1, 1015 CN Amsterdam
    domain: acme.test
    phone_area: "20"
    team_prefix: Acme
    room_label: Canal Room
    event_desc: Quarterly planning sync.
  - id: 2
    name: Globex
    address: Stationsplein 2, 3013 AJ Rotterdam
    domain: globex.test
    phone_area: "10"
    team_prefix: Globex
    room_label: Harbour Room
    event_desc: Logistics review.
`
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

		orgs, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, orgs, 2)
		assert.Equal(t, "Acme", orgs[0].Name)
		assert.Equal(t, "globex.test", orgs[1].Domain)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid catalogue in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "organizations.yaml")
		require.NoError(t, os.WriteFile(path, []byte("organizations:\n  - id: 3\n    name: Lone\n"), 0o644))
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, seederrors.IsCatalog(err))
	})
}
