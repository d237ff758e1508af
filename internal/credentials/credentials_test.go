package credentials

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	seederrors "booking-demo-seeder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGeneratePassword(t *testing.T) {
	t.Run("fixed length from the defined alphabet", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			pw, err := GeneratePassword()
			require.NoError(t, err)
			assert.Len(t, pw, PasswordLength)
			for _, c := range pw {
				assert.True(t, strings.ContainsRune(passwordAlphabet, c),
					"character %q outside alphabet", c)
			}
		}
	})

	t.Run("successive passwords differ", func(t *testing.T) {
		a, err := GeneratePassword()
		require.NoError(t, err)
		b, err := GeneratePassword()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestHashPassword(t *testing.T) {
	pw, err := GeneratePassword()
	require.NoError(t, err)

	hash, err := HashPassword(pw, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, pw, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestWriteReport(t *testing.T) {
	records := []Record{
		{UserID: 1, Email: "anouk.aalbers1@acme.test", Password: "s3cret!!s3cr"},
		{UserID: 2, Email: "bram.bakker2@globex.test", Password: "an0ther?pass"},
	}

	t.Run("writes header and one row per user", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "generated_passwords.csv")
		require.NoError(t, WriteReport(path, records))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, len(records)+1)
		assert.Equal(t, []string{"user_id", "email", "password"}, rows[0])
		assert.Equal(t, []string{"1", "anouk.aalbers1@acme.test", "s3cret!!s3cr"}, rows[1])
		assert.Equal(t, []string{"2", "bram.bakker2@globex.test", "an0ther?pass"}, rows[2])
	})

	t.Run("unwritable path returns a report error", func(t *testing.T) {
		err := WriteReport(filepath.Join(t.TempDir(), "missing", "report.csv"), records)
		require.Error(t, err)
		assert.True(t, seederrors.IsReport(err))
	})
}
