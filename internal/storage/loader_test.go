package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts-book/internal/models"
)

const sampleBundle = `{
  "contacts": [
    {
      "firstName": "Jane",
      "lastName": "Doe",
      "phone": "5551234",
      "email": "jane@example.com",
      "address": {"street": "1 Elm St", "apartment": "2B", "city": "Austin", "state": "Texas", "zipcode": "73301"},
      "emergency": "true"
    }
  ]
}`

func TestDecodeBundle(t *testing.T) {
	contacts, err := DecodeBundle(strings.NewReader(sampleBundle))
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	c := contacts[0]
	assert.Equal(t, "Jane Doe", c.CollationString())
	assert.Equal(t, "Texas", c.Value(models.FieldState))
	assert.Equal(t, "73301", c.Value(models.FieldZipcode))
	assert.True(t, c.IsEmergencyContact())
}

func TestDecodeBundleMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"not json":       "{contacts",
		"missing array":  `{"people": []}`,
		"wrong type":     `{"contacts": [{"firstName": 3}]}`,
		"empty document": "",
	} {
		t.Run(name, func(t *testing.T) {
			contacts, err := DecodeBundle(strings.NewReader(input))
			require.ErrorIs(t, err, ErrMalformedBundle)
			assert.Empty(t, contacts)
		})
	}

	contacts, err := DecodeBundle(strings.NewReader(`{"contacts": []}`))
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestFileBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleBundle), 0o644))

	contacts, err := FileBundle(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	_, err = FileBundle(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmbeddedBundleIsValid(t *testing.T) {
	contacts, err := EmbeddedBundle().Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, contacts)
	for _, c := range contacts {
		assert.True(t, models.IsSavable(c), c.DebugString())
	}
}

func TestSQLiteSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE contacts (
		first_name TEXT, last_name TEXT, phone TEXT, email TEXT, street TEXT,
		apartment TEXT, city TEXT, state TEXT, zipcode TEXT, emergency TEXT
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO contacts VALUES
		('Jane', 'Doe', '5551234', 'jane@example.com', '1 Elm St', '2B', 'Austin', 'Texas', '73301', 'true'),
		('Bob', NULL, NULL, NULL, NULL, NULL, NULL, NULL, NULL, NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	contacts, err := SQLiteSeed(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, "Texas", contacts[0].Value(models.FieldState))
	assert.True(t, contacts[0].IsEmergencyContact())

	_, ok := contacts[1].Lookup(models.FieldLastName)
	assert.False(t, ok, "NULL columns leave the field unset")
	assert.True(t, models.IsSavable(contacts[1]))
}

func TestSQLiteSeedMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	contacts, err := SQLiteSeed(path).Load(context.Background())
	require.Error(t, err)
	assert.Empty(t, contacts)
}
