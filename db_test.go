package charart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtDB(t *testing.T) {
	db, err := NewArtDB(filepath.Join(t.TempDir(), "charart.db"))
	require.NoError(t, err)
	defer db.Close()

	art, err := db.FindArtByCRC("CBF43926")
	require.NoError(t, err)
	assert.Empty(t, art)

	require.NoError(t, db.SetArt("CBF43926", "\x1b[0m█\n\x1b[0m"))

	art, err = db.FindArtByCRC("CBF43926")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[0m█\n\x1b[0m", art)

	// Replacing an entry keeps the CRC unique.
	require.NoError(t, db.SetArt("CBF43926", "updated"))

	art, err = db.FindArtByCRC("CBF43926")
	require.NoError(t, err)
	assert.Equal(t, "updated", art)
}
