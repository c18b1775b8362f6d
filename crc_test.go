package charart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRCFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(file, []byte("123456789"), 0o644))

	crc, err := crcFile(file)
	require.NoError(t, err)

	// Standard IEEE check value for "123456789".
	assert.Equal(t, "CBF43926", crc)
}

func TestCRCFileMissing(t *testing.T) {
	_, err := crcFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
