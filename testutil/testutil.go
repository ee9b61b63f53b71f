package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// RandomBytes produces n pseudo-random bytes.
func RandomBytes(t *testing.T, n int) []byte {
	prng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	_, err := prng.Read(b)
	require.NoError(t, err)
	return b
}

// TempFileWith writes data to a new file under t.TempDir and returns its
// path.
func TempFileWith(t *testing.T, data []byte) string {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
