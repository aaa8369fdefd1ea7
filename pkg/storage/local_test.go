package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempDisk(t *testing.T) *localDisk {
	t.Helper()
	return &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/uploads"}
}

func TestLocalDiskRoundTrip(t *testing.T) {
	d := newTempDisk(t)

	require.NoError(t, d.PutStream("ab12_cover.png", strings.NewReader("png-bytes")))
	assert.True(t, d.Exists("ab12_cover.png"))

	data, err := d.Get("ab12_cover.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	size, err := d.Size("ab12_cover.png")
	require.NoError(t, err)
	assert.EqualValues(t, len("png-bytes"), size)

	require.NoError(t, d.Delete("ab12_cover.png"))
	assert.False(t, d.Exists("ab12_cover.png"))
}

func TestLocalDiskPutOverwrites(t *testing.T) {
	d := newTempDisk(t)

	require.NoError(t, d.Put("a.png", []byte("old")))
	require.NoError(t, d.Put("a.png", []byte("new")))

	data, err := d.Get("a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestLocalDiskDeleteMissingIsNoop(t *testing.T) {
	d := newTempDisk(t)
	assert.NoError(t, d.Delete("never-existed.png"))
}

func TestLocalDiskURL(t *testing.T) {
	d := newTempDisk(t)
	assert.Equal(t, "http://localhost:8080/uploads/ab12_cover.png", d.URL("ab12_cover.png"))
	assert.Equal(t, "http://localhost:8080/uploads/sub/x.jpg", d.URL("/sub/x.jpg"))
}

func TestLocalDiskListing(t *testing.T) {
	d := newTempDisk(t)
	require.NoError(t, d.Put("top.png", []byte("a")))
	require.NoError(t, d.Put("sub/deep.jpg", []byte("b")))

	files, err := d.Files("")
	require.NoError(t, err)
	assert.Equal(t, []string{"top.png"}, files)

	all, err := d.AllFiles("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top.png", "sub/deep.jpg"}, all)
}
