package wasmhost

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// emptyModule is the smallest valid module: magic and version only.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func region(msg []byte, errMsg string) []byte {
	out := make([]byte, regionHeader, regionHeader+len(msg)+len(errMsg))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(msg)))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(errMsg)))
	out = append(out, msg...)
	return append(out, errMsg...)
}

func TestNewRejectsModuleWithoutExports(t *testing.T) {
	_, err := New(context.Background(), emptyModule)
	require.ErrorIs(t, err, ErrMissingExport)
}

func TestNewRejectsInvalidBytes(t *testing.T) {
	_, err := New(context.Background(), []byte("not wasm"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "compile module")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.wasm"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.wasm")
	require.NoError(t, os.WriteFile(path, emptyModule, 0o600))
	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, ErrMissingExport)
}

func TestSplitRegionMessage(t *testing.T) {
	r := region([]byte{1, 2, 3}, "")
	msg, signal, err := splitRegion(r)
	require.NoError(t, err)
	require.Empty(t, signal)
	require.Equal(t, []byte{1, 2, 3}, msg)

	r[regionHeader] = 9
	require.Equal(t, byte(1), msg[0])
}

func TestSplitRegionEmptyMessageIsPresent(t *testing.T) {
	msg, signal, err := splitRegion(region(nil, ""))
	require.NoError(t, err)
	require.Empty(t, signal)
	require.NotNil(t, msg)
	require.Len(t, msg, 0)
}

func TestSplitRegionSignal(t *testing.T) {
	_, signal, err := splitRegion(region(nil, "unknown operation"))
	require.NoError(t, err)
	require.Equal(t, "unknown operation", signal)
}

func TestSplitRegionMalformed(t *testing.T) {
	_, _, err := splitRegion([]byte{1, 2})
	require.ErrorIs(t, err, ErrBadRegion)

	r := region([]byte{1, 2, 3}, "")
	_, _, err = splitRegion(r[:len(r)-1])
	require.ErrorIs(t, err, ErrBadRegion)
}
