package engine

import (
	"crypto"
	"testing"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp/packet"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

func keyOptions(build func(b *flatbuffers.Builder)) *model.KeyOptions {
	b := flatbuffers.NewBuilder(32)
	model.KeyOptionsStart(b)
	build(b)
	b.Finish(model.KeyOptionsEnd(b))
	return model.GetRootAsKeyOptions(b.FinishedBytes(), 0)
}

func TestPacketConfigDefaults(t *testing.T) {
	cfg := New().packetConfig(nil)
	require.Equal(t, defaultRSABits, cfg.RSABits)
	require.Equal(t, crypto.SHA256, cfg.DefaultHash)
	require.Equal(t, packet.CipherAES128, cfg.DefaultCipher)
	require.Equal(t, packet.CompressionNone, cfg.DefaultCompressionAlgo)
	require.Nil(t, cfg.CompressionConfig)
}

func TestPacketConfigMapsEveryOption(t *testing.T) {
	o := keyOptions(func(b *flatbuffers.Builder) {
		model.KeyOptionsAddHash(b, model.HashSHA384)
		model.KeyOptionsAddCipher(b, model.CipherAES192)
		model.KeyOptionsAddCompression(b, model.CompressionZIP)
		model.KeyOptionsAddCompressionLevel(b, 0)
		model.KeyOptionsAddRsaBits(b, 3072)
	})
	cfg := New().packetConfig(o)
	require.Equal(t, crypto.SHA384, cfg.DefaultHash)
	require.Equal(t, packet.CipherAES192, cfg.DefaultCipher)
	require.Equal(t, packet.CompressionZIP, cfg.DefaultCompressionAlgo)
	require.NotNil(t, cfg.CompressionConfig)
	require.Equal(t, 0, cfg.CompressionConfig.Level)
	require.Equal(t, 3072, cfg.RSABits)
}

func TestPacketConfigUsesClock(t *testing.T) {
	at := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	cfg := New(WithClock(func() time.Time { return at })).packetConfig(nil)
	require.Equal(t, at, cfg.Now())
}

func TestFileHintsParsing(t *testing.T) {
	build := func(mod string) *model.FileHints {
		b := flatbuffers.NewBuilder(32)
		name := b.CreateString("f.bin")
		m := b.CreateString(mod)
		model.FileHintsStart(b)
		model.FileHintsAddIsBinary(b, true)
		model.FileHintsAddFileName(b, name)
		model.FileHintsAddModTime(b, m)
		b.Finish(model.FileHintsEnd(b))
		return model.GetRootAsFileHints(b.FinishedBytes(), 0)
	}

	hints, err := fileHints(build("2023-05-06T07:08:09Z"))
	require.NoError(t, err)
	require.True(t, hints.IsBinary)
	require.Equal(t, "f.bin", hints.FileName)
	require.Equal(t, time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC), hints.ModTime.UTC())

	hints, err = fileHints(build(""))
	require.NoError(t, err)
	require.True(t, hints.ModTime.IsZero())

	_, err = fileHints(build("yesterday"))
	require.Error(t, err)

	hints, err = fileHints(nil)
	require.NoError(t, err)
	require.Nil(t, hints)
}
