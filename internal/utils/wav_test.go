package utils

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWAV_Header(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0xff, 0x7f}

	var buf bytes.Buffer
	require.NoError(t, WriteWAV(&buf, pcm, 24000, 1, 16))

	out := buf.Bytes()
	require.Len(t, out, 44+len(pcm))

	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	assert.Equal(t, "fmt ", string(out[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[22:24]))
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(out[24:28]))
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(out[28:32]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[32:34]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]))
	assert.Equal(t, "data", string(out[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(out[40:44]))
	assert.Equal(t, pcm, out[44:])
}

func TestWriteWAV_Invalid(t *testing.T) {
	var buf bytes.Buffer

	assert.ErrorIs(t, WriteWAV(&buf, []byte{1, 2, 3}, 24000, 1, 16), ErrInvalidPCM)
	assert.ErrorIs(t, WriteWAV(&buf, nil, 0, 1, 16), ErrInvalidPCM)
	assert.ErrorIs(t, WriteWAV(&buf, nil, 24000, 1, 12), ErrInvalidPCM)
	assert.Zero(t, buf.Len())
}

func TestWriteWAV_EmptyPCM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWAV(&buf, nil, 24000, 1, 16))
	assert.Equal(t, 44, buf.Len())
}
