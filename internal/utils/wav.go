package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrInvalidPCM = errors.New("invalid PCM data")

// wavHeader is the canonical 44-byte RIFF header of an uncompressed PCM file.
type wavHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// WriteWAV wraps raw little-endian PCM samples into a WAV container and
// writes it to w.
func WriteWAV(w io.Writer, pcm []byte, sampleRate, channels, bitsPerSample int) error {
	if sampleRate <= 0 || channels <= 0 || bitsPerSample <= 0 || bitsPerSample%8 != 0 {
		return fmt.Errorf("%w: bad format %d Hz, %d channels, %d bits", ErrInvalidPCM, sampleRate, channels, bitsPerSample)
	}

	blockAlign := channels * bitsPerSample / 8
	if len(pcm)%blockAlign != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of frames", ErrInvalidPCM, len(pcm))
	}

	header := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + len(pcm)),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(bitsPerSample),
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: uint32(len(pcm)),
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("error writing WAV header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("error writing WAV data: %w", err)
	}

	return nil
}
