package upload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectImageType(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  ImageType
	}{
		{"jpeg magic", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}, ImageJPEG},
		{"png magic", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, ImagePNG},
		{"gif magic", []byte("GIF89a"), ImageUnknown},
		{"plain text", []byte("hello world, definitely not an image"), ImageUnknown},
		{"empty", nil, ImageUnknown},
		{"truncated jpeg", []byte{0xFF, 0xD8}, ImageUnknown},
		{"jpeg bytes past the prefix", append([]byte{0xFF, 0xD8, 0xFF}, bytes.Repeat([]byte{0xAB}, 64)...), ImageJPEG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectImageType(bytes.NewReader(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}
