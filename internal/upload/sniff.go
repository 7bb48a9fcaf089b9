package upload

import (
	"bytes"
	"io"
)

// ImageType is the sniffed type of an uploaded file.
type ImageType string

const (
	ImageJPEG    ImageType = "jpg"
	ImagePNG     ImageType = "png"
	ImageUnknown ImageType = "unknown"
)

// sniffLen bounds how much of the file is inspected; the signatures below all
// fit well within the first 16 bytes.
const sniffLen = 16

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// DetectImageType classifies a byte source by its leading magic number. It
// reads at most sniffLen bytes and never trusts filenames or declared content
// types. Truncated or empty input classifies as ImageUnknown.
func DetectImageType(r io.Reader) ImageType {
	buf := make([]byte, sniffLen)
	n, _ := io.ReadFull(r, buf)
	return detect(buf[:n])
}

func detect(prefix []byte) ImageType {
	switch {
	case bytes.HasPrefix(prefix, jpegMagic):
		return ImageJPEG
	case bytes.HasPrefix(prefix, pngMagic):
		return ImagePNG
	default:
		return ImageUnknown
	}
}
