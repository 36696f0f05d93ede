// Package image normalizes uploaded image payloads before they are
// handed to the vision model.
package image

import "strings"

const (
	MediaTypeJPEG = "image/jpeg"
	MediaTypePNG  = "image/png"
	MediaTypeWebP = "image/webp"
)

// Normalize strips an optional data-URL prefix ("data:<mime>;base64,")
// from the payload and infers the media type from that prefix. Payloads
// without a prefix are assumed to be JPEG. The base64 body itself is not
// validated here; the vision API rejects garbage on its own.
func Normalize(payload string) (data string, mediaType string) {
	header, rest, found := strings.Cut(payload, ",")
	if !found {
		return payload, MediaTypeJPEG
	}

	switch {
	case strings.Contains(header, "jpeg"), strings.Contains(header, "jpg"):
		mediaType = MediaTypeJPEG
	case strings.Contains(header, "png"):
		mediaType = MediaTypePNG
	case strings.Contains(header, "webp"):
		mediaType = MediaTypeWebP
	default:
		mediaType = MediaTypeJPEG
	}
	return rest, mediaType
}
