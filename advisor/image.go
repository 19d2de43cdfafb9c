package advisor

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMIMEType is assumed for data that is not recognized as an image.
const DefaultMIMEType = "image/png"

// Image is a binary image and its MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// NewImage returns an Image with a MIME type sniffed from data.
func NewImage(data []byte) Image {
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Image{Data: data, MIMEType: DefaultMIMEType}
	}
	return Image{Data: data, MIMEType: mime.String()}
}

// Extension returns the file extension of the image MIME type, like ".png".
func (i Image) Extension() string {
	if m := mimetype.Lookup(i.MIMEType); m != nil {
		return m.Extension()
	}
	return ".png"
}
