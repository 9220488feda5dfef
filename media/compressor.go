// Package media is the image pipeline for submission photos: it normalizes
// any uploaded image to JPEG, bounds its dimensions, and compresses it under
// the byte budget the backing store's per-record ceiling allows.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/disintegration/imaging"
)

// ErrCannotProcess is returned for anything the pipeline cannot turn into an
// embeddable payload, so the caller can tell the user to try another file.
var ErrCannotProcess = errors.New("could not process image")

const dataURLPrefix = "data:image/jpeg;base64,"

type Compressor struct {
	// MaxBytes bounds the encoded JPEG, excluding the data URL prefix.
	MaxBytes int
	// MaxDimension bounds width and height; larger images are fit inside.
	MaxDimension int
}

// Process turns an uploaded image into a JPEG data URL under the byte
// budget. Quality is walked down until the image fits; an image that does
// not fit at the lowest acceptable quality is refused.
func (c *Compressor) Process(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		logging.Log.Warnf("MEDIA: failed to decode image: %v", err)
		return "", ErrCannotProcess
	}

	bounds := img.Bounds()
	if bounds.Dx() > c.MaxDimension || bounds.Dy() > c.MaxDimension {
		img = imaging.Fit(img, c.MaxDimension, c.MaxDimension, imaging.Lanczos)
	}

	for quality := 80; quality >= 10; quality -= 10 {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			logging.Log.Errorf("MEDIA: failed to encode image: %v", err)
			return "", ErrCannotProcess
		}
		if buf.Len() <= c.MaxBytes {
			logging.Log.Infof("MEDIA: compressed image to %d bytes at quality %d", buf.Len(), quality)
			return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
		}
	}

	logging.Log.Warnf("MEDIA: image does not fit %d bytes at any quality", c.MaxBytes)
	return "", ErrCannotProcess
}

// DecodePayload accepts either a bare base64 string or a full data URL, as
// browsers send both.
func DecodePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrCannotProcess
	}
	return data, nil
}
