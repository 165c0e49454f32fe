package orientation

import (
	"bytes"
	"github.com/rwcarlsen/goexif/exif"
	"io"
	"os"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
)

// ExifResolver reads the orientation tag from JPEG metadata. Every failure
// resolves to normal orientation so that a missing or broken tag never
// blocks display.
type ExifResolver struct {
	api.OrientationResolver
}

func NewResolver() api.OrientationResolver {
	return &ExifResolver{}
}

// Resolve prefers companion metadata when given. The delivery engine uses
// this to read a thumbnail's orientation from its full-resolution
// companion, since thumbnails frequently lack or misreport the tag.
func (s *ExifResolver) Resolve(primary []byte, companion []byte) apitype.OrientationCode {
	if len(companion) > 0 {
		return orientationFromReader(bytes.NewReader(companion))
	}
	if len(primary) > 0 {
		return orientationFromReader(bytes.NewReader(primary))
	}
	return apitype.OrientationNormal
}

func (s *ExifResolver) ResolveWithCompanionPath(primary []byte, companionPath string) apitype.OrientationCode {
	if companionPath != "" {
		if file, err := os.Open(companionPath); err == nil {
			defer file.Close()
			return orientationFromReader(file)
		} else {
			logger.Trace.Printf("No companion file '%s', using in-memory metadata", companionPath)
		}
	}
	return s.Resolve(primary, nil)
}

func orientationFromReader(reader io.Reader) apitype.OrientationCode {
	decodedExif, err := exif.Decode(reader)
	if err != nil {
		logger.Debug.Print("Could not decode Exif data", err)
		return apitype.OrientationNormal
	}

	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		logger.Debug.Print("Could not resolve orientation", err)
		return apitype.OrientationNormal
	}

	value, err := tag.Int(0)
	if err != nil {
		logger.Debug.Print("Could not read orientation value", err)
		return apitype.OrientationNormal
	}

	return apitype.OrientationFromExif(value)
}
