package apitype

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"
	"vincit.fi/camera-remote/common/logger"
)

type Photo struct {
	id            ItemId
	fileName      string
	thumbnailData []byte
	fullData      []byte
	taken         time.Time
}

func NewPhoto(id ItemId, fileName string, thumbnailData []byte, fullData []byte, taken time.Time) *Photo {
	return &Photo{
		id:            id,
		fileName:      fileName,
		thumbnailData: thumbnailData,
		fullData:      fullData,
		taken:         taken,
	}
}

func (s *Photo) Id() ItemId {
	if s != nil {
		return s.id
	} else {
		return NoItem
	}
}

func (s *Photo) FileName() string {
	return s.fileName
}

func (s *Photo) ThumbnailData() []byte {
	return s.thumbnailData
}

func (s *Photo) FullData() []byte {
	return s.fullData
}

func (s *Photo) Taken() time.Time {
	return s.taken
}

func (s *Photo) String() string {
	if s != nil {
		return "Photo{" + string(s.id) + "}"
	} else {
		return "Photo<nil>"
	}
}

var supportedFileEndings = map[string]bool{".jpg": true, ".jpeg": true}

// Lists the photos already stored under dir. Only file identities are
// resolved here; byte buffers arrive later through the delivery path.
func ScanPhotos(dir string) ([]*Photo, error) {
	var photos []*Photo
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		logger.Error.Print("Could not scan directory: "+dir, err)
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	for _, file := range files {
		if isSupported(filepath.Ext(file.Name())) {
			id := ItemId(filepath.Join(dir, file.Name()))
			photos = append(photos, NewPhoto(id, file.Name(), nil, nil, file.ModTime()))
		}
	}
	logger.Debug.Printf("Found %d photos", len(photos))

	return photos, nil
}

func isSupported(extension string) bool {
	return supportedFileEndings[strings.ToLower(extension)]
}
