package orientation

import (
	"github.com/stretchr/testify/assert"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/camera-remote/api/apitype"
)

func TestExifResolver_ResolveNoData(t *testing.T) {
	a := assert.New(t)

	resolver := NewResolver()

	a.Equal(apitype.OrientationNormal, resolver.Resolve(nil, nil))
}

func TestExifResolver_ResolveInvalidData(t *testing.T) {
	a := assert.New(t)

	resolver := NewResolver()

	// Metadata failures must never block display.
	a.Equal(apitype.OrientationNormal, resolver.Resolve([]byte("not a jpeg"), nil))
	a.Equal(apitype.OrientationNormal, resolver.Resolve([]byte("primary"), []byte("companion")))
}

func TestExifResolver_ResolveWithMissingCompanionFile(t *testing.T) {
	a := assert.New(t)

	resolver := NewResolver()

	code := resolver.ResolveWithCompanionPath([]byte("primary"), "/no/such/file.jpg")

	a.Equal(apitype.OrientationNormal, code)
}

func TestExifResolver_ResolveWithCompanionFile(t *testing.T) {
	a := assert.New(t)

	dir, err := ioutil.TempDir("", "orientation")
	a.Nil(err)
	defer os.RemoveAll(dir)

	companion := filepath.Join(dir, "companion.jpg")
	a.Nil(ioutil.WriteFile(companion, []byte("no exif here"), 0644))

	resolver := NewResolver()

	a.Equal(apitype.OrientationNormal, resolver.ResolveWithCompanionPath(nil, companion))
}
