package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOrientationFromExif(t *testing.T) {
	a := assert.New(t)

	a.Equal(OrientationNormal, OrientationFromExif(1))
	a.Equal(OrientationRotate180, OrientationFromExif(3))
	a.Equal(OrientationRotate90, OrientationFromExif(6))
	a.Equal(OrientationRotate270, OrientationFromExif(8))
}

func TestOrientationFromExif_MirroredVariants(t *testing.T) {
	a := assert.New(t)

	for _, orientation := range []int{2, 4, 5, 7} {
		a.Equal(OrientationNormal, OrientationFromExif(orientation))
	}
}

func TestOrientationFromExif_OutOfRange(t *testing.T) {
	a := assert.New(t)

	a.Equal(OrientationNormal, OrientationFromExif(0))
	a.Equal(OrientationNormal, OrientationFromExif(9))
	a.Equal(OrientationNormal, OrientationFromExif(-1))
}
