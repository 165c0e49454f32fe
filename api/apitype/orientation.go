package apitype

type OrientationCode int

const (
	OrientationNormal OrientationCode = iota
	OrientationRotate90
	OrientationRotate180
	OrientationRotate270
)

func (s OrientationCode) String() string {
	switch s {
	case OrientationNormal:
		return "normal"
	case OrientationRotate90:
		return "rotate-90"
	case OrientationRotate180:
		return "rotate-180"
	case OrientationRotate270:
		return "rotate-270"
	}
	return "unknown"
}

// Maps a raw EXIF orientation tag value to the codes this system handles.
// Mirrored variants (2, 4, 5, 7) are not produced by the supported devices
// and resolve to normal.
func OrientationFromExif(orientation int) OrientationCode {
	switch orientation {
	case 3:
		return OrientationRotate180
	case 6:
		return OrientationRotate90
	case 8:
		return OrientationRotate270
	default:
		return OrientationNormal
	}
}
