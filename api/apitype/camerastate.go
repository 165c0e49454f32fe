package apitype

// CameraState is the shared camera screen state. It is always replaced as a
// whole value, never mutated field by field, so readers see a consistent
// snapshot.
type CameraState struct {
	LiveViewActive  bool
	LiveViewLoading bool
	Frame           *Frame
	Capturing       bool
	Focusing        bool
	Error           string
	SuccessMessage  string
}
