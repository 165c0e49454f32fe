package api

import (
	"context"
	"vincit.fi/camera-remote/api/apitype"
)

type CaptureMode int

const (
	CaptureSingle CaptureMode = iota
	CaptureTimelapseShot
)

// FrameStream delivers live-view frames until the stream fails or is torn
// down. Err reports the terminal failure, if any, once Frames is drained.
type FrameStream interface {
	Frames() <-chan *apitype.Frame
	Err() error
}

type PhotoStream interface {
	Photos() <-chan *apitype.Photo
	Err() error
}

// Camera is the device capability surface. Implementations wrap the actual
// device driver; this package never sees the wire protocol.
type Camera interface {
	IsConnected() bool
	SupportsLiveView() bool
	CapturePhoto(mode CaptureMode) (*apitype.Photo, error)
	StartLiveView(ctx context.Context) (FrameStream, error)
	StopLiveView() error
	StartTimelapse(ctx context.Context, settings *apitype.TimelapseSettings) (PhotoStream, error)
	AutoFocus() error
}

type CameraOperations interface {
	StartLiveView()
	StopLiveView()
	StartTimelapse(settings *apitype.TimelapseSettings)
	StopTimelapse()
	Capture()
	AutoFocus()
	ClearMessages()
	State() apitype.CameraState
	Cleanup()
}
