package camera

import (
	"context"
	"errors"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
)

// UnavailableCamera stands in until a discovered device has been selected
// and a driver attached. Every operation reports not connected.
type UnavailableCamera struct {
	api.Camera
}

func NewUnavailableCamera() api.Camera {
	return &UnavailableCamera{}
}

var errNotConnected = errors.New("camera not connected")

func (s *UnavailableCamera) IsConnected() bool {
	return false
}

func (s *UnavailableCamera) SupportsLiveView() bool {
	return false
}

func (s *UnavailableCamera) CapturePhoto(mode api.CaptureMode) (*apitype.Photo, error) {
	return nil, errNotConnected
}

func (s *UnavailableCamera) StartLiveView(ctx context.Context) (api.FrameStream, error) {
	return nil, errNotConnected
}

func (s *UnavailableCamera) StopLiveView() error {
	return nil
}

func (s *UnavailableCamera) StartTimelapse(ctx context.Context, settings *apitype.TimelapseSettings) (api.PhotoStream, error) {
	return nil, errNotConnected
}

func (s *UnavailableCamera) AutoFocus() error {
	return errNotConnected
}
