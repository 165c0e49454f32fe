package apitype

import "time"

// Frame is one live-view frame as received from the camera.
type Frame struct {
	data     []byte
	received time.Time
}

func NewFrame(data []byte) *Frame {
	return &Frame{
		data:     data,
		received: time.Now(),
	}
}

func (s *Frame) Data() []byte {
	if s != nil {
		return s.data
	} else {
		return nil
	}
}

func (s *Frame) Received() time.Time {
	return s.received
}
