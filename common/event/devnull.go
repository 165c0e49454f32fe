package event

import (
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
)

// DevNullBroker swallows everything. Used where a service requires a sender
// but its messages are of no interest, e.g. in wiring for batch tools.
type DevNullBroker struct {
	api.Sender
}

func InitDevNullBus() *DevNullBroker {
	return &DevNullBroker{}
}

func (s *DevNullBroker) Subscribe(topic api.Topic, fn interface{}) {
}

func (s *DevNullBroker) SendToTopic(topic api.Topic) {
}

func (s *DevNullBroker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
}

func (s *DevNullBroker) SendError(message string, err error) {
}
