package camera

import (
	"github.com/hashicorp/mdns"
	"time"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/common/logger"
)

const (
	// PTP/IP cameras announce themselves under this service type.
	cameraService       = "_ptp._tcp"
	deviceSearchTimeout = time.Second * 10
)

// Discovery searches the local network for cameras over mDNS and reports
// each one to the UI layer.
type Discovery struct {
	sender api.Sender
}

func NewDiscovery(sender api.Sender) *Discovery {
	return &Discovery{
		sender: sender,
	}
}

func (s *Discovery) FindDevices() {
	entriesCh := make(chan *mdns.ServiceEntry, 4)
	go func() {
		for entry := range entriesCh {
			logger.Debug.Printf("Found device: %v", entry)
			address := ""
			if entry.AddrV4 != nil {
				address = entry.AddrV4.String()
			} else if entry.AddrV6 != nil {
				address = entry.AddrV6.String()
			}
			s.sender.SendCommandToTopic(api.DeviceFound, &api.DeviceFoundCommand{
				DeviceName: entry.Name,
				Address:    address,
			})
		}
	}()

	err := mdns.Query(&mdns.QueryParam{
		Service: cameraService,
		Timeout: deviceSearchTimeout,
		Entries: entriesCh,
	})
	close(entriesCh)
	if err != nil {
		s.sender.SendError("Could not search devices", err)
	}
}
