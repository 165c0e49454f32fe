package library

import (
	"io/ioutil"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
)

// FileFetcher reads full-resolution bytes for an item from disk and
// publishes them; the UI layer feeds the result back through the normal
// delivery path.
type FileFetcher struct {
	sender api.Sender

	api.ImageFetcher
}

func NewFileFetcher(sender api.Sender) api.ImageFetcher {
	return &FileFetcher{
		sender: sender,
	}
}

func (s *FileFetcher) FetchFullImage(id apitype.ItemId) {
	data, err := ioutil.ReadFile(string(id))
	if err != nil {
		// Preload fetches are best effort; the item loads normally when
		// focused.
		logger.Warn.Print("Could not fetch full image: "+string(id), err)
		return
	}

	s.sender.SendCommandToTopic(api.PhotoDataFetched, &api.PhotoDataCommand{
		Id:       id,
		FullData: data,
	})
}
