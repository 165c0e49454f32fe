package library

import (
	"sync"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
)

// Service lists the photos stored on disk and keeps the neighbor preloader
// fed as the focused photo changes.
type Service struct {
	sender    api.Sender
	preloader api.Preloader

	mux       sync.Mutex
	directory string
	photoIds  []apitype.ItemId

	api.PhotoLibrary
}

func NewPhotoLibrary(sender api.Sender, preloader api.Preloader) api.PhotoLibrary {
	return &Service{
		sender:    sender,
		preloader: preloader,
	}
}

func (s *Service) InitializeFromDirectory(directory string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.directory = directory
}

func (s *Service) RequestPhotos() {
	s.sender.SendCommandToTopic(api.PhotoListUpdated, &api.PhotoListCommand{IsLoading: true})

	go func() {
		s.mux.Lock()
		directory := s.directory
		s.mux.Unlock()

		photos, err := apitype.ScanPhotos(directory)
		if err != nil {
			s.sender.SendCommandToTopic(api.PhotoListUpdated, &api.PhotoListCommand{
				Error: "Could not list photos",
			})
			return
		}

		ids := make([]apitype.ItemId, 0, len(photos))
		for _, photo := range photos {
			ids = append(ids, photo.Id())
		}

		s.mux.Lock()
		s.photoIds = ids
		s.mux.Unlock()

		s.sender.SendCommandToTopic(api.PhotoListUpdated, &api.PhotoListCommand{
			Photos: photos,
		})
	}()
}

func (s *Service) SetCurrentPhoto(index int) {
	s.mux.Lock()
	ids := s.photoIds
	s.mux.Unlock()

	if index < 0 || index >= len(ids) {
		logger.Trace.Printf("Focused photo index %d out of range", index)
		return
	}
	s.preloader.Preload(index, ids)
}
