package preload

import (
	"sync"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
	"vincit.fi/camera-remote/common/util"
)

// NeighborPreloader fetches full-resolution data for the items next to the
// focused one. The horizon is fixed at one item in each direction; fetches
// are fire-and-forget and their results arrive through the normal delivery
// path.
type NeighborPreloader struct {
	cache    api.TierCache
	fetcher  api.ImageFetcher
	inFlight *util.Set[apitype.ItemId]
	mux      sync.Mutex

	api.Preloader
}

func NewPreloader(cache api.TierCache, fetcher api.ImageFetcher) api.Preloader {
	return &NeighborPreloader{
		cache:    cache,
		fetcher:  fetcher,
		inFlight: util.NewSet[apitype.ItemId](),
	}
}

func (s *NeighborPreloader) Preload(currentIndex int, items []apitype.ItemId) {
	for _, index := range []int{currentIndex - 1, currentIndex + 1} {
		if index < 0 || index >= len(items) {
			continue
		}
		s.preloadItem(items[index])
	}
}

func (s *NeighborPreloader) preloadItem(id apitype.ItemId) {
	s.mux.Lock()
	if s.cache.Get(id, apitype.TierFull) != nil || s.cache.IsUpgraded(id) {
		s.mux.Unlock()
		return
	}
	if s.inFlight.Contains(id) {
		s.mux.Unlock()
		return
	}
	s.inFlight.Add(id)
	s.mux.Unlock()

	logger.Trace.Printf("Preloading '%s'", id)
	go s.fetcher.FetchFullImage(id)
}

// Done clears the in-flight mark once data for the item has arrived.
func (s *NeighborPreloader) Done(id apitype.ItemId) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.inFlight.Remove(id)
}
