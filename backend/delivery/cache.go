package delivery

import (
	"image"
	"sync"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
	"vincit.fi/camera-remote/common/util"
)

type cacheKey struct {
	id   apitype.ItemId
	tier apitype.QualityTier
}

// DefaultTierCache maps (item, tier) to a decoded pixel buffer and tracks
// which items have already been shown at the full tier. Entries are only
// inserted or replaced, never mutated; last writer wins since buffers for
// the same key are content-equivalent.
type DefaultTierCache struct {
	entries  map[cacheKey]image.Image
	upgraded *util.Set[apitype.ItemId]
	mux      sync.Mutex

	api.TierCache
}

func NewTierCache() api.TierCache {
	logger.Debug.Print("Initialize tier cache...")
	return &DefaultTierCache{
		entries:  map[cacheKey]image.Image{},
		upgraded: util.NewSet[apitype.ItemId](),
	}
}

func (s *DefaultTierCache) Get(id apitype.ItemId, tier apitype.QualityTier) image.Image {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.entries[cacheKey{id: id, tier: tier}]
}

func (s *DefaultTierCache) Put(id apitype.ItemId, tier apitype.QualityTier, img image.Image) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.entries[cacheKey{id: id, tier: tier}] = img
}

func (s *DefaultTierCache) IsUpgraded(id apitype.ItemId) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.upgraded.Contains(id)
}

func (s *DefaultTierCache) MarkUpgraded(id apitype.ItemId) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.upgraded.Add(id)
}

// Clear drops everything, including the upgraded set. Meant for session
// boundaries; there is no automatic eviction.
func (s *DefaultTierCache) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	logger.Debug.Printf("Clearing tier cache (%d entries)", len(s.entries))
	s.entries = map[cacheKey]image.Image{}
	s.upgraded.Clear()
}

func (s *DefaultTierCache) ByteSize() (byteSize uint64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, img := range s.entries {
		byteSize += uint64(byteLength(img))
	}
	return
}

func byteLength(img image.Image) int {
	if img != nil {
		// Approximation using the image size
		const bytesPerPixel = 4
		bounds := img.Bounds()
		return bounds.Dx() * bounds.Dy() * bytesPerPixel
	} else {
		return 0
	}
}
