package preload

import (
	"github.com/stretchr/testify/assert"
	"image"
	"sort"
	"sync"
	"testing"
	"time"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/backend/delivery"
)

type recordingFetcher struct {
	mux     sync.Mutex
	fetched []apitype.ItemId

	api.ImageFetcher
}

func (s *recordingFetcher) FetchFullImage(id apitype.ItemId) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.fetched = append(s.fetched, id)
}

func (s *recordingFetcher) fetchedIds() []apitype.ItemId {
	s.mux.Lock()
	defer s.mux.Unlock()
	ids := append([]apitype.ItemId{}, s.fetched...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func testItems(count int) []apitype.ItemId {
	var items []apitype.ItemId
	for i := 0; i < count; i++ {
		items = append(items, apitype.ItemId("photo-"+string(rune('a'+i))))
	}
	return items
}

func TestNeighborPreloader_PreloadsBothNeighbors(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	preloader := NewPreloader(delivery.NewTierCache(), fetcher)
	items := testItems(10)

	preloader.Preload(5, items)

	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 2 }, time.Second, 10*time.Millisecond)
	a.Equal([]apitype.ItemId{items[4], items[6]}, fetcher.fetchedIds())
}

func TestNeighborPreloader_ClipsAtStart(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	preloader := NewPreloader(delivery.NewTierCache(), fetcher)
	items := testItems(10)

	preloader.Preload(0, items)

	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 1 }, time.Second, 10*time.Millisecond)
	a.Equal([]apitype.ItemId{items[1]}, fetcher.fetchedIds())
}

func TestNeighborPreloader_ClipsAtEnd(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	preloader := NewPreloader(delivery.NewTierCache(), fetcher)
	items := testItems(10)

	preloader.Preload(9, items)

	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 1 }, time.Second, 10*time.Millisecond)
	a.Equal([]apitype.ItemId{items[8]}, fetcher.fetchedIds())
}

func TestNeighborPreloader_SingleItemList(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	preloader := NewPreloader(delivery.NewTierCache(), fetcher)

	preloader.Preload(0, testItems(1))

	time.Sleep(50 * time.Millisecond)
	a.Empty(fetcher.fetchedIds())
}

func TestNeighborPreloader_SkipsCachedFullImage(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	cache := delivery.NewTierCache()
	preloader := NewPreloader(cache, fetcher)
	items := testItems(10)

	cache.Put(items[4], apitype.TierFull, image.NewNRGBA(image.Rect(0, 0, 1, 1)))

	preloader.Preload(5, items)

	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 1 }, time.Second, 10*time.Millisecond)
	a.Equal([]apitype.ItemId{items[6]}, fetcher.fetchedIds())
}

func TestNeighborPreloader_DeduplicatesInFlightFetches(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	preloader := NewPreloader(delivery.NewTierCache(), fetcher)
	items := testItems(10)

	preloader.Preload(5, items)
	preloader.Preload(5, items)

	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 2 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	a.Equal([]apitype.ItemId{items[4], items[6]}, fetcher.fetchedIds())
}

func TestNeighborPreloader_DoneAllowsRefetch(t *testing.T) {
	a := assert.New(t)

	fetcher := &recordingFetcher{}
	preloader := NewPreloader(delivery.NewTierCache(), fetcher)
	items := testItems(10)

	preloader.Preload(5, items)
	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 2 }, time.Second, 10*time.Millisecond)

	preloader.Done(items[4])
	preloader.Done(items[6])
	preloader.Preload(5, items)

	a.Eventually(func() bool { return len(fetcher.fetchedIds()) == 4 }, time.Second, 10*time.Millisecond)
}
