package delivery

import (
	"image"
	"sync/atomic"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/event"
	"vincit.fi/camera-remote/common/logger"
)

const (
	applyImageEvent = "delivery-internal-apply"
	applyQueueSize  = 100

	// Reduced opacity marks a thumbnail as an interim preview.
	previewOpacity = 0.8
	fullOpacity    = 1.0
)

// applyRequest is one pending target mutation. All requests funnel through
// a single-subscriber internal broker, so target writes are serialized
// regardless of which decode task produced them.
type applyRequest struct {
	id      apitype.ItemId
	tier    apitype.QualityTier
	img     image.Image
	target  api.DisplayTarget
	opacity float64
	upgrade bool

	apitype.Command
}

// bindState is shared by the decode tasks spawned for one deliver call.
// The full path only falls back to a placeholder when no thumbnail was
// shown for the same bind.
type bindState struct {
	thumbnailShown int32
}

func (s *bindState) markThumbnailShown() {
	if s != nil {
		atomic.StoreInt32(&s.thumbnailShown, 1)
	}
}

func (s *bindState) thumbnailWasShown() bool {
	return s != nil && atomic.LoadInt32(&s.thumbnailShown) != 0
}

// Engine decides which tier to decode and show for an item bound to a
// display target, schedules the decode work and guards every apply with
// the binding registry so a stale decode can never write to a rebound
// target. Once an item has been shown at the full tier it never regresses
// to the thumbnail tier.
type Engine struct {
	cache       api.TierCache
	bindings    *BindingRegistry
	resolver    api.OrientationResolver
	decoder     api.ImageDecoder
	applyBroker *event.Broker

	api.ImageDelivery
}

func NewImageDelivery(cache api.TierCache, resolver api.OrientationResolver, decoder api.ImageDecoder) api.ImageDelivery {
	s := &Engine{
		cache:       cache,
		bindings:    NewBindingRegistry(),
		resolver:    resolver,
		decoder:     decoder,
		applyBroker: event.InitBus(applyQueueSize),
	}
	s.applyBroker.Subscribe(applyImageEvent, s.applyFromQueue)
	return s
}

func (s *Engine) Deliver(request *api.DeliverRequest) {
	if request.Target == nil || !request.Id.IsValid() {
		logger.Warn.Print("Deliver called without a valid item and target")
		return
	}
	s.bindings.Bind(request.Id, request.Target.Handle())

	if request.FullData == nil && request.ThumbnailData == nil {
		logger.Debug.Printf("No data for '%s', showing placeholder", request.Id)
		request.Target.ShowPlaceholder()
		return
	}

	if s.cache.IsUpgraded(request.Id) && request.FullData != nil {
		// Full tier already shown for this item. Re-apply from cache for a
		// recreated target, but never decode again.
		if img := s.cache.Get(request.Id, apitype.TierFull); img != nil {
			logger.Trace.Printf("'%s' already upgraded, re-applying cached full image", request.Id)
			s.queueApply(&applyRequest{
				id:      request.Id,
				tier:    apitype.TierFull,
				img:     img,
				target:  request.Target,
				opacity: fullOpacity,
			})
		}
		return
	}

	if request.FullData != nil {
		state := &bindState{}
		if request.ThumbnailData != nil {
			go s.deliverThumbnail(request.Id, request.ThumbnailData, nil, request.Target, state, true)
		}
		go s.deliverFull(request.Id, request.FullData, request.Target, state)
	} else {
		go s.deliverThumbnail(request.Id, request.ThumbnailData, nil, request.Target, nil, false)
	}
}

// DeliverThumbnailWithCompanionMetadata decodes the thumbnail pixels but
// reads the orientation from the full-resolution buffer. Thumbnails from
// the supported cameras frequently lack or misreport the orientation tag.
func (s *Engine) DeliverThumbnailWithCompanionMetadata(request *api.DeliverRequest) {
	if request.Target == nil || !request.Id.IsValid() {
		logger.Warn.Print("Deliver called without a valid item and target")
		return
	}
	s.bindings.Bind(request.Id, request.Target.Handle())

	if request.ThumbnailData == nil {
		logger.Debug.Printf("No thumbnail data for '%s', showing placeholder", request.Id)
		request.Target.ShowPlaceholder()
		return
	}

	go s.deliverThumbnail(request.Id, request.ThumbnailData, request.FullData, request.Target, nil, false)
}

func (s *Engine) IsUpgraded(id apitype.ItemId) bool {
	return s.cache.IsUpgraded(id)
}

func (s *Engine) Close() {
	logger.Info.Print("Shutting down image delivery")
	s.applyBroker.Close(applyImageEvent)
	s.bindings.Clear()
}

// deliverThumbnail decodes and applies the thumbnail tier. With silent set
// the apply is a best-effort interim preview and failures are swallowed;
// otherwise a failed decode falls back to the placeholder.
func (s *Engine) deliverThumbnail(id apitype.ItemId, thumbnailData []byte, companionData []byte, target api.DisplayTarget, state *bindState, silent bool) {
	img := s.cache.Get(id, apitype.TierThumbnail)
	if img == nil {
		code := s.resolver.Resolve(thumbnailData, companionData)
		decoded, err := s.decoder.Decode(thumbnailData)
		if err != nil {
			if silent {
				logger.Trace.Printf("Interim thumbnail decode failed for '%s'", id)
			} else {
				logger.Debug.Printf("Thumbnail decode failed for '%s', showing placeholder", id)
				s.showPlaceholder(id, target)
			}
			return
		}
		img = s.decoder.Preview(s.decoder.ApplyOrientation(decoded, code))
		s.cache.Put(id, apitype.TierThumbnail, img)
	}

	state.markThumbnailShown()
	s.queueApply(&applyRequest{
		id:      id,
		tier:    apitype.TierThumbnail,
		img:     img,
		target:  target,
		opacity: previewOpacity,
	})
}

func (s *Engine) deliverFull(id apitype.ItemId, fullData []byte, target api.DisplayTarget, state *bindState) {
	img := s.cache.Get(id, apitype.TierFull)
	if img == nil {
		code := s.resolver.Resolve(fullData, nil)
		decoded, err := s.decoder.Decode(fullData)
		if err != nil {
			logger.Debug.Printf("Full decode failed for '%s'", id)
			if !state.thumbnailWasShown() {
				s.showPlaceholder(id, target)
			}
			return
		}
		img = s.decoder.ApplyOrientation(decoded, code)
		s.cache.Put(id, apitype.TierFull, img)
	}

	s.queueApply(&applyRequest{
		id:      id,
		tier:    apitype.TierFull,
		img:     img,
		target:  target,
		opacity: fullOpacity,
		upgrade: true,
	})
}

func (s *Engine) queueApply(request *applyRequest) {
	s.applyBroker.SendCommandToTopic(applyImageEvent, request)
}

// applyFromQueue is the single apply lane. The monotonic-quality check and
// the binding identity check both happen here, at the last possible
// moment before the target is touched.
func (s *Engine) applyFromQueue(request *applyRequest) {
	if request.tier == apitype.TierThumbnail && s.cache.IsUpgraded(request.id) {
		logger.Trace.Printf("'%s' already at full tier, thumbnail apply dropped", request.id)
		return
	}

	applied := s.bindings.IfCurrent(request.id, request.target.Handle(), func() {
		request.target.Apply(request.img, apitype.ScaleFitToBounds, request.opacity)
	})
	if !applied {
		logger.Trace.Printf("Stale apply for '%s' discarded", request.id)
		return
	}

	if request.upgrade {
		s.cache.MarkUpgraded(request.id)
	}
}

func (s *Engine) showPlaceholder(id apitype.ItemId, target api.DisplayTarget) {
	s.bindings.IfCurrent(id, target.Handle(), func() {
		target.ShowPlaceholder()
	})
}
