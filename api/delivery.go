package api

import (
	"image"
	"vincit.fi/camera-remote/api/apitype"
)

// DisplayTarget is one concrete surface an image can be applied to. A target
// keeps only a transient reference to the applied buffer; ownership stays
// with the tier cache.
type DisplayTarget interface {
	Handle() apitype.TargetHandle
	Apply(img image.Image, scale apitype.ScaleMode, opacity float64)
	ShowPlaceholder()
}

// DeliverRequest binds one item to one display target. FullData and
// ThumbnailData may arrive in any order and either may be nil.
type DeliverRequest struct {
	Id            apitype.ItemId
	Target        DisplayTarget
	FullData      []byte
	ThumbnailData []byte

	apitype.Command
}

type ImageDelivery interface {
	Deliver(request *DeliverRequest)
	DeliverThumbnailWithCompanionMetadata(request *DeliverRequest)
	IsUpgraded(id apitype.ItemId) bool
	Close()
}

type TierCache interface {
	Get(id apitype.ItemId, tier apitype.QualityTier) image.Image
	Put(id apitype.ItemId, tier apitype.QualityTier, img image.Image)
	IsUpgraded(id apitype.ItemId) bool
	MarkUpgraded(id apitype.ItemId)
	Clear()
	ByteSize() uint64
}

type OrientationResolver interface {
	Resolve(primary []byte, companion []byte) apitype.OrientationCode
	ResolveWithCompanionPath(primary []byte, companionPath string) apitype.OrientationCode
}

type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
	ApplyOrientation(img image.Image, code apitype.OrientationCode) image.Image
	Preview(img image.Image) image.Image
}

// ImageFetcher retrieves full-resolution bytes for an item. Completion is
// not reported here; the bytes arrive later through the normal delivery
// path.
type ImageFetcher interface {
	FetchFullImage(id apitype.ItemId)
}

type Preloader interface {
	Preload(currentIndex int, items []apitype.ItemId)
	Done(id apitype.ItemId)
}
