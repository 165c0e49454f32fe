package apitype

type ItemId string

const NoItem = ItemId("")

func (s ItemId) IsValid() bool {
	return s != NoItem
}

func (s ItemId) String() string {
	return string(s)
}

type QualityTier int

const (
	TierThumbnail QualityTier = iota
	TierFull
)

func (s QualityTier) String() string {
	switch s {
	case TierThumbnail:
		return "thumbnail"
	case TierFull:
		return "full"
	}
	return "unknown"
}
