package apitype

import (
	"github.com/google/uuid"
	"vincit.fi/camera-remote/common/logger"
)

// TargetHandle identifies one concrete display target instance. A new
// handle is minted every time a view is (re)created, so an in-flight decode
// can tell a recreated target apart from the one it was scheduled for.
type TargetHandle string

const NoTarget = TargetHandle("")

func NewTargetHandle() TargetHandle {
	if id, err := uuid.NewRandom(); err != nil {
		logger.Error.Panic("Could not create target handle", err)
		return NoTarget
	} else {
		return TargetHandle(id.String())
	}
}

func (s TargetHandle) IsValid() bool {
	return s != NoTarget
}

type ScaleMode int

const (
	ScaleFitToBounds ScaleMode = iota
)

func (s ScaleMode) String() string {
	switch s {
	case ScaleFitToBounds:
		return "fit-to-bounds"
	}
	return "unknown"
}
