package delivery

import (
	"sync"
	"vincit.fi/camera-remote/api/apitype"
)

// BindingRegistry records which display target currently wants updates for
// which item. Every asynchronous write consults it before touching a
// target; a write whose handle no longer matches is discarded.
//
// A target shows one item at a time, so binding a target to a new item
// also drops the binding of whatever item it showed before. Without this
// a decode scheduled for the old item would still find its stale binding
// intact and write over the new one.
type BindingRegistry struct {
	targetsByItem map[apitype.ItemId]apitype.TargetHandle
	itemsByTarget map[apitype.TargetHandle]apitype.ItemId
	mux           sync.Mutex
}

func NewBindingRegistry() *BindingRegistry {
	return &BindingRegistry{
		targetsByItem: map[apitype.ItemId]apitype.TargetHandle{},
		itemsByTarget: map[apitype.TargetHandle]apitype.ItemId{},
	}
}

func (s *BindingRegistry) Bind(id apitype.ItemId, handle apitype.TargetHandle) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if previous, ok := s.itemsByTarget[handle]; ok && previous != id {
		delete(s.targetsByItem, previous)
	}
	s.targetsByItem[id] = handle
	s.itemsByTarget[handle] = id
}

func (s *BindingRegistry) IsCurrent(id apitype.ItemId, handle apitype.TargetHandle) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.targetsByItem[id] == handle
}

// IfCurrent runs fn while holding the registry lock, but only if the
// binding for id still names handle. Rebinds are blocked for the duration
// of fn, which makes the check-then-apply sequence atomic.
func (s *BindingRegistry) IfCurrent(id apitype.ItemId, handle apitype.TargetHandle, fn func()) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.targetsByItem[id] != handle {
		return false
	}
	fn()
	return true
}

func (s *BindingRegistry) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.targetsByItem = map[apitype.ItemId]apitype.TargetHandle{}
	s.itemsByTarget = map[apitype.TargetHandle]apitype.ItemId{}
}
