package referral

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"time"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
)

const (
	waitTimeout = 2 * time.Second
	waitTick    = 10 * time.Millisecond
)

type fakeStore struct {
	mux     sync.Mutex
	codes   []*apitype.ReferralCode
	nextId  apitype.ReferralId
	failAll bool

	api.ReferralStore
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextId: 1}
}

func (s *fakeStore) AddReferralCode(code *apitype.ReferralCode) (*apitype.ReferralCode, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.failAll {
		return nil, errors.New("store failed")
	}
	persisted := apitype.NewPersistedReferralCode(
		s.nextId, code.Code(), code.Description(), code.IsActive(), code.Created())
	s.nextId += 1
	s.codes = append(s.codes, persisted)
	return persisted, nil
}

func (s *fakeStore) GetReferralCodes() ([]*apitype.ReferralCode, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.failAll {
		return nil, errors.New("store failed")
	}
	return append([]*apitype.ReferralCode{}, s.codes...), nil
}

func (s *fakeStore) SetReferralCodeActive(id apitype.ReferralId, active bool) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	for index, code := range s.codes {
		if code.Id() == id {
			s.codes[index] = apitype.NewPersistedReferralCode(
				code.Id(), code.Code(), code.Description(), active, code.Created())
			return nil
		}
	}
	return errors.New("not found")
}

func (s *fakeStore) RemoveReferralCode(id apitype.ReferralId) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	for index, code := range s.codes {
		if code.Id() == id {
			s.codes = append(s.codes[:index], s.codes[index+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type listCapture struct {
	mux      sync.Mutex
	commands []*api.ReferralListCommand
	errors   []string

	api.Sender
}

func (s *listCapture) SendToTopic(topic api.Topic) {
}

func (s *listCapture) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if listCommand, ok := command.(*api.ReferralListCommand); ok {
		s.commands = append(s.commands, listCommand)
	}
}

func (s *listCapture) SendError(message string, err error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.errors = append(s.errors, message)
}

func (s *listCapture) lastList() *api.ReferralListCommand {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.commands) > 0 {
		return s.commands[len(s.commands)-1]
	}
	return nil
}

func (s *listCapture) listCount() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.commands)
}

func (s *listCapture) errorMessages() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]string{}, s.errors...)
}

func TestReferralService_RequestReferralCodes(t *testing.T) {
	a := assert.New(t)

	sender := &listCapture{}
	store := newFakeStore()
	_, err := store.AddReferralCode(apitype.NewReferralCode("ABCD1234", "Launch promo", true))
	a.Nil(err)

	service := NewReferralService(sender, store)
	service.RequestReferralCodes()

	a.Eventually(func() bool { return sender.listCount() == 2 }, waitTimeout, waitTick)

	a.True(sender.commands[0].IsLoading)
	list := sender.lastList()
	a.False(list.IsLoading)
	if a.Equal(1, len(list.Codes)) {
		a.Equal("ABCD1234", list.Codes[0].Code())
	}
}

func TestReferralService_CreateReferralCode(t *testing.T) {
	a := assert.New(t)

	sender := &listCapture{}
	store := newFakeStore()

	service := NewReferralService(sender, store)
	service.CreateReferralCode("Launch promo")

	a.Eventually(func() bool { return sender.listCount() == 1 }, waitTimeout, waitTick)

	list := sender.lastList()
	if a.Equal(1, len(list.Codes)) {
		a.Equal("Launch promo", list.Codes[0].Description())
		a.Equal(8, len(list.Codes[0].Code()))
		a.True(list.Codes[0].IsActive())
	}
}

func TestReferralService_CreateFailurePublishesError(t *testing.T) {
	a := assert.New(t)

	sender := &listCapture{}
	store := newFakeStore()
	store.failAll = true

	service := NewReferralService(sender, store)
	service.CreateReferralCode("Launch promo")

	a.Eventually(func() bool { return len(sender.errorMessages()) == 1 }, waitTimeout, waitTick)
	a.Contains(sender.errorMessages(), "Could not create referral code")
	a.Equal(0, sender.listCount())
}

func TestReferralService_SetActive(t *testing.T) {
	a := assert.New(t)

	sender := &listCapture{}
	store := newFakeStore()
	persisted, err := store.AddReferralCode(apitype.NewReferralCode("ABCD1234", "Launch promo", true))
	a.Nil(err)

	service := NewReferralService(sender, store)
	service.SetActive(persisted.Id(), false)

	a.Eventually(func() bool { return sender.listCount() == 1 }, waitTimeout, waitTick)

	list := sender.lastList()
	if a.Equal(1, len(list.Codes)) {
		a.False(list.Codes[0].IsActive())
	}
}

func TestReferralService_Remove(t *testing.T) {
	a := assert.New(t)

	sender := &listCapture{}
	store := newFakeStore()
	persisted, err := store.AddReferralCode(apitype.NewReferralCode("ABCD1234", "Launch promo", true))
	a.Nil(err)

	service := NewReferralService(sender, store)
	service.Remove(persisted.Id())

	a.Eventually(func() bool { return sender.listCount() == 1 }, waitTimeout, waitTick)
	a.Empty(sender.lastList().Codes)
}
