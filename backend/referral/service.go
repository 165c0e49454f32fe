package referral

import (
	"github.com/google/uuid"
	"strings"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
)

// Service is the thin use-case layer behind the referral admin screen.
// Every call goes straight to the store; the resulting list state is
// published whole.
type Service struct {
	sender api.Sender
	store  api.ReferralStore

	api.ReferralService
}

func NewReferralService(sender api.Sender, store api.ReferralStore) api.ReferralService {
	return &Service{
		sender: sender,
		store:  store,
	}
}

func (s *Service) RequestReferralCodes() {
	s.sender.SendCommandToTopic(api.ReferralListUpdated, &api.ReferralListCommand{IsLoading: true})
	go s.publishCodes()
}

func (s *Service) CreateReferralCode(description string) {
	go func() {
		code := apitype.NewReferralCode(generateCode(), description, true)
		if _, err := s.store.AddReferralCode(code); err != nil {
			s.sender.SendError("Could not create referral code", err)
			return
		}
		s.publishCodes()
	}()
}

func (s *Service) SetActive(id apitype.ReferralId, active bool) {
	go func() {
		if err := s.store.SetReferralCodeActive(id, active); err != nil {
			s.sender.SendError("Could not update referral code", err)
			return
		}
		s.publishCodes()
	}()
}

func (s *Service) Remove(id apitype.ReferralId) {
	go func() {
		if err := s.store.RemoveReferralCode(id); err != nil {
			s.sender.SendError("Could not remove referral code", err)
			return
		}
		s.publishCodes()
	}()
}

func (s *Service) publishCodes() {
	codes, err := s.store.GetReferralCodes()
	if err != nil {
		logger.Error.Print("Could not list referral codes", err)
		s.sender.SendCommandToTopic(api.ReferralListUpdated, &api.ReferralListCommand{
			Error: "Could not list referral codes",
		})
		return
	}
	s.sender.SendCommandToTopic(api.ReferralListUpdated, &api.ReferralListCommand{
		Codes: codes,
	})
}

func generateCode() string {
	id, err := uuid.NewRandom()
	if err != nil {
		logger.Error.Panic("Could not generate referral code", err)
	}
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[0:8])
}
