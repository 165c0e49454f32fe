package api

import "vincit.fi/camera-remote/api/apitype"

// ReferralStore is the remote store behind the referral admin screen.
type ReferralStore interface {
	AddReferralCode(code *apitype.ReferralCode) (*apitype.ReferralCode, error)
	GetReferralCodes() ([]*apitype.ReferralCode, error)
	SetReferralCodeActive(id apitype.ReferralId, active bool) error
	RemoveReferralCode(id apitype.ReferralId) error
}

type ReferralService interface {
	RequestReferralCodes()
	CreateReferralCode(description string)
	SetActive(id apitype.ReferralId, active bool)
	Remove(id apitype.ReferralId)
}
