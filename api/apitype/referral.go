package apitype

import "time"

type ReferralId int64

const NoReferral = ReferralId(-1)

type ReferralCode struct {
	id          ReferralId
	code        string
	description string
	active      bool
	created     time.Time
}

func NewReferralCode(code string, description string, active bool) *ReferralCode {
	return &ReferralCode{
		id:          NoReferral,
		code:        code,
		description: description,
		active:      active,
		created:     time.Now(),
	}
}

func NewPersistedReferralCode(id ReferralId, code string, description string, active bool, created time.Time) *ReferralCode {
	return &ReferralCode{
		id:          id,
		code:        code,
		description: description,
		active:      active,
		created:     created,
	}
}

func (s *ReferralCode) Id() ReferralId {
	if s != nil {
		return s.id
	} else {
		return NoReferral
	}
}

func (s *ReferralCode) Code() string {
	return s.code
}

func (s *ReferralCode) Description() string {
	return s.description
}

func (s *ReferralCode) IsActive() bool {
	return s.active
}

func (s *ReferralCode) Created() time.Time {
	return s.created
}
