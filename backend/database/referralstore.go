package database

import (
	"github.com/upper/db/v4"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
)

type ReferralStore struct {
	database   *Database
	collection db.Collection

	api.ReferralStore
}

func NewReferralStore(database *Database) *ReferralStore {
	return &ReferralStore{
		database: database,
	}
}

func (s *ReferralStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("referral_code")
	}
	return s.collection
}

func (s *ReferralStore) AddReferralCode(code *apitype.ReferralCode) (*apitype.ReferralCode, error) {
	result, err := s.getCollection().Insert(ReferralCode{
		Code:        code.Code(),
		Description: code.Description(),
		Active:      code.IsActive(),
		Created:     code.Created(),
	})
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Stored referral code '%s' to DB", code.Code())
	return apitype.NewPersistedReferralCode(
		idToReferralId(result.ID()), code.Code(), code.Description(), code.IsActive(), code.Created()), nil
}

func (s *ReferralStore) GetReferralCodes() ([]*apitype.ReferralCode, error) {
	var codes []ReferralCode
	err := s.getCollection().Find().
		OrderBy("created").
		All(&codes)

	if err != nil {
		return nil, err
	}

	return toApiReferralCodes(codes), nil
}

func (s *ReferralStore) SetReferralCodeActive(id apitype.ReferralId, active bool) error {
	var code ReferralCode
	result := s.getCollection().Find(db.Cond{"id": id})
	if err := result.One(&code); err != nil {
		return err
	}
	code.Active = active
	return result.Update(&code)
}

func (s *ReferralStore) RemoveReferralCode(id apitype.ReferralId) error {
	return s.getCollection().Find(db.Cond{"id": id}).Delete()
}

func toApiReferralCodes(codes []ReferralCode) []*apitype.ReferralCode {
	apiCodes := make([]*apitype.ReferralCode, 0, len(codes))
	for _, code := range codes {
		apiCodes = append(apiCodes, apitype.NewPersistedReferralCode(
			apitype.ReferralId(code.Id), code.Code, code.Description, code.Active, code.Created))
	}
	return apiCodes
}

func idToReferralId(id interface{}) apitype.ReferralId {
	if value, ok := id.(int64); ok {
		return apitype.ReferralId(value)
	}
	return apitype.NoReferral
}
