package api

import (
	"vincit.fi/camera-remote/api/apitype"
)

type ErrorCommand struct {
	Message string

	apitype.Command
}

type CameraStateCommand struct {
	State apitype.CameraState

	apitype.Command
}

type PhotoCapturedCommand struct {
	Photo *apitype.Photo

	apitype.Command
}

type TimelapseStartedCommand struct {
	Settings        *apitype.TimelapseSettings
	DurationMinutes int

	apitype.Command
}

type PhotoListCommand struct {
	Photos    []*apitype.Photo
	IsLoading bool
	Error     string

	apitype.Command
}

type ReferralListCommand struct {
	Codes     []*apitype.ReferralCode
	IsLoading bool
	Error     string

	apitype.Command
}

type PhotoDataCommand struct {
	Id       apitype.ItemId
	FullData []byte

	apitype.Command
}

type DeviceFoundCommand struct {
	DeviceName string
	Address    string

	apitype.Command
}

type Gui interface {
	UpdateCameraState(*CameraStateCommand)
	SetPhotos(*PhotoListCommand)
	SetReferralCodes(*ReferralListCommand)
	ShowError(*ErrorCommand)
	DeviceFound(*DeviceFoundCommand)
	Run()
}
