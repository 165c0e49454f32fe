package api

type Topic string

const (
	CameraStateUpdated  Topic = "camera-state-updated"
	PhotoCaptured       Topic = "photo-captured"
	TimelapseStarted    Topic = "timelapse-started"
	PhotoListUpdated    Topic = "photo-list-updated"
	PhotoDataFetched    Topic = "photo-data-fetched"
	ReferralListUpdated Topic = "referral-list-updated"
	DeviceFound         Topic = "device-found"
	ShowError           Topic = "error-show"
)
