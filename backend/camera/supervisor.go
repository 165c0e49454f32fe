package camera

import (
	"context"
	"sync"
	"time"
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/api/apitype"
	"vincit.fi/camera-remote/common/logger"
)

const successMessageDelay = time.Second

type jobKind int

const (
	jobLiveView jobKind = iota
	jobTimelapse
)

func (s jobKind) String() string {
	switch s {
	case jobLiveView:
		return "live-view"
	case jobTimelapse:
		return "timelapse"
	}
	return "unknown"
}

type job struct {
	cancel context.CancelFunc
}

// Supervisor runs camera operations. Live view and timelapse are
// cancellable jobs with at most one running per kind; capture and
// autofocus are one-shots. All outcomes land in a shared CameraState
// record that is replaced as a whole and published through the sender.
type Supervisor struct {
	camera api.Camera
	sender api.Sender

	mux               sync.Mutex
	jobs              map[jobKind]*job
	state             apitype.CameraState
	messageGeneration int

	api.CameraOperations
}

func NewCameraOperations(camera api.Camera, sender api.Sender) api.CameraOperations {
	return &Supervisor{
		camera: camera,
		sender: sender,
		jobs:   map[jobKind]*job{},
	}
}

func (s *Supervisor) State() apitype.CameraState {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state
}

func (s *Supervisor) StartLiveView() {
	s.mux.Lock()
	if _, running := s.jobs[jobLiveView]; running {
		s.mux.Unlock()
		logger.Debug.Print("Live view already running")
		return
	}
	if !s.camera.IsConnected() {
		s.mux.Unlock()
		s.reportError("Camera is not connected", nil)
		return
	}
	if !s.camera.SupportsLiveView() {
		s.mux.Unlock()
		s.reportError("Camera does not support live view", nil)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	liveViewJob := &job{cancel: cancel}
	s.jobs[jobLiveView] = liveViewJob
	s.mux.Unlock()

	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.LiveViewLoading = true
		state.Error = ""
		return state
	})

	go s.runLiveView(ctx, liveViewJob)
}

func (s *Supervisor) runLiveView(ctx context.Context, thisJob *job) {
	stream, err := s.camera.StartLiveView(ctx)
	if err != nil {
		s.removeJob(jobLiveView, thisJob)
		s.updateState(func(state apitype.CameraState) apitype.CameraState {
			state.LiveViewActive = false
			state.LiveViewLoading = false
			return state
		})
		s.reportError("Could not start live view", err)
		return
	}

	for frame := range stream.Frames() {
		frame := frame
		// A good frame erases any earlier transient error.
		s.updateState(func(state apitype.CameraState) apitype.CameraState {
			state.LiveViewActive = true
			state.LiveViewLoading = false
			state.Frame = frame
			state.Error = ""
			return state
		})
	}

	s.removeJob(jobLiveView, thisJob)
	if ctx.Err() != nil {
		// Cancelled; StopLiveView owns the terminal state reset.
		return
	}

	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.LiveViewActive = false
		state.LiveViewLoading = false
		return state
	})
	if err := stream.Err(); err != nil {
		s.reportError("Live view failed", err)
	}
}

// StopLiveView cancels the stream job, asks the device to stop and forces
// the live-view state off no matter what the device said.
func (s *Supervisor) StopLiveView() {
	s.cancelJob(jobLiveView)
	err := s.camera.StopLiveView()

	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.LiveViewActive = false
		state.LiveViewLoading = false
		state.Frame = nil
		return state
	})

	if err != nil {
		s.reportError("Could not stop live view", err)
	}
}

func (s *Supervisor) StartTimelapse(settings *apitype.TimelapseSettings) {
	s.mux.Lock()
	if _, running := s.jobs[jobTimelapse]; running {
		s.mux.Unlock()
		logger.Debug.Print("Timelapse already running")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	timelapseJob := &job{cancel: cancel}
	s.jobs[jobTimelapse] = timelapseJob
	s.mux.Unlock()

	durationMinutes := settings.DurationMinutes()
	logger.Info.Printf("Starting timelapse: %d shots every %d s (about %d min)",
		settings.TotalShots(), settings.IntervalSeconds(), durationMinutes)
	s.sender.SendCommandToTopic(api.TimelapseStarted, &api.TimelapseStartedCommand{
		Settings:        settings,
		DurationMinutes: durationMinutes,
	})

	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Capturing = true
		state.Error = ""
		return state
	})

	go s.runTimelapse(ctx, settings, timelapseJob)
}

func (s *Supervisor) runTimelapse(ctx context.Context, settings *apitype.TimelapseSettings, thisJob *job) {
	stream, err := s.camera.StartTimelapse(ctx, settings)
	if err != nil {
		s.removeJob(jobTimelapse, thisJob)
		s.updateState(func(state apitype.CameraState) apitype.CameraState {
			state.Capturing = false
			return state
		})
		s.reportError("Could not start timelapse", err)
		return
	}

	for photo := range stream.Photos() {
		logger.Debug.Printf("Timelapse shot %s", photo)
		s.sender.SendCommandToTopic(api.PhotoCaptured, &api.PhotoCapturedCommand{Photo: photo})
	}

	s.removeJob(jobTimelapse, thisJob)
	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Capturing = false
		return state
	})
	if ctx.Err() == nil {
		if err := stream.Err(); err != nil {
			s.reportError("Timelapse failed", err)
		}
	}
}

// StopTimelapse only cancels the job and clears the flag. Unlike live
// view there is no device stop call to wait for; the periodic capture
// stops when its subscription is torn down.
func (s *Supervisor) StopTimelapse() {
	s.cancelJob(jobTimelapse)
	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Capturing = false
		return state
	})
}

func (s *Supervisor) Capture() {
	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Capturing = true
		return state
	})

	go func() {
		photo, err := s.camera.CapturePhoto(api.CaptureSingle)

		s.updateState(func(state apitype.CameraState) apitype.CameraState {
			state.Capturing = false
			return state
		})

		if err != nil {
			s.reportError("Could not capture photo", err)
			return
		}
		s.sender.SendCommandToTopic(api.PhotoCaptured, &api.PhotoCapturedCommand{Photo: photo})
	}()
}

func (s *Supervisor) AutoFocus() {
	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Focusing = true
		return state
	})

	go func() {
		if err := s.camera.AutoFocus(); err != nil {
			s.updateState(func(state apitype.CameraState) apitype.CameraState {
				state.Focusing = false
				return state
			})
			s.reportError("Could not focus", err)
			return
		}

		s.mux.Lock()
		s.messageGeneration += 1
		generation := s.messageGeneration
		s.mux.Unlock()

		s.updateState(func(state apitype.CameraState) apitype.CameraState {
			state.Focusing = false
			state.SuccessMessage = "Focus locked"
			return state
		})
		time.AfterFunc(successMessageDelay, func() {
			s.clearSuccessMessage(generation)
		})
	}()
}

func (s *Supervisor) ClearMessages() {
	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Error = ""
		state.SuccessMessage = ""
		return state
	})
}

func (s *Supervisor) Cleanup() {
	logger.Info.Print("Shutting down camera operations")
	s.cancelJob(jobLiveView)
	s.cancelJob(jobTimelapse)
}

// clearSuccessMessage drops the transient message unless a newer one has
// superseded it in the meantime.
func (s *Supervisor) clearSuccessMessage(generation int) {
	s.mux.Lock()
	current := s.messageGeneration
	s.mux.Unlock()
	if current != generation {
		return
	}

	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.SuccessMessage = ""
		return state
	})
}

func (s *Supervisor) updateState(update func(state apitype.CameraState) apitype.CameraState) {
	s.mux.Lock()
	s.state = update(s.state)
	snapshot := s.state
	s.mux.Unlock()

	s.sender.SendCommandToTopic(api.CameraStateUpdated, &api.CameraStateCommand{State: snapshot})
}

func (s *Supervisor) reportError(message string, err error) {
	s.updateState(func(state apitype.CameraState) apitype.CameraState {
		state.Error = message
		return state
	})
	s.sender.SendError(message, err)
}

func (s *Supervisor) cancelJob(kind jobKind) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if activeJob, ok := s.jobs[kind]; ok {
		logger.Debug.Printf("Cancelling %s job", kind)
		activeJob.cancel()
		delete(s.jobs, kind)
	}
}

// removeJob only removes the caller's own job entry. A finished run must
// not tear down a newer job that was started after the old one was
// cancelled.
func (s *Supervisor) removeJob(kind jobKind, thisJob *job) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.jobs[kind] == thisJob {
		delete(s.jobs, kind)
	}
}
