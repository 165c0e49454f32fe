package common

import (
	"flag"
)

type Params struct {
	logLevel          string
	databaseFile      string
	photoDir          string
	searchDevices     bool
	eventBusQueueSize int
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:          "",
		databaseFile:      "",
		photoDir:          "",
		searchDevices:     false,
		eventBusQueueSize: 100,
	}
}

func ParseParams() *Params {
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	databaseFile := flag.String("databaseFile", "camera-remote.db", "Database file for the referral admin store")
	searchDevices := flag.Bool("searchDevices", true, "Search cameras from the local network on startup")
	queueSize := flag.Int("eventBusQueueSize", 100, "Queue size for the internal event bus")

	flag.Parse()
	photoDir := flag.Arg(0)

	return &Params{
		logLevel:          *logLevel,
		databaseFile:      *databaseFile,
		photoDir:          photoDir,
		searchDevices:     *searchDevices,
		eventBusQueueSize: *queueSize,
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) PhotoDir() string {
	return s.photoDir
}

func (s *Params) SearchDevices() bool {
	return s.searchDevices
}

func (s *Params) EventBusQueueSize() int {
	return s.eventBusQueueSize
}
