package main

import (
	"os"
	"os/signal"
	"syscall"
	"vincit.fi/camera-remote/backend"
	"vincit.fi/camera-remote/common"
	"vincit.fi/camera-remote/common/logger"
)

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	brokers := backend.InitializeEventBrokers(params.EventBusQueueSize())
	stores := backend.InitializeStores(params.DatabaseFile())
	defer stores.Close()

	services := backend.InitializeServices(params, stores, brokers)
	defer services.Close()

	if params.PhotoDir() != "" {
		services.PhotoLibrary.InitializeFromDirectory(params.PhotoDir())
		services.PhotoLibrary.RequestPhotos()
	}
	if params.SearchDevices() {
		go services.Discovery.FindDevices()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	logger.Info.Printf("Got signal %s, shutting down", sig)
}
