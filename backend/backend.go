package backend

import (
	"vincit.fi/camera-remote/api"
	"vincit.fi/camera-remote/backend/camera"
	"vincit.fi/camera-remote/backend/database"
	"vincit.fi/camera-remote/backend/decoder"
	"vincit.fi/camera-remote/backend/delivery"
	"vincit.fi/camera-remote/backend/library"
	"vincit.fi/camera-remote/backend/orientation"
	"vincit.fi/camera-remote/backend/preload"
	"vincit.fi/camera-remote/backend/referral"
	"vincit.fi/camera-remote/common"
	"vincit.fi/camera-remote/common/event"
	"vincit.fi/camera-remote/common/logger"
)

type Stores struct {
	ReferralStore *database.ReferralStore

	db *database.Database
}

func (s *Stores) Close() {
	s.db.Close()
}

type Brokers struct {
	Broker        *event.Broker
	DevNullBroker *event.DevNullBroker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Print("Initialize event brokers...")
	brokers := &Brokers{
		Broker:        event.InitBus(eventBusQueueSize),
		DevNullBroker: event.InitDevNullBus(),
	}
	logger.Debug.Print("Event brokers initialized")
	return brokers
}

type Services struct {
	TierCache        api.TierCache
	ImageDelivery    api.ImageDelivery
	Preloader        api.Preloader
	PhotoLibrary     api.PhotoLibrary
	CameraOperations api.CameraOperations
	ReferralService  api.ReferralService
	Discovery        *camera.Discovery
}

func (s *Services) Close() {
	defer s.TierCache.Clear()
	defer s.ImageDelivery.Close()
	defer s.CameraOperations.Cleanup()
}

func InitializeStores(databaseFile string) *Stores {
	logger.Debug.Print("Initialize stores...")
	db := database.NewDatabase(databaseFile)
	db.Migrate()

	stores := &Stores{
		ReferralStore: database.NewReferralStore(db),
		db:            db,
	}
	logger.Debug.Print("Stores initialized")
	return stores
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Print("Initialize services...")
	tierCache := delivery.NewTierCache()
	resolver := orientation.NewResolver()
	imageDecoder := decoder.NewImageDecoder()
	imageDelivery := delivery.NewImageDelivery(tierCache, resolver, imageDecoder)

	fetcher := library.NewFileFetcher(brokers.Broker)
	preloader := preload.NewPreloader(tierCache, fetcher)
	brokers.Broker.Subscribe(api.PhotoDataFetched, func(command *api.PhotoDataCommand) {
		preloader.Done(command.Id)
	})

	services := &Services{
		TierCache:        tierCache,
		ImageDelivery:    imageDelivery,
		Preloader:        preloader,
		PhotoLibrary:     library.NewPhotoLibrary(brokers.Broker, preloader),
		CameraOperations: camera.NewCameraOperations(camera.NewUnavailableCamera(), brokers.Broker),
		ReferralService:  referral.NewReferralService(brokers.Broker, stores.ReferralStore),
		Discovery:        camera.NewDiscovery(brokers.Broker),
	}
	logger.Debug.Print("Services initialized")
	return services
}
