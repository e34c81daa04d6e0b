package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/camera"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/config"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/monitoring"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/soil"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/events"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/router"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ezviz"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/fbox"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ys"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName string = "greenhouse-monitoring"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	publisher := newPublisher(logger, cfg)
	defer publisher.Close()

	r, err := createAppAndSetupRouter(ctx, logger, cfg, publisher)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up application")
	}

	addr := fmt.Sprintf("%s:%s", cfg.ListenAddress, cfg.ServicePort)
	logger.Info().Str("addr", addr).Msg("starting to listen for connections")

	err = http.ListenAndServe(addr, r)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start router")
	}
}

func createAppAndSetupRouter(ctx context.Context, logger zerolog.Logger, cfg *config.Config, publisher events.Publisher) (*chi.Mux, error) {
	connect := database.NewSQLiteConnector(logger)
	if !cfg.DevMode {
		connect = database.NewPostgreSQLConnector(logger, cfg.DatabaseConnector())
	}

	db, err := database.NewDatabaseConnection(connect)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	cameras := database.NewCameraRepository(db)
	if cfg.CameraDevicesFile != "" {
		err = seedCameraDevices(ctx, cameras, cfg.CameraDevicesFile)
		if err != nil {
			return nil, err
		}
	}

	httpClient := vendors.NewHTTPClient(cfg.HTTPTimeout)

	monitoringSvc := monitoring.New(
		database.NewSensorRepository(db),
		publisher,
		ys.New(cfg.YSConfig(), ys.WithHTTPClient(httpClient)),
		fbox.New(cfg.FBoxConfig(), fbox.WithHTTPClient(httpClient)),
	)
	soilSvc := soil.New(database.NewSoilRepository(db), publisher)
	cameraSvc := camera.New(ezviz.New(cfg.EzvizConfig(), ezviz.WithHTTPClient(httpClient)), cameras)

	r := router.New(serviceName)

	return api.RegisterHandlers(logger, r, monitoringSvc, soilSvc, cameraSvc), nil
}

func seedCameraDevices(ctx context.Context, cameras database.CameraRepository, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open camera devices file: %w", err)
	}
	defer f.Close()

	return cameras.Seed(ctx, f)
}

func newPublisher(logger zerolog.Logger, cfg *config.Config) events.Publisher {
	if cfg.Events.Host == "" {
		logger.Info().Msg("no message broker configured, events will not be published")
		return events.NewNoopPublisher()
	}

	messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init messenger")
	}

	return events.NewPublisher(messenger)
}
