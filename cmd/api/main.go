package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"autoloc/internal/config"
	"autoloc/internal/database"
	"autoloc/internal/middleware"
	"autoloc/internal/modules/auth"
	"autoloc/internal/modules/booking"
	"autoloc/internal/modules/consent"
	"autoloc/internal/modules/favorite"
	"autoloc/internal/modules/geocode"
	"autoloc/internal/modules/message"
	"autoloc/internal/modules/photo"
	"autoloc/internal/modules/vehicle"
	jwtsvc "autoloc/internal/pkg/jwt"
	"autoloc/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	consentRepo := repository.NewConsentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	var images vehicle.ImageStore
	if cfg.CloudinaryCloudName != "" {
		images = photo.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	} else {
		images = photo.NewDiskStore(cfg.UploadDir, cfg.StaticBase)
	}

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	vehicleHandler := vehicle.NewHandler(vehicle.NewService(vehicleRepo, availabilityRepo, images))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, vehicleRepo, availabilityRepo))
	messageHandler := message.NewHandler(message.NewService(messageRepo, bookingRepo))
	favoriteHandler := favorite.NewHandler(favoriteRepo)
	consentHandler := consent.NewHandler(consentRepo)
	geocodeHandler := geocode.NewHandler(geocode.NewHereClient(cfg.HereAPIKey))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// Locally stored photos (dev setup without Cloudinary)
	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		vehicleHandler.RegisterPublicRoutes(v1)
		geocodeHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			vehicleHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			messageHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			consentHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
