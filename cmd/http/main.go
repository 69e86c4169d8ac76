package main

import (
	"context"
	"medxbay-service/internal/app/config"
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/delivery/http/routers"
	"medxbay-service/internal/app/drivers/database"
	"medxbay-service/internal/app/drivers/logger"
	smtpdriver "medxbay-service/internal/app/drivers/mailer"
	"medxbay-service/internal/app/drivers/messaging"
	miniodriver "medxbay-service/internal/app/drivers/storage"
	"medxbay-service/internal/app/services/core/admin"
	"medxbay-service/internal/app/services/core/auth"
	"medxbay-service/internal/app/services/core/blogs"
	"medxbay-service/internal/app/services/core/bookings"
	"medxbay-service/internal/app/services/core/chats"
	"medxbay-service/internal/app/services/core/doctors"
	"medxbay-service/internal/app/services/core/notifications"
	"medxbay-service/internal/app/services/core/patients"
	"medxbay-service/internal/app/services/core/prescriptions"
	"medxbay-service/internal/app/services/core/session"
	"medxbay-service/internal/app/services/core/subscriptions"
	"medxbay-service/internal/app/services/core/users"
	"medxbay-service/internal/app/services/core/worker"
	"medxbay-service/internal/app/services/shared/calendar"
	"medxbay-service/internal/app/services/shared/locker"
	"medxbay-service/internal/app/services/shared/mailer"
	paymentgateway "medxbay-service/internal/app/services/shared/payment_gateway"
	"medxbay-service/internal/app/services/shared/redis"
	"medxbay-service/internal/app/services/shared/storage"
	"medxbay-service/internal/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()
	utils.SetResponseLogger(zapLogger)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	bookingWorker := bootstrapTheApp(runCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	bookingWorker.Stop()
	cancelRun()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(runCtx context.Context, bootstrap config.Bootstrap) *worker.Worker {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.App.SessionExpTimeInHour)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize mailer publisher: %v", err)
	}

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerConsumer, err := mailer.NewConsumer(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize mailer consumer: %v", err)
	}
	if err := mailerConsumer.Start(runCtx); err != nil {
		bootstrap.Logger.Fatalf("Failed to start mailer consumer: %v", err)
	}

	minioClient := miniodriver.NewMinio(bootstrap.DriverConfig, bootstrap.Logger)
	storageService := storage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	calendarService := calendar.NewCalendarClient(bootstrap.InternalConfig)
	paymentGatewayService := paymentgateway.NewGatewayService(bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, sessionService, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoClient, dbName)
	chatMongoRepository := chats.NewChatMongoRepository(bootstrap.MongoClient, dbName)
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoClient, dbName)
	subscriptionMongoRepository := subscriptions.NewSubscriptionMongoRepository(bootstrap.MongoClient, dbName)
	blogMongoRepository := blogs.NewBlogMongoRepository(bootstrap.MongoClient, dbName)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoClient, dbName)

	// Notification
	notificationService := notifications.NewNotificationService(notificationMongoRepository, sessionService)
	notificationController := notifications.NewNotificationController(notificationService)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		patientMongoRepository,
		doctorMongoRepository,
		sessionService,
		bootstrap.InternalConfig.JWT.Secret,
		bootstrap.InternalConfig.JWT.ExpTimeInHour,
	)
	authController := auth.NewAuthController(authUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		sessionService,
		storageService,
		bootstrap.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB,
	)
	doctorController := doctors.NewDoctorController(doctorUsecase)

	// Chat
	chatUsecase := chats.NewChatUsecase(
		chatMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		sessionService,
	)
	chatController := chats.NewChatController(chatUsecase)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		sessionService,
		lockerService,
		mailerService,
		calendarService,
		chatUsecase,
		notificationService,
		bootstrap.ZapLogger,
	)
	bookingController := bookings.NewBookingController(bookingUsecase)

	// Prescription
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		bookingMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		sessionService,
		mailerService,
		notificationService,
		bootstrap.ZapLogger,
	)
	prescriptionController := prescriptions.NewPrescriptionController(prescriptionUsecase)

	// Subscription
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(
		subscriptionMongoRepository,
		doctorMongoRepository,
		sessionService,
		paymentGatewayService,
		notificationService,
		bootstrap.ZapLogger,
	)
	subscriptionController := subscriptions.NewSubscriptionController(subscriptionUsecase, bootstrap.InternalConfig.Payment.WebhookKey)

	// Blog
	blogUsecase := blogs.NewBlogUsecase(
		blogMongoRepository,
		doctorMongoRepository,
		sessionService,
		notificationService,
		bootstrap.ZapLogger,
	)
	blogController := blogs.NewBlogController(blogUsecase)

	// Admin
	adminUsecase := admin.NewAdminUsecase(
		doctorMongoRepository,
		patientMongoRepository,
		bookingMongoRepository,
		blogMongoRepository,
		sessionService,
		mailerService,
		notificationService,
		bootstrap.ZapLogger,
	)
	adminController := admin.NewAdminController(adminUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		bookingController,
		chatController,
		prescriptionController,
		subscriptionController,
		blogController,
		notificationController,
		adminController,
	)

	bookingWorker := worker.NewWorker(
		bootstrap.ZapLogger,
		bootstrap.InternalConfig,
		lockerService,
		bookingMongoRepository,
		subscriptionUsecase,
	)
	bookingWorker.Start(runCtx)

	return bookingWorker
}
