package config

import (
	"medxbay-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medxbay"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medxbay-profile-pictures"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@medxbay.com"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                  utils.GetEnvString("APP_ENV", "development"),
			Port:                                 utils.GetEnvString("APP_PORT", ":8080"),
			Version:                              utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                             utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:                       utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			BaseURL:                              utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			MaxRequests:                          utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:           utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SessionExpTimeInHour:                 utils.GetEnvInt("APP_SESSION_EXP_TIME_IN_HOUR", 24),
			RabbitMQMailerQueue:                  utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "medxbay.mailer"),
			WorkerCronSpec:                       utils.GetEnvString("APP_WORKER_CRON_SPEC", "@hourly"),
			BookingAutoCompleteGraceInHour:       utils.GetEnvInt("APP_BOOKING_AUTO_COMPLETE_GRACE_IN_HOUR", 24),
			MinioProfilePictureMaxUploadSizeInMB: utils.GetEnvInt64("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Payment: Payment{
			BaseUrl:    utils.GetEnvString("PAYMENT_BASE_URL", "https://api.payment-gateway.test"),
			APIKey:     utils.GetEnvString("PAYMENT_API_KEY", ""),
			WebhookKey: utils.GetEnvString("PAYMENT_WEBHOOK_KEY", ""),
		},
		Calendar: Calendar{
			BaseUrl:           utils.GetEnvString("CALENDAR_BASE_URL", "https://api.calendar-provider.test"),
			APIKey:            utils.GetEnvString("CALENDAR_API_KEY", ""),
			RequestsPerSecond: utils.GetEnvFloat("CALENDAR_REQUESTS_PER_SECOND", 5),
		},
	}
}
