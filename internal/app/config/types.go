package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoClient    *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	InternalConfig struct {
		App      App
		JWT      JWT
		Payment  Payment
		Calendar Calendar
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env                                  string
		Port                                 string
		Version                              string
		Timezone                             string
		EndpointPrefix                       string
		BaseURL                              string
		MaxRequests                          int
		ShutdownTimeout                      int
		RequestBodyLimitInMegabyte           int
		SessionExpTimeInHour                 int
		RabbitMQMailerQueue                  string
		WorkerCronSpec                       string
		BookingAutoCompleteGraceInHour       int
		MinioProfilePictureMaxUploadSizeInMB int64
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Payment struct {
		BaseUrl    string
		APIKey     string
		WebhookKey string
	}

	Calendar struct {
		BaseUrl           string
		APIKey            string
		RequestsPerSecond float64
	}
)
