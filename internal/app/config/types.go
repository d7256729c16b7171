package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Timezone                    string
		EndpointPrefix              string
		MaxRequests                 int
		ShutdownTimeout             int
		RequestBodyLimitInMegabyte  int
		AttachmentMaxUploadSizeInMB int64
		RabbitMQSurveyEventQueue    string
		ResubmitPolicy              string
	}

	MongoDB struct {
		Host     string
		Port     string
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
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
