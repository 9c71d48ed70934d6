package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Google   GoogleOAuthConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig содержит настройки локально подписываемого токена доступа
type JWTConfig struct {
	// Secret: серверный секрет для подписи токенов
	Secret string `mapstructure:"secret"`

	// Algorithm: алгоритм подписи (например, "HS256")
	Algorithm string `mapstructure:"algorithm"`

	// ExpirationMin: время жизни токена доступа в минутах
	ExpirationMin int `mapstructure:"expirationMin"`
}

// GoogleOAuthConfig содержит настройки внешнего провайдера идентификации
type GoogleOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла и переменных окружения.
// Все перечисленные в Config параметры обязательны, значений по умолчанию нет.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// Привязываем переменные окружения ЯВНО
	// Привязка для секции Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	// Привязка для секции JWT
	vip.BindEnv("jwt.secret", "JWT_SECRET")
	vip.BindEnv("jwt.algorithm", "JWT_ALGORITHM")
	vip.BindEnv("jwt.expirationMin", "JWT_EXPIRATIONMIN")

	// Привязка для секции Google OAuth2
	vip.BindEnv("google.client_id", "GOOGLE_CLIENT_ID")
	vip.BindEnv("google.client_secret", "GOOGLE_CLIENT_SECRET")

	// Привязка для Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.readtimeout", "SERVER_READTIMEOUT")
	vip.BindEnv("server.writetimeout", "SERVER_WRITETIMEOUT")

	// Пытаемся прочитать файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Логирование конфигурации (только в debug режиме, секреты не печатаем)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Database SSLMode: %s", cfg.Database.SSLMode)
		log.Printf("JWT Algorithm: %s", cfg.JWT.Algorithm)
		log.Printf("JWT Expiration Minutes: %d", cfg.JWT.ExpirationMin)
		log.Printf("JWT Secret Set: %t", cfg.JWT.Secret != "")
		log.Printf("Google Client ID Set: %t", cfg.Google.ClientID != "")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	// Проверка обязательных параметров
	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("server port is required in config (check SERVER_PORT env var)")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" || cfg.Database.Password == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user, password) is incomplete in config (check DATABASE_* env vars)")
	}
	if cfg.JWT.Secret == "" || cfg.JWT.Algorithm == "" {
		return nil, fmt.Errorf("JWT secret and algorithm are required in config (check JWT_SECRET, JWT_ALGORITHM env vars)")
	}
	if cfg.JWT.ExpirationMin <= 0 {
		return nil, fmt.Errorf("JWT expiration minutes must be positive (check JWT_EXPIRATIONMIN env var)")
	}
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return nil, fmt.Errorf("google OAuth2 client configuration is required (check GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET env vars)")
	}

	return &cfg, nil
}
