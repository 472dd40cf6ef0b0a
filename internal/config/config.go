package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

// Поддерживаемые бэкенды хранилища
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Firebase  FirebaseConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Quiz      QuizConfig
	Progress  ProgressConfig
	Log       LogConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	Mode         string // debug | release | test
}

// StoreConfig определяет, какое хранилище документов используется
type StoreConfig struct {
	Backend string
}

// FirebaseConfig содержит учетные данные сервисного аккаунта Firestore.
// Учетные данные задаются либо путем к файлу, либо JSON-строкой в переменной окружения.
type FirebaseConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	CredentialsJSON string `mapstructure:"credentials_json"`
	ProjectID       string `mapstructure:"project_id"`
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

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster. Пустой адрес отключает Redis.
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single'.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`
}

// RateLimitConfig содержит ограничения частоты отправки результатов
type RateLimitConfig struct {
	MaxRequests int `mapstructure:"max_requests"`
	WindowSec   int `mapstructure:"window_sec"`
}

// QuizConfig содержит настройки выдачи вопросов
type QuizConfig struct {
	SampleSize  int  `mapstructure:"sample_size"`
	HideAnswers bool `mapstructure:"hide_answers"`
}

// ProgressConfig содержит настройки выдачи истории результатов
type ProgressConfig struct {
	Timezone string
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level string
	File  string
}

// Enabled сообщает, настроен ли Redis
func (r *RedisConfig) Enabled() bool {
	return len(r.Addrs) > 0 || r.Addr != ""
}

// Validate проверяет, что заданы обязательные параметры подключения
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" || d.DBName == "" || d.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	return nil
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Credentials возвращает опцию клиента Google API с учетными данными.
// JSON из переменной окружения имеет приоритет над файлом.
func (f *FirebaseConfig) Credentials() (option.ClientOption, error) {
	if strings.TrimSpace(f.CredentialsJSON) != "" {
		return option.WithCredentialsJSON([]byte(f.CredentialsJSON)), nil
	}
	if f.CredentialsFile == "" {
		return nil, fmt.Errorf("firebase credentials are not configured (set FIREBASE_CREDENTIALS_FILE or FIREBASE_CREDENTIALS_JSON)")
	}
	if _, err := os.Stat(f.CredentialsFile); err != nil {
		return nil, fmt.Errorf("firebase credentials file %q is not readable: %w", f.CredentialsFile, err)
	}
	return option.WithCredentialsFile(f.CredentialsFile), nil
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "5000")
	vip.SetDefault("server.read_timeout", 15)
	vip.SetDefault("server.write_timeout", 15)
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("store.backend", BackendFirestore)
	vip.SetDefault("firebase.credentials_file", "serviceAccountKey.json")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("rate_limit.max_requests", 30)
	vip.SetDefault("rate_limit.window_sec", 60)
	vip.SetDefault("quiz.sample_size", 4)
	vip.SetDefault("quiz.hide_answers", false)
	vip.SetDefault("progress.timezone", "UTC")
	vip.SetDefault("log.level", "info")

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "PORT")
	vip.BindEnv("server.mode", "GIN_MODE")

	vip.BindEnv("store.backend", "STORE_BACKEND")

	vip.BindEnv("firebase.credentials_file", "FIREBASE_CREDENTIALS_FILE")
	vip.BindEnv("firebase.credentials_json", "FIREBASE_CREDENTIALS_JSON")
	vip.BindEnv("firebase.project_id", "FIREBASE_PROJECT_ID")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window_sec", "RATE_LIMIT_WINDOW_SEC")

	vip.BindEnv("quiz.sample_size", "QUIZ_SAMPLE_SIZE")
	vip.BindEnv("quiz.hide_answers", "QUIZ_HIDE_ANSWERS")

	vip.BindEnv("progress.timezone", "PROGRESS_TIMEZONE")

	vip.BindEnv("log.level", "LOG_LEVEL")
	vip.BindEnv("log.file", "LOG_FILE")

	// 3. Читаем файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok || errors.Is(err, fs.ErrNotExist) {
				log.Printf("Config file '%s' not found, using environment variables and defaults", configPath)
			} else {
				log.Printf("Warning: failed to read config file '%s': %v", configPath, err)
			}
		}
	}

	// 4. Анмаршалим конфигурацию (Viper объединит значения из файла и env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// REDIS_ADDRS из окружения приходит одной строкой через запятую, возможно с пробелами
	cfg.Redis.Addrs = splitAndTrim(strings.Join(cfg.Redis.Addrs, ","))

	// 5. Проверка параметров
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty (check PORT env var)")
	}
	// Неполные настройки хранилища не останавливают запуск: сервер работает с "Database not connected"
	switch c.Store.Backend {
	case BackendFirestore, BackendPostgres:
	default:
		return fmt.Errorf("unsupported store backend: %q", c.Store.Backend)
	}
	if c.Quiz.SampleSize < 1 {
		return fmt.Errorf("quiz sample size must be positive, got %d", c.Quiz.SampleSize)
	}
	if c.RateLimit.MaxRequests < 1 || c.RateLimit.WindowSec < 1 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
