package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Matching  MatchingConfig
	Catalog   CatalogConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	MigrationsDir string // empty applies the embedded migrations
	AutoMigrate   bool
	AutoSeed      bool

	// AllowedOrigins limits websocket upgrades; empty allows any origin.
	AllowedOrigins []string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
	// KeyPrefix namespaces every key so several deployments can share a server.
	KeyPrefix string
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
	Issuer          string
}

type MatchingConfig struct {
	DictionaryPath string
	TopSkills      int
}

// CatalogConfig points the board importer at an HTML job board. An empty
// BoardURL disables scraping; the bundled sample catalog is used instead.
type CatalogConfig struct {
	BoardName        string
	BoardURL         string
	Pages            int
	ItemSelector     string
	TitleSelector    string
	CompanySelector  string
	LocationSelector string
	TypeSelector     string
	SalarySelector   string
	TagSelector      string
	LinkSelector     string
	SummarySelector  string
}

type SchedulerConfig struct {
	Enabled         bool
	ImportSchedule  string
	TaggingSchedule string
	Workers         int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		v := opt(key)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return n
	}
	optBool := func(key string, def bool) bool {
		v := opt(key)
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return b
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := opt(key)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
		AutoMigrate:   optBool("AUTO_MIGRATE", true),
		AutoSeed:      optBool("AUTO_SEED", false),

		AllowedOrigins: splitList(opt("WS_ALLOWED_ORIGINS")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      time.Duration(optInt("REDIS_TTL", 600)) * time.Second,

		KeyPrefix: optDefault("REDIS_KEY_PREFIX", "nexture:"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		Issuer:          optDefault("JWT_ISSUER", "nexture"),
	}

	cfg.Matching = MatchingConfig{
		DictionaryPath: opt("SKILL_DICTIONARY_PATH"),
		TopSkills:      optInt("ANALYTICS_TOP_SKILLS", 10),
	}

	cfg.Catalog = CatalogConfig{
		BoardName:        optDefault("CATALOG_BOARD_NAME", "board"),
		BoardURL:         opt("CATALOG_BOARD_URL"),
		Pages:            optInt("CATALOG_BOARD_PAGES", 1),
		ItemSelector:     optDefault("CATALOG_ITEM_SELECTOR", ".job"),
		TitleSelector:    optDefault("CATALOG_TITLE_SELECTOR", ".title"),
		CompanySelector:  optDefault("CATALOG_COMPANY_SELECTOR", ".company"),
		LocationSelector: optDefault("CATALOG_LOCATION_SELECTOR", ".location"),
		TypeSelector:     optDefault("CATALOG_TYPE_SELECTOR", ".type"),
		SalarySelector:   optDefault("CATALOG_SALARY_SELECTOR", ".salary"),
		TagSelector:      optDefault("CATALOG_TAG_SELECTOR", ".tag"),
		LinkSelector:     optDefault("CATALOG_LINK_SELECTOR", "a[href]"),
		SummarySelector:  optDefault("CATALOG_SUMMARY_SELECTOR", ".summary"),
	}

	cfg.Scheduler = SchedulerConfig{
		Enabled:         optBool("SCHEDULER_ENABLED", true),
		ImportSchedule:  optDefault("CATALOG_IMPORT_SCHEDULE", "0 */6 * * *"),
		TaggingSchedule: optDefault("TAGGING_SCHEDULE", "*/30 * * * *"),
		Workers:         optInt("PIPELINE_WORKERS", 4),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsMissingRequired reports whether err came from absent required variables.
func IsMissingRequired(err error) bool {
	return errors.Is(err, errMissingRequiredEnv)
}
