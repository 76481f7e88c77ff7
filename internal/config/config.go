package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	LLM       LLMConfig       `yaml:"llm"`
	Translate TranslateConfig `yaml:"translate"`
	Ingest    IngestConfig    `yaml:"ingest"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"4194304"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	// JobTTL is how long ingest job status stays readable after the last update.
	JobTTL time.Duration `yaml:"job_ttl" env:"REDIS_JOB_TTL" env-default:"24h"`
}

// Supported model providers.
const (
	ProviderDeepSeek  = "deepseek"
	ProviderAnthropic = "anthropic"
)

// LLMConfig selects and configures the language model used for extraction
// and explanation. An empty APIKey is allowed at load time; model calls then
// fail with domain.ErrConfigurationMissing.
type LLMConfig struct {
	Provider   string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"deepseek"`
	APIKey     string        `yaml:"api_key"     env:"LLM_API_KEY"`
	Model      string        `yaml:"model"       env:"LLM_MODEL"`
	BaseURL    string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"3m"`
	MaxRetries int           `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"1"`
}

// TranslateConfig holds settings of the free translation lookup.
type TranslateConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"TRANSLATE_ENABLED"      env-default:"true"`
	MyMemoryURL string        `yaml:"mymemory_url" env:"TRANSLATE_MYMEMORY_URL" env-default:"https://api.mymemory.translated.net"`
	LibreURL    string        `yaml:"libre_url"    env:"TRANSLATE_LIBRE_URL"    env-default:"https://libretranslate.com"`
	SourceLang  string        `yaml:"source_lang"  env:"TRANSLATE_SOURCE_LANG"  env-default:"en"`
	TargetLang  string        `yaml:"target_lang"  env:"TRANSLATE_TARGET_LANG"  env-default:"zh-Hans"`
	Timeout     time.Duration `yaml:"timeout"      env:"TRANSLATE_TIMEOUT"      env-default:"10s"`
	CacheTTL    time.Duration `yaml:"cache_ttl"    env:"TRANSLATE_CACHE_TTL"    env-default:"168h"`
}

// IngestConfig holds exam ingestion settings.
type IngestConfig struct {
	// ChunkMaxChars is the chunk size in characters; 0 disables chunking.
	ChunkMaxChars  int  `yaml:"chunk_max_chars" env:"INGEST_CHUNK_MAX_CHARS" env-default:"12000"`
	ShuffleOptions bool `yaml:"shuffle_options" env:"INGEST_SHUFFLE_OPTIONS" env-default:"true"`
	// TranslateConcurrency bounds parallel translation lookups per question.
	TranslateConcurrency int `yaml:"translate_concurrency" env:"INGEST_TRANSLATE_CONCURRENCY" env-default:"5"`
	ExportMaxQuestions   int `yaml:"export_max_questions"  env:"INGEST_EXPORT_MAX_QUESTIONS"  env-default:"5000"`
	// FillPhonetics looks up missing vocabulary phonetics in the dictionary API.
	FillPhonetics bool   `yaml:"fill_phonetics"  env:"INGEST_FILL_PHONETICS"  env-default:"true"`
	DictionaryURL string `yaml:"dictionary_url"  env:"INGEST_DICTIONARY_URL"  env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
}

// RateLimitConfig limits model-backed routes per client address.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
