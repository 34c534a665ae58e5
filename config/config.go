package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	News    NewsConfig    `yaml:"news"`
	LLM     LLMConfig     `yaml:"llm"`
	Storage StorageConfig `yaml:"storage"`
	Content ContentConfig `yaml:"content"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// NewsConfig 는 뉴스 수집 경로의 캐시/쿨다운 정책을 정의한다.
type NewsConfig struct {
	// Provider 는 "gnews" 또는 "rss" 이다.
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`

	// Freshness 안에서는 캐시된 기사를 그대로 돌려준다.
	Freshness string `yaml:"freshness"`
	// Cooldown 안에서는 같은 키로 외부 API 를 다시 호출하지 않는다.
	Cooldown string `yaml:"cooldown"`
	// MaxTrackedKeys 는 쿨다운 추적 키의 최대 개수이다. 초과 시 LRU 로 제거된다.
	MaxTrackedKeys int `yaml:"max_tracked_keys"`

	// WarmInterval 은 aggregate 워커가 모든 카테고리를 미리 수집하는 주기이다.
	WarmInterval string `yaml:"warm_interval"`

	// Feeds 는 provider 가 rss 일 때 카테고리별 피드 URL 목록이다.
	Feeds map[string][]string `yaml:"feeds"`
}

type LLMConfig struct {
	// Provider 는 "mistral" 또는 "google" 이다.
	Provider  string `yaml:"provider"`
	ModelName string `yaml:"model_name"`
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`

	// SummaryQuota 는 aggregate 가 TL;DR 을 미리 만들 때의 호출 한도다. API 요청 경로에는 적용하지 않는다.
	SummaryQuota SummaryQuotaConfig `yaml:"summary_quota"`
}

// SummaryQuotaConfig 의 0 이하 값은 제한 없음이다.
type SummaryQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type StorageConfig struct {
	// Backend 는 "memory" 또는 "mongo" 이다.
	Backend     string `yaml:"backend"`
	MongoURI    string `yaml:"mongo_uri"`
	MongoDBName string `yaml:"mongo_db_name"`
}

// ContentConfig 는 TL;DR 생성 전 원문 페이지 추출 설정이다.
type ContentConfig struct {
	Enrich bool `yaml:"enrich"`
	// Renderer 는 "http" 또는 "chrome" 이다.
	Renderer     string `yaml:"renderer"`
	MaxTextRunes int    `yaml:"max_text_runes"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := Default()

	// load configuration file; defaults are used when it does not exist
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}

	c.applyEnv()
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Default 는 config.yaml 이 없을 때 사용하는 기본 설정이다.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{Level: "info"},
		News: NewsConfig{
			Provider:       "gnews",
			BaseURL:        "https://gnews.io/api/v4",
			Timeout:        "15s",
			Freshness:      "5m",
			Cooldown:       "10s",
			MaxTrackedKeys: 1024,
			WarmInterval:   "30m",
		},
		LLM: LLMConfig{
			Provider:  "mistral",
			ModelName: "mistral-tiny",
			BaseURL:   "https://api.mistral.ai/v1",
			Timeout:   "60s",
		},
		Storage: StorageConfig{
			Backend:     "memory",
			MongoDBName: "techpulse",
		},
		Content: ContentConfig{
			Enrich:       false,
			Renderer:     "http",
			MaxTextRunes: 4000,
		},
	}
}

func (c *AppConfig) applyEnv() {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Storage.MongoURI = uri
	}
	if lv := os.Getenv("LOG_LEVEL"); lv != "" {
		c.Logging.Level = lv
	}
}

// GNewsAPIKey 와 LLM 키는 설정 파일이 아닌 환경변수에서만 읽는다.
func GNewsAPIKey() string { return os.Getenv("GNEWS_API_KEY") }

func MistralAPIKey() string { return os.Getenv("MISTRAL_API_KEY") }

func GeminiAPIKey() string { return os.Getenv("GEMINI_API_KEY") }

func (n NewsConfig) FreshnessDuration() time.Duration {
	return parseDuration(n.Freshness, 5*time.Minute)
}

func (n NewsConfig) CooldownDuration() time.Duration {
	return parseDuration(n.Cooldown, 10*time.Second)
}

func (n NewsConfig) TimeoutDuration() time.Duration {
	return parseDuration(n.Timeout, 15*time.Second)
}

func (n NewsConfig) WarmIntervalDuration() time.Duration {
	return parseDuration(n.WarmInterval, 30*time.Minute)
}

func (l LLMConfig) TimeoutDuration() time.Duration {
	return parseDuration(l.Timeout, 60*time.Second)
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
