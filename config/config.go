package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// GitHub設定
	GitHubRepo string
	GHPath     string

	// ファイルパス
	BacklogCSV string
	StateDB    string

	// レート制限設定
	RateLimitMS int
}

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	config := &Config{
		GitHubRepo:  getEnvWithDefault("GITHUB_REPO", "Presstronic/recontronic-cli-client"),
		GHPath:      getEnvWithDefault("GH_PATH", "gh"),
		BacklogCSV:  getEnvWithDefault("MVP_CSV", "mvp-issues.csv"),
		StateDB:     getEnvWithDefault("STATE_DB", ".import-state.db"),
		RateLimitMS: getEnvAsIntWithDefault("RATE_LIMIT_MS", 500),
	}

	return config, nil
}

// RateLimit は各行の処理後に待機する時間を返します
func (c *Config) RateLimit() time.Duration {
	return time.Duration(c.RateLimitMS) * time.Millisecond
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// デフォルト値付きで環境変数を整数として取得
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
