package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Фиксированные пути пакетного режима. Не настраиваются через окружение.
const (
	InputFile  = "ivntest.xlsx"
	OutputFile = "filtered_new_components_similarity.xlsx"
)

type Config struct {
	Host           string
	Port           int
	AllowOrigins   []string
	LogLevel       string
	MaxUploadMB    int
	LogFile        string
	CandidatesFile string
}

func Load() Config {
	port, err := strconv.Atoi(getenv("PORT", "8083"))
	if err != nil || port <= 0 {
		port = 8083
	}
	mb, err := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	if err != nil || mb <= 0 {
		mb = 64
	}
	origins := splitList(getenv("ALLOW_ORIGINS", "*"))
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           port,
		AllowOrigins:   origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		MaxUploadMB:    mb,
		LogFile:        getenv("LOG_FILE", "logs/component-linker.log"),
		CandidatesFile: getenv("CANDIDATES_FILE", "new_components.yaml"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
