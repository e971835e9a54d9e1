package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	ArchiveDir   string        `yaml:"archiveDir"`
	ArchiveTTL   time.Duration `yaml:"archiveTTL"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type AuthConfig struct {
	AdminID       string `yaml:"adminId" validate:"required"`
	AdminEmail    string `yaml:"adminEmail" validate:"required|email"`
	AdminPassword string `yaml:"adminPassword" validate:"required"`
}

type ContentConfig struct {
	HistoryPageKey string `yaml:"historyPageKey" validate:"required"`
}

// LatencyConfig holds the artificial per-operation delays that emulate a
// remote backend. Reads are cheaper than writes, login is the slowest call.
type LatencyConfig struct {
	Enabled   bool          `yaml:"enabled"`
	List      time.Duration `yaml:"list"`
	Get       time.Duration `yaml:"get"`
	Write     time.Duration `yaml:"write"`
	Login     time.Duration `yaml:"login"`
	Logout    time.Duration `yaml:"logout"`
	Status    time.Duration `yaml:"status"`
	PageRead  time.Duration `yaml:"pageRead"`
	PageWrite time.Duration `yaml:"pageWrite"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Auth        AuthConfig    `yaml:"auth"`
	Content     ContentConfig `yaml:"content"`
	Latency     LatencyConfig `yaml:"latency"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
