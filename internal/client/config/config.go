package config

import (
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/common"
)

// Transport names accepted in Config.Transport.
const (
	TransportHTTP = "http"
	TransportS3   = "s3"
)

// Config holds runtime settings for the releasedrop CLI.
//
// Fields:
//   - UploadEndpoint: URL that receives the multipart POST (http transport).
//   - Transport: "http" or "s3".
//   - DefaultRelease: release used when the upload command names none.
//   - UploadTimeout: per-upload deadline; zero disables it.
//   - DatabasePath: SQLite file holding the activity log.
//   - PolicyFile: optional YAML access/size tables; empty means built-in tables.
//   - UserTag: recorded on every activity entry.
//   - LogLevel: debug, info, warn or error.
//   - InitialFile: file to select at startup (first positional argument).
//   - S3*: bucket settings for the s3 transport (JSON only).
type Config struct {
	UploadEndpoint string
	Transport      string
	DefaultRelease string
	UploadTimeout  time.Duration
	DatabasePath   string
	PolicyFile     string
	UserTag        string
	LogLevel       string
	InitialFile    string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3URLTTL       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UploadEndpoint = "https://atomnexis-appshub-uploader.voltedgebuilds.workers.dev"
	c.Transport = TransportHTTP
	c.DefaultRelease = "v1"
	c.UploadTimeout = 0
	c.DatabasePath = "releasedrop.db"
	c.PolicyFile = ""
	c.UserTag = common.DefaultUserTag
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
	c.S3URLTTL = 7 * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
