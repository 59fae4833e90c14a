package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/flagx"
	"github.com/dmitrijs2005/releasedrop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	UploadEndpoint *string         `json:"upload_endpoint"`
	Transport      *string         `json:"transport"`
	DefaultRelease *string         `json:"default_release"`
	UploadTimeout  *timex.Duration `json:"upload_timeout"`
	DatabasePath   *string         `json:"database_path"`
	PolicyFile     *string         `json:"policy_file"`
	UserTag        *string         `json:"user_tag"`
	LogLevel       *string         `json:"log_level"`

	S3Bucket       *string         `json:"s3_bucket"`
	S3Region       *string         `json:"s3_region"`
	S3BaseEndpoint *string         `json:"s3_base_endpoint"`
	S3AccessKey    *string         `json:"s3_access_key"`
	S3SecretKey    *string         `json:"s3_secret_key"`
	S3URLTTL       *timex.Duration `json:"s3_url_ttl"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read or unmarshal
// errors panic; main is expected to let them surface.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.UploadEndpoint, jc.UploadEndpoint)
	setString(&cfg.Transport, jc.Transport)
	setString(&cfg.DefaultRelease, jc.DefaultRelease)
	setDuration(&cfg.UploadTimeout, jc.UploadTimeout)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.PolicyFile, jc.PolicyFile)
	setString(&cfg.UserTag, jc.UserTag)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setDuration(&cfg.S3URLTTL, jc.S3URLTTL)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
