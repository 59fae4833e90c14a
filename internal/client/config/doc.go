// Package config loads runtime configuration for the releasedrop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   upload endpoint URL
//	-m string   transport: http or s3
//	-r string   default release
//	-t int      upload timeout (seconds, 0 = none)
//	-d string   activity database path
//	-p string   YAML policy tables
//	-n string   user tag for the activity log
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds. S3 settings are only available here:
//
//	{
//	  "upload_endpoint": "https://uploads.example/",
//	  "transport": "s3",
//	  "upload_timeout": "2m",
//	  "s3_bucket": "builds",
//	  "s3_region": "eu-central-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minio",
//	  "s3_secret_key": "minio123",
//	  "s3_url_ttl": "168h"
//	}
//
// This package does not read environment variables; the s3 transport falls
// back to the AWS default credential chain when no keys are configured.
package config
