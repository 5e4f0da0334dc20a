// Package config loads runtime settings for the Companies House tools.
package config

import "time"

// Config is the root configuration shared by the CLI and the Lambda handler.
type Config struct {
	CompaniesHouse CompaniesHouseConfig `yaml:"companies_house"`
	Log            LogConfig            `yaml:"log"`
	Export         ExportConfig         `yaml:"export"`
}

// CompaniesHouseConfig holds API credentials and transport settings.
type CompaniesHouseConfig struct {
	APIKey    string        `yaml:"api_key"    env:"CH_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"CH_BASE_URL"    env-default:"https://api.company-information.service.gov.uk"`
	Timeout   time.Duration `yaml:"timeout"    env:"CH_HTTP_TIMEOUT" env-default:"30s"`
	UserAgent string        `yaml:"user_agent" env:"CH_USER_AGENT"  env-default:"companies-house-go/1.0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ExportConfig controls where Lambda results are written. An empty S3Bucket
// disables the export.
type ExportConfig struct {
	S3Bucket           string `yaml:"s3_bucket"             env:"CH_EXPORT_S3_BUCKET"`
	S3Prefix           string `yaml:"s3_prefix"             env:"CH_EXPORT_S3_PREFIX"`
	AWSRegion          string `yaml:"aws_region"            env:"AWS_REGION"            env-default:"eu-west-2"`
	AWSAccessKeyID     string `yaml:"aws_access_key_id"     env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`
}

// Enabled reports whether results should be exported to S3.
func (e ExportConfig) Enabled() bool { return e.S3Bucket != "" }

// StaticCredentials reports whether both halves of an access key pair are set.
// Otherwise the default AWS credential chain is used.
func (e ExportConfig) StaticCredentials() bool {
	return e.AWSAccessKeyID != "" && e.AWSSecretAccessKey != ""
}
