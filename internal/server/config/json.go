package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophpass/internal/flagx"
	"github.com/dmitrijs2005/gophpass/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration so
// both "15m" and integer nanoseconds are accepted. Pointer fields distinguish
// "absent" from the zero value, so a partial file only overrides what it sets.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	SMTPHost                    *string         `json:"smtp_host"`
	SMTPPort                    *int            `json:"smtp_port"`
	SMTPUsername                *string         `json:"smtp_username"`
	SMTPPassword                *string         `json:"smtp_password"`
	MailFrom                    *string         `json:"mail_from"`
	MailFromName                *string         `json:"mail_from_name"`
	LogBackend                  *string         `json:"log_backend"`
	LogLevel                    *string         `json:"log_level"`
	ExposeInternalErrors        *bool           `json:"expose_internal_errors"`
}

// parseJson loads the file named by -c / -config into config. Without the
// flag nothing happens. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIfPresent(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIfPresent(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIfPresent(&config.DatabaseDSN, c.DatabaseDSN)
	setIfPresent(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setIfPresent(&config.BcryptCost, c.BcryptCost)
	setIfPresent(&config.SMTPHost, c.SMTPHost)
	setIfPresent(&config.SMTPPort, c.SMTPPort)
	setIfPresent(&config.SMTPUsername, c.SMTPUsername)
	setIfPresent(&config.SMTPPassword, c.SMTPPassword)
	setIfPresent(&config.MailFrom, c.MailFrom)
	setIfPresent(&config.MailFromName, c.MailFromName)
	setIfPresent(&config.LogBackend, c.LogBackend)
	setIfPresent(&config.LogLevel, c.LogLevel)
	setIfPresent(&config.ExposeInternalErrors, c.ExposeInternalErrors)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
