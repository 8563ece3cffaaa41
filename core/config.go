package core

import (
	"fmt"
	"strings"
)

// ConfigInput is the raw instance identity section of the config file.
type ConfigInput struct {
	Scheme       string `yaml:"scheme"`
	FQDN         string `yaml:"fqdn"`
	Port         int    `yaml:"port"`
	PageSize     int    `yaml:"pageSize"`
	JWTSecret    string `yaml:"jwtSecret"`
	Registration string `yaml:"registration"` // open or closed
}

// Config is the normalized instance identity threaded through services.
type Config struct {
	Scheme       string
	FQDN         string
	Port         int
	PageSize     int
	JWTSecret    string
	Registration string
}

func SetupConfig(base ConfigInput) Config {

	scheme := base.Scheme
	if scheme == "" {
		scheme = "https"
	}

	pageSize := base.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return Config{
		Scheme:       scheme,
		FQDN:         base.FQDN,
		Port:         base.Port,
		PageSize:     pageSize,
		JWTSecret:    base.JWTSecret,
		Registration: base.Registration,
	}
}

func defaultPort(scheme string) int {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	default:
		return 0
	}
}

// BaseURL is scheme://host with the port elided when it is the scheme default.
func (c Config) BaseURL() string {
	if c.Port == 0 || c.Port == defaultPort(c.Scheme) {
		return fmt.Sprintf("%s://%s", c.Scheme, c.FQDN)
	}
	return fmt.Sprintf("%s://%s:%d", c.Scheme, c.FQDN, c.Port)
}

// IsLocalHost reports whether host names this instance.
// Accepts both bare hostnames and host:port forms.
func (c Config) IsLocalHost(host string) bool {
	if host == c.FQDN {
		return true
	}
	bare, _, found := strings.Cut(host, ":")
	return found && bare == c.FQDN
}
