package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database URL (sqlite:///path)
//	-c/-config json file path with configs
//	-env environment name
//	-api-token static API bearer token
//	-jwt-secret access token signing secret
//	-token-expire-minutes access token lifetime in minutes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-statement-timeout per-statement timeout (e.g., "5s")
//	-log-level log level name
//	-log-format log output format (json or console)
//	-log-file path of an additional log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("crud-api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseURL string
	var jsonConfigPath string
	var environment string
	var apiToken string
	var jwtSecret string
	var tokenExpireMinutes int
	var requestTimeout time.Duration
	var statementTimeout time.Duration
	var logLevel, logFormat, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Environment name")
	fs.StringVar(&apiToken, "api-token", "", "Static API bearer token")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "Access token signing secret")
	fs.IntVar(&tokenExpireMinutes, "token-expire-minutes", 0, "Access token lifetime in minutes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&statementTimeout, "statement-timeout", 0, "Statement timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFormat, "log-format", "", "Log format: json or console")
	fs.StringVar(&logFile, "log-file", "", "Additional log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:              environment,
			APIToken:                 apiToken,
			JWTSecret:                jwtSecret,
			AccessTokenExpireMinutes: tokenExpireMinutes,
		},
		Storage: Storage{
			DB: DB{
				URL:              databaseURL,
				StatementTimeout: statementTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level:  logLevel,
			Format: logFormat,
			File:   logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Otherwise the host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
