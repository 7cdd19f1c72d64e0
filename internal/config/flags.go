package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args using the global
// flag set.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-db-host, -db-port, -db-user, -db-password, -db-name, -db-ssl-mode database connection
//	-db-connect-timeout database connect and ping timeout (e.g., "5s")
//	-jwt-secret token signing key
//	-jwt-issuer token issuer name
//	-jwt-duration token duration (e.g., "1h", "30m")
//	-bcrypt-cost bcrypt work factor
//	-log-level minimum log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-body-limit maximum request body size in bytes
//	-rate-limit-requests requests allowed per client IP and window
//	-rate-limit-window rate limit window (e.g., "15m")
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var db DB
	var app App
	var server Server

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.StringVar(&db.Host, "db-host", "", "Database host")
	flag.IntVar(&db.Port, "db-port", 0, "Database port")
	flag.StringVar(&db.User, "db-user", "", "Database user")
	flag.StringVar(&db.Password, "db-password", "", "Database password")
	flag.StringVar(&db.Name, "db-name", "", "Database name")
	flag.StringVar(&db.SSLMode, "db-ssl-mode", "", "Database sslmode")
	flag.DurationVar(&db.ConnectTimeout, "db-connect-timeout", 0, "Database connect timeout (e.g., 5s)")

	flag.StringVar(&app.TokenSignKey, "jwt-secret", "", "Token signing key")
	flag.StringVar(&app.TokenIssuer, "jwt-issuer", "", "Token issuer")
	flag.DurationVar(&app.TokenDuration, "jwt-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.IntVar(&app.PasswordHashCost, "bcrypt-cost", 0, "bcrypt cost")
	flag.StringVar(&app.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.DurationVar(&server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	flag.Int64Var(&server.BodyLimit, "body-limit", 0, "Maximum request body size in bytes")
	flag.IntVar(&server.RateLimit.Requests, "rate-limit-requests", 0, "Requests per client IP and window")
	flag.DurationVar(&server.RateLimit.Window, "rate-limit-window", 0, "Rate limit window (e.g., 15m)")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	server.Host = serverAddress.Host
	server.Port = serverAddress.Port

	return &StructuredConfig{
		App: app,
		Storage: Storage{
			DB: db,
		},
		Server:       server,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
