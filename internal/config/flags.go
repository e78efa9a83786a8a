package config

import (
	"errors"
	"flag"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port (overrides the port part of -a)
//	-d database DSN
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-default-user-id user id used when a request has no user_id
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-otlp-endpoint OTLP/HTTP collector endpoint
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var defaultUserID int64
	var requestTimeout time.Duration
	var otlpEndpoint string

	fs := flag.NewFlagSet("starwars", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Listen port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Int64Var(&defaultUserID, "default-user-id", 0, "User id used when user_id is absent")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP collector endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if port == 0 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			DefaultUserID: defaultUserID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           port,
			RequestTimeout: requestTimeout,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
