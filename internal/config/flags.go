package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-api-version advertised API version string
//	-token-ttl bearer token lifetime (e.g., "720h"; 0 = never expires)
//	-bcrypt-cost bcrypt work factor for password hashing
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-base-url API base URL used by the CLI client
//	-session-db SQLite file for the CLI session cache
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var apiVersion string
	var tokenTTL time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var clientBaseURL string
	var clientTimeout time.Duration
	var sessionDBPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiVersion, "api-version", "", "Advertised API version")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Bearer token lifetime (e.g., 720h; 0 = never expires)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor (0 = library default)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&clientBaseURL, "base-url", "", "API base URL for the CLI client")
	flag.DurationVar(&clientTimeout, "client-timeout", 0, "CLI client request timeout")
	flag.StringVar(&sessionDBPath, "session-db", "", "SQLite file for the CLI session cache")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			APIVersion: apiVersion,
			TokenTTL:   tokenTTL,
			BcryptCost: bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			BaseURL:        clientBaseURL,
			RequestTimeout: clientTimeout,
			SessionDBPath:  sessionDBPath,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
