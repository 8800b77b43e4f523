package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the configuration flags from args on a dedicated
// FlagSet. Positional arguments after the flags are kept on the result.
//
// Flags:
//
//	-a remote address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key push integrity hash key
//	-credentials-key key sealing the stored password
//	-partition default partition (e.g. "ios", "android/fr")
//	-log log file path
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var remoteAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var credentialsKey string
	var defaultPartition string
	var logFile string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("strings-client", flag.ContinueOnError)
	fs.Var(&remoteAddress, "a", "Remote address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Push integrity hash key")
	fs.StringVar(&credentialsKey, "credentials-key", "", "Stored password sealing key")
	fs.StringVar(&defaultPartition, "partition", "", "Default partition (ios, android/fr, ...)")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:          hashKey,
			CredentialsKey:   credentialsKey,
			DefaultPartition: defaultPartition,
			LogFile:          logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		args:         fs.Args(),
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
