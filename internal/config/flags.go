package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a *StructuredConfig.
// See [parseFlags] for the list of flags.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

// parseFlags parses args with a dedicated flag set.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-secret server secret
//	-password-algorithm hmac-sha256 or argon2id
//	-session-lifetime session lifetime (e.g., "168h")
//	-session-sliding enable sliding expiration
//	-sign-up enable the sign-up route
//	-insecure-cookie drop the Secure cookie attribute
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var secret string
	var passwordAlgorithm string
	var sessionLifetime time.Duration
	var sessionSliding bool
	var signUpEnabled bool
	var insecureCookie bool
	var requestTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secret, "secret", "", "Server secret")
	fs.StringVar(&passwordAlgorithm, "password-algorithm", "", "Password hash algorithm")
	fs.DurationVar(&sessionLifetime, "session-lifetime", 0, "Session lifetime (e.g., 168h)")
	fs.BoolVar(&sessionSliding, "session-sliding", false, "Enable sliding session expiration")
	fs.BoolVar(&signUpEnabled, "sign-up", false, "Enable the sign-up route")
	fs.BoolVar(&insecureCookie, "insecure-cookie", false, "Drop the Secure cookie attribute")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Secret:            secret,
			PasswordAlgorithm: passwordAlgorithm,
			SessionLifetime:   sessionLifetime,
			SessionSliding:    sessionSliding,
			SignUpEnabled:     signUpEnabled,
			LogLevel:          logLevel,
		},
		Cookie: Cookie{
			Insecure: insecureCookie,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
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
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty, "localhost" or an IP literal
// (IPv6 in brackets). The port must be within 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number is an integer between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
