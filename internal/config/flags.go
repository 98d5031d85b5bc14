package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds a listen address split into host and port.
// It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a                 HTTP server address in format [host]:port
//	-grpc-address      gRPC server address in format [host]:port
//	-d                 database DSN
//	-db-driver         database driver (pgx or sqlite3)
//	-db-max-open-conns maximum open database connections
//	-db-max-idle-conns maximum idle database connections
//	-c/-config         JSON config file path
//	-password-hash-key password hash key
//	-token-sign-key    token signing key
//	-token-issuer      token issuer name
//	-token-duration    token lifetime (e.g. "24h")
//	-request-timeout   request timeout (e.g. "30s")
//	-log-level         log level (e.g. "info")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("video-blog", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var maxOpenConns, maxIdleConns int
	var jsonConfigPath string
	var passwordHashKey, tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "HTTP server address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "gRPC server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.IntVar(&maxOpenConns, "db-max-open-conns", 0, "Maximum open database connections")
	fs.IntVar(&maxIdleConns, "db-max-idle-conns", 0, "Maximum idle database connections")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       databaseDriver,
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
				MaxIdleConns: maxIdleConns,
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

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses s in the form [host]:port. The host may be empty, "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
