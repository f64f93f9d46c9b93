package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server's command-line flags.
//
// Flags:
//
//	-a column protocol listen address in format [host]:port
//	-http-address HTTP status API address in format [host]:port
//	-grpc-address gRPC health service address in format [host]:port
//	-f data file path
//	-d database DSN
//	-c/-config json file path with configs
//	-reply-capacity reply size in bytes shared with clients
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-version version string reported by the status API
func parseFlags(args []string) (*StructuredConfig, error) {
	var tcpAddress, httpAddress, grpcAddress NetAddress
	var dataFile string
	var databaseDSN string
	var jsonConfigPath string
	var replyCapacity int
	var shutdownTimeout time.Duration
	var version string

	fs := flag.NewFlagSet("column-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&tcpAddress, "a", "Column protocol address host:port")
	fs.Var(&httpAddress, "http-address", "HTTP status API address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health service address host:port")
	fs.StringVar(&dataFile, "f", "", "Data file path")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&replyCapacity, "reply-capacity", 0, "Reply size in bytes, including the NUL terminator")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&version, "version", "", "Version reported by the status API")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Protocol: Protocol{
			ReplyCapacity: replyCapacity,
		},
		Server: Server{
			TCPAddress:      tcpAddress.String(),
			HTTPAddress:     httpAddress.String(),
			GRPCAddress:     grpcAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				DataFile: dataFile,
			},
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

// Set parses the input string of form [host]:port and populates the
// NetAddress. The host may be empty (all interfaces), "localhost" or an IP
// address.
func (a *NetAddress) Set(s string) error {
	host, portText, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portText)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
