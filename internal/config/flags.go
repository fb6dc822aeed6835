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
//	-prefix common route prefix (e.g. "/market")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-upstream upstream marketplace base URL
//	-token upstream Authorization header value
//	-referer upstream Referer header value
//	-user-agent upstream User-Agent header value
//	-request-timeout upstream request timeout (e.g. "10s")
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var routePrefix string
	var shutdownTimeout time.Duration
	var upstreamURL string
	var authToken string
	var referer string
	var userAgent string
	var requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&routePrefix, "prefix", "", "Common route prefix")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	flag.StringVar(&upstreamURL, "upstream", "", "Upstream marketplace base URL")
	flag.StringVar(&authToken, "token", "", "Upstream Authorization header value")
	flag.StringVar(&referer, "referer", "", "Upstream Referer header value")
	flag.StringVar(&userAgent, "user-agent", "", "Upstream User-Agent header value")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Upstream request timeout (e.g., 10s)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RoutePrefix:     routePrefix,
			ShutdownTimeout: shutdownTimeout,
		},
		Upstream: Upstream{
			BaseURL:        upstreamURL,
			AuthToken:      authToken,
			Referer:        referer,
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
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
