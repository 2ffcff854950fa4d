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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-root data directory root
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-scrape-timeout page fetch timeout (e.g., "20s")
//	-scrape-user-agent outbound User-Agent string
//	-run-timeout default shell command timeout
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, nil)
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress NetAddress
	var dataDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var scrapeTimeout time.Duration
	var scrapeUserAgent string
	var runTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dataDir, "root", "", "Data directory root")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&scrapeTimeout, "scrape-timeout", 0, "Page fetch timeout (e.g., 20s)")
	fs.StringVar(&scrapeUserAgent, "scrape-user-agent", "", "Outbound User-Agent")
	fs.DurationVar(&runTimeout, "run-timeout", 0, "Default shell command timeout")

	if fs == flag.CommandLine {
		flag.Parse()
	} else {
		fs.Parse(args)
	}

	return &StructuredConfig{
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		Scraper: Scraper{
			Timeout:   scrapeTimeout,
			UserAgent: scrapeUserAgent,
		},
		Runner: Runner{
			DefaultTimeout: runTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// Returns the empty string when neither Host nor Port are set.
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
