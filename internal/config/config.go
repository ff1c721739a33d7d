package config // package config loads application configuration from environment variables

import (
	"errors"  // errors tells a missing .env apart from a malformed one
	"io/fs"   // fs.ErrNotExist marks the missing-file case
	"log"     // log reports configuration errors and halts execution
	"net"     // net joins host and port into a listen address
	"os"      // os provides access to environment variables
	"strconv" // strconv validates the port number
	"time"

	"github.com/joho/godotenv" // godotenv reads an optional .env file into the environment
)

// Defaults applied when a variable is unset or invalid.  With nothing set
// the server binds 8081 and waits 50ms before every response.
const (
	DefaultEnv           = "dev"
	DefaultPort          = "8081"
	DefaultResponseDelay = 50 * time.Millisecond
	DefaultLogLevel      = "info"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; every one of them is optional.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Host          string        // host to bind; empty binds every interface
	Port          string        // HTTP port to listen on
	ResponseDelay time.Duration // artificial latency added to every response
	LogLevel      string        // gommon log level name
}

// Load reads an optional .env file from the working directory and then
// builds a Config from the environment.  Variables already present in the
// environment win over values from the file.  A .env file that exists but
// cannot be parsed is fatal.
func Load() Config {
	if err := loadDotenv(); err != nil {
		log.Fatalf("invalid .env file: %v", err)
	}
	return FromEnv()
}

// loadDotenv loads the named env files (.env when none are given) and
// treats a missing file as nothing to load.
func loadDotenv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// LoadFile is like Load but reads the named env files instead of .env.
// Unlike Load it reports a file that cannot be read.
func LoadFile(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Env:           envStr("APP_ENV", DefaultEnv),
		Host:          os.Getenv("APP_HOST"),
		Port:          envPort("APP_PORT", DefaultPort),
		ResponseDelay: envDur("RESPONSE_DELAY", DefaultResponseDelay),
		LogLevel:      envStr("LOG_LEVEL", DefaultLogLevel),
	}
}

// Addr returns the host:port pair the listener binds.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envPort accepts 0 (let the kernel pick) through 65535.
func envPort(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 65535 {
		return d
	}
	return strconv.Itoa(n)
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil && dur >= 0 {
		return dur
	}
	return d
}
