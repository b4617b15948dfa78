package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
)

// Environment variables take precedence over built-in defaults,
// command line flags take precedence over both.
const envPrefix = "SPEECH_SURVEY_"

type Config struct {
	Addr         string
	DBUrl        string
	SoundDir     string
	StaticDir    string
	AccountsFile string
	Debug        bool
}

func ParseFlags() (Config, error) {
	return Parse(flag.CommandLine, os.Args[1:], os.Getenv)
}

func Parse(fs *flag.FlagSet, args []string, getenv func(string) string) (cfg Config, err error) {
	env := func(name, def string) string {
		if v := getenv(envPrefix + name); v != "" {
			return v
		}
		return def
	}

	defaultPort, err := strconv.ParseUint(env("PORT", "8080"), 10, 16)
	if err != nil {
		err = fmt.Errorf("invalid %sPORT: %w", envPrefix, err)
		return
	}
	defaultDebug, _ := strconv.ParseBool(env("DEBUG", "false"))

	var host string
	fs.StringVar(&host, "host", env("HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", uint(defaultPort), "listen port number")
	fs.StringVar(&cfg.DBUrl, "db-url", env("DB_URL", "survey.db"), "path to SQLite3 DB file")
	fs.StringVar(&cfg.SoundDir, "sound-dir", env("SOUND_DIR", "/var/data/sound"), "root directory for uploaded recordings")
	fs.StringVar(&cfg.StaticDir, "static-dir", env("STATIC_DIR", "."), "directory holding index.html and assets/")
	fs.StringVar(&cfg.AccountsFile, "accounts-file", env("ACCOUNTS_FILE", "accounts.json"), "JSON file mapping account names to secrets")
	fs.BoolVar(&cfg.Debug, "debug", defaultDebug, "log at DEBUG level")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if port > 65535 {
		err = fmt.Errorf("invalid port %d", port)
		return
	}
	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0\.0\.0\.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
