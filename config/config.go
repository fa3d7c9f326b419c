package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultSystemTitle = "Online Quiz System"

type Config struct {
	Addr           string
	DBUrl          string
	TokenSecret    string
	TokenTTL       time.Duration
	AuthorEmail    string
	AuthorUser     string
	AuthorPassword string
	SystemTitle    string
	Debug          bool
}

// ParseFlags builds the configuration from command-line flags, optionally
// overlaid on a YAML file given with -config. Explicitly passed flags win
// over file values.
func ParseFlags() (cfg Config, err error) {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to optional YAML config file")
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "quizzes.sqlite", "path to SQLite3 DB file (default quizzes.sqlite)")
	flag.StringVar(&cfg.TokenSecret, "token-secret", "", "secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 120, "token TTL in seconds (default 120)")
	flag.StringVar(&cfg.AuthorEmail, "author-email", "teacher@example.com", "email of the sole authorized quiz author")
	flag.StringVar(&cfg.AuthorUser, "author-user", "teacher", "login username for the author account")
	flag.StringVar(&cfg.AuthorPassword, "author-password", "", "if set, (re)provision the author login with this password")
	flag.StringVar(&cfg.SystemTitle, "system-title", DefaultSystemTitle, "display title returned before any has been saved")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	if configPath != "" {
		err = applyFile(configPath, setFlags(), &host, &port, &ttl, &cfg)
		if err != nil {
			return
		}
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
	}

	return
}

type fileConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port uint   `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Token struct {
		Secret     string `yaml:"secret"`
		TTLSeconds uint   `yaml:"ttl_seconds"`
	} `yaml:"token"`
	Author struct {
		Email    string `yaml:"email"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"author"`
	SystemTitle string `yaml:"system_title"`
	Debug       *bool  `yaml:"debug"`
}

func setFlags() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func applyFile(path string, set map[string]bool, host *string, port, ttl *uint, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if !set["host"] && fc.Server.Host != "" {
		*host = fc.Server.Host
	}
	if !set["port"] && fc.Server.Port != 0 {
		*port = fc.Server.Port
	}
	if !set["db-url"] && fc.Database.URL != "" {
		cfg.DBUrl = fc.Database.URL
	}
	if !set["token-secret"] && fc.Token.Secret != "" {
		cfg.TokenSecret = fc.Token.Secret
	}
	if !set["token-ttl"] && fc.Token.TTLSeconds != 0 {
		*ttl = fc.Token.TTLSeconds
	}
	if !set["author-email"] && fc.Author.Email != "" {
		cfg.AuthorEmail = fc.Author.Email
	}
	if !set["author-user"] && fc.Author.Username != "" {
		cfg.AuthorUser = fc.Author.Username
	}
	if !set["author-password"] && fc.Author.Password != "" {
		cfg.AuthorPassword = fc.Author.Password
	}
	if !set["system-title"] && fc.SystemTitle != "" {
		cfg.SystemTitle = fc.SystemTitle
	}
	if !set["debug"] && fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return nil
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
