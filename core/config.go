package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string
	WorkDir  string

	RollbarToken string

	API struct {
		BaseURL string
	}

	Web struct {
		Host            string
		Address         string
		ShutdownTimeout time.Duration
	}

	Storage struct {
		Engine string // inmem | sqlite | redis
		Path   string // sqlite file path

		RedisAddr     string
		RedisPassword string
		RedisDB       int
	}
}

// NewConfig loads configuration from defaults, an optional config/.env.<env> file
// and env-prefixed environment variables.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Campus")
	v.SetDefault("build", "dev")
	v.SetDefault("api.baseURL", "http://localhost:4000/api")
	v.SetDefault("web.host", "localhost")
	v.SetDefault("web.address", ":3000")
	v.SetDefault("web.shutdownTimeout", 5*time.Second)
	v.SetDefault("storage.engine", "sqlite")
	v.SetDefault("storage.path", "campus.db")
	v.SetDefault("storage.redisAddr", "localhost:6379")
	v.SetDefault("storage.redisPassword", "")
	v.SetDefault("storage.redisDB", 0)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("storage.engine", "inmem")
	}
	v.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "config.viper.Unmarshal")
	}
	conf.Env = env
	conf.WorkDir = wd

	if conf.API.BaseURL == "" {
		return nil, errors.New("config: api.baseURL is required")
	}
	return conf, nil
}

// Getwd tries to find the project root.
// go-test changes the working directory to the test package being run during tests,
// so walk up until a go.mod is found.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
