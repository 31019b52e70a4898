package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env      string
	Addr     string
	DataDir  string
	Store    string // "file" or "sqlite"
	DBPath   string
	LogJSON  bool
	ShopName string
}

func Default() Config {
	return Config{
		Env:      "dev",
		Addr:     "127.0.0.1:8686",
		DataDir:  "./data",
		Store:    "file",
		DBPath:   "./data/monkey.db",
		LogJSON:  false,
		ShopName: "monkey_shoe",
	}
}

func EnvDefaults() Config {
	return fromEnv(Default())
}

func fromEnv(c Config) Config {
	if v := os.Getenv("MONKEY_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("MONKEY_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("MONKEY_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("MONKEY_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("MONKEY_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("MONKEY_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogJSON = b
		}
	}
	if v := os.Getenv("MONKEY_SHOP_NAME"); v != "" {
		c.ShopName = v
	}
	return c
}
