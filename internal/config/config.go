package config

import "os"

// Config holds everything the process reads from the environment.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	JWTSecret     string
	RedisAddr     string
	TextbeltKey   string
}

func Load() Config {
	cfg := Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		Port:          os.Getenv("API_PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		TextbeltKey:   os.Getenv("TEXTBELT_API_KEY"),
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "doctors_portal"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	return cfg
}
