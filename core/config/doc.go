// Package config provides type-safe environment variable loading with
// per-type caching. It autoloads a .env file on first use and parses struct
// fields through caarlos0/env tags:
//
//	type DatabaseConfig struct {
//		ConnURL string `env:"DATABASE_CONN_URL,required"`
//		MaxConn int32  `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	var cfg DatabaseConfig
//	config.MustLoad(&cfg)
package config
