// Package config provides type-safe environment variable loading with
// caching. Each configuration type is loaded once and cached for subsequent
// calls, and a .env file is loaded automatically before the first parse.
//
// Basic usage:
//
//	import "github.com/pipeware/pipeware/core/config"
//
//	type ResponseConfig struct {
//		Charset string `env:"RESPONSE_CHARSET" envDefault:"utf-8"`
//	}
//
//	var cfg ResponseConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Repeated loads of the same type return the cached value:
//
//	var a, b ResponseConfig
//	config.Load(&a) // parses the environment
//	config.Load(&b) // returns the cached value, a == b
package config
