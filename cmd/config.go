package main

import "time"

// Config defines the workflow CLI environment variables.
type Config struct {
	APIURL         string        `env:"API_URL,required=true"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT,default=30s"`
	DownloadDir    string        `env:"DOWNLOAD_DIR,default=."`
}
