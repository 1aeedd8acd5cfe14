//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package main

import (
	"errors"

	"github.com/fogfish/uid"
	"github.com/spf13/viper"
)

// Config tunes the engine behind the command line interface. Values
// come from an optional uid.yaml in the working directory, overridden
// by UID_* environment variables and flags.
type Config struct {
	Workers int          `mapstructure:"workers"`
	NanoID  NanoIDConfig `mapstructure:"nanoid"`
	Log     LogConfig    `mapstructure:"log"`
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size"`
	Alphabet string `mapstructure:"alphabet"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("uid")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("workers", 0)
	v.SetDefault("nanoid.size", uid.DefaultNanoSize)
	v.SetDefault("nanoid.alphabet", uid.DefaultAlphabet)
	v.SetDefault("log.level", "info")

	v.BindEnv("workers", "UID_WORKERS")
	v.BindEnv("nanoid.size", "UID_NANOID_SIZE")
	v.BindEnv("nanoid.alphabet", "UID_NANOID_ALPHABET")
	v.BindEnv("log.level", "UID_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newEngine assembles the engine from config, workers > 0 overrides
// the configured pool size.
func newEngine(cfg *Config, workers int) (*uid.Engine, error) {
	opts := []uid.Option{
		uid.WithNanoID(cfg.NanoID.Size, cfg.NanoID.Alphabet),
	}
	if workers == 0 {
		workers = cfg.Workers
	}
	if workers > 0 {
		opts = append(opts, uid.WithWorkers(workers))
	}
	return uid.New(opts...)
}
