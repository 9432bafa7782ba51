// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultYear     = 2022
	defaultLang     = "gd"
	defaultLogLevel = "warn"
	envPrefix       = "LAITHEAN"
)

type config struct {
	Year      uint32 `tag:"year"`
	Lang      string `tag:"lang"`
	Month     string `tag:"month"`
	AltSunday bool   `tag:"altSunday"`
	LogLevel  string `tag:"logLevel"`
}

// loadConfig fills c from v. Flags win over the environment
// (LAITHEAN_YEAR, LAITHEAN_LANG, ...), which wins over the config file.
func loadConfig(v *viper.Viper, c *config) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("year", defaultYear)
	v.SetDefault("lang", defaultLang)
	v.SetDefault("logLevel", defaultLogLevel)

	if fpath := v.GetString("config"); fpath != "" {
		v.SetConfigFile(fpath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("load config file %q: %w", fpath, err)
		}
	}

	c.Year = v.GetUint32("year")
	c.Lang = v.GetString("lang")
	c.Month = v.GetString("month")
	c.AltSunday = v.GetBool("altSunday")
	c.LogLevel = v.GetString("logLevel")
	return nil
}
