// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

// basic defaults, these reproduce the classic demonstration:
// 15 keys in 100..200 then 100 insertions in 1..100
const (
	defaultSampleSize = 15
	defaultSampleLow  = 100
	defaultSampleHigh = 200

	defaultInsertCount = 100
	defaultInsertLow   = 1
	defaultInsertHigh  = 100

	defaultLogDirectory = "log"
	defaultLogFile      = "bstdemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// output formats
const (
	outputText = "text"
	outputJSON = "json"
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as parsing merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
}

// Configuration - all the settings for a demonstration run
type Configuration struct {
	SampleSize int `gluamapper:"sample_size" json:"sample_size"`
	SampleLow  int `gluamapper:"sample_low" json:"sample_low"`
	SampleHigh int `gluamapper:"sample_high" json:"sample_high"`

	InsertCount int `gluamapper:"insert_count" json:"insert_count"`
	InsertLow   int `gluamapper:"insert_low" json:"insert_low"`
	InsertHigh  int `gluamapper:"insert_high" json:"insert_high"`

	RequireUnbalanced bool   `gluamapper:"require_unbalanced" json:"require_unbalanced"`
	ShowTree          bool   `gluamapper:"show_tree" json:"show_tree"`
	Output            string `gluamapper:"output" json:"output"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		SampleSize: defaultSampleSize,
		SampleLow:  defaultSampleLow,
		SampleHigh: defaultSampleHigh,

		InsertCount: defaultInsertCount,
		InsertLow:   defaultInsertLow,
		InsertHigh:  defaultInsertHigh,

		RequireUnbalanced: false,
		ShowTree:          false,
		Output:            outputText,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// will read decode and verify the configuration
// a blank file name selects the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	dataDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrInvalidLogFile
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// check all values are usable
func (c *Configuration) validate() error {
	if c.SampleSize < 0 || c.InsertCount < 0 {
		return fault.ErrInvalidCount
	}
	if c.SampleLow > c.SampleHigh || c.InsertLow > c.InsertHigh {
		return fault.ErrInvalidRange
	}

	c.Output = strings.ToLower(c.Output)
	switch c.Output {
	case outputText, outputJSON:
	default:
		return fault.ErrInvalidOutputFormat
	}
	return nil
}

// if not absolute, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
