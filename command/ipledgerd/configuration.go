// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/ipledgerd/configuration"
	"github.com/bitmark-inc/ipledgerd/rpc"
	"github.com/bitmark-inc/ipledgerd/rpc/listeners"
	"github.com/bitmark-inc/ipledgerd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "ipledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ipledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ApproveFromRegistering bool `gluamapper:"approve_from_registering" json:"approve_from_registering"`

	RPC     rpc.Configuration    `gluamapper:"rpc" json:"rpc"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		RPC: rpc.Configuration{
			Public: listeners.RPCConfiguration{
				MaximumConnections: defaultRPCClients,
				Certificate:        defaultCertificateFile,
				PrivateKey:         defaultKeyFile,
			},
			Private: listeners.RPCConfiguration{
				MaximumConnections: defaultRPCClients,
				Certificate:        defaultCertificateFile,
				PrivateKey:         defaultKeyFile,
			},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.RPC.Public.Certificate,
		&options.RPC.Public.PrivateKey,
		&options.RPC.Private.Certificate,
		&options.RPC.Private.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.RPC.Public.ClientCA,
		&options.RPC.Private.ClientCA,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// the database and log file must be plain names
	if !util.IsPlainName(options.Database.Name) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Database.Name)
	}
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		dir, err := util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
		*d = dir
	}
	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)

	// done
	return options, nil
}
