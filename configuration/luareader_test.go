// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/configuration"
	"github.com/bitmark-inc/ipledgerd/fault"
)

type listen struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type sample struct {
	DataDirectory          string            `gluamapper:"data_directory"`
	ApproveFromRegistering bool              `gluamapper:"approve_from_registering"`
	Public                 listen            `gluamapper:"public"`
	Levels                 map[string]string `gluamapper:"levels"`
}

const sampleText = `
local home = arg["home"] or "/var/lib/ipledgerd"
return {
    data_directory = home,
    approve_from_registering = true,
    public = {
        maximum_connections = 50,
        listen = { "127.0.0.1:2130", "[::1]:2130" },
    },
    levels = {
        DEFAULT = "info",
        reservoir = "debug",
    },
}
`

func write(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "ipledgerd.conf")
	if err := ioutil.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	name, cleanup := write(t, sampleText)
	defer cleanup()

	var s sample
	err := configuration.ParseConfigurationFile(name, &s, map[string]string{"home": "/tmp/node"})
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "/tmp/node", s.DataDirectory, "wrong data directory")
	assert.True(t, s.ApproveFromRegistering, "wrong approve flag")
	assert.Equal(t, uint64(50), s.Public.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.Public.Listen, "wrong listen")
	assert.Equal(t, "debug", s.Levels["reservoir"], "wrong level")
}

func TestParseConfigurationFileDefaultsFromLua(t *testing.T) {
	name, cleanup := write(t, sampleText)
	defer cleanup()

	var s sample
	err := configuration.ParseConfigurationFile(name, &s, nil)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "/var/lib/ipledgerd", s.DataDirectory, "wrong data directory")
}

func TestParseConfigurationFileNotATable(t *testing.T) {
	name, cleanup := write(t, `return 42`)
	defer cleanup()

	var s sample
	err := configuration.ParseConfigurationFile(name, &s, nil)
	assert.Equal(t, fault.ConfigurationIsNotATable, err, "wrong error")
}

func TestParseConfigurationFileSyntaxError(t *testing.T) {
	name, cleanup := write(t, `return {`)
	defer cleanup()

	var s sample
	err := configuration.ParseConfigurationFile(name, &s, nil)
	assert.NotNil(t, err, "wrong parse")
}
