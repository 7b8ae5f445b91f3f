// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - make a path absolute relative to directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Clean(filepath.Join(directory, filePath))
}

// EnsureDirectory - make a path absolute and create the directory if missing
func EnsureDirectory(directory string, dirPath string) (string, error) {
	d := EnsureAbsolute(directory, dirPath)
	if err := os.MkdirAll(d, 0700); nil != err {
		return "", err
	}
	return d, nil
}

// IsPlainName - true if name has no directory component
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != name
	default:
		return false
	}
}
