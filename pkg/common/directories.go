// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// ConfigDirectory holds llmchess.yaml, the player and match settings.
	ConfigDirectory = filepath.Join(xdg.ConfigHome, "llmchess")

	// DataDirectory holds everything llmchess produces: game records and
	// the state of paused series.
	DataDirectory = filepath.Join(xdg.DataHome, "llmchess")

	// GamesDirectory is the default destination of PGN game records.
	GamesDirectory = filepath.Join(DataDirectory, "games")

	// SeriesDirectory stores the YAML state of every series, keyed by name,
	// so that an interrupted series can be restarted.
	SeriesDirectory = filepath.Join(DataDirectory, "series")

	// ConfigFile is the default configuration file.
	ConfigFile = filepath.Join(ConfigDirectory, "llmchess.yaml")

	// LogFile receives the log while the board window owns the terminal.
	LogFile = filepath.Join(DataDirectory, "llmchess.log")
)

// TryMkdir creates the given directory and its parents if it does not
// exist yet. Errors are ignored; any later file access reports them.
func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}

// TryCreate writes data to file only if file does not exist yet.
func TryCreate(file string, data []byte) {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		TryMkdir(filepath.Dir(file))
		_ = os.WriteFile(file, data, FilePermissions)
	}
}

// Exists reports whether the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
