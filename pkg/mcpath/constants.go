/*
 *     Copyright 2024 The Medalcast Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mcpath

import (
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// DefaultWorkHome is the default work home of medalcast.
	DefaultWorkHome = defaultWorkHome()

	// DefaultWorkHomeMode is the default mode of the work home.
	DefaultWorkHomeMode = fs.FileMode(0755)
)

func defaultWorkHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "medalcast")
	}

	return filepath.Join(home, ".medalcast")
}
