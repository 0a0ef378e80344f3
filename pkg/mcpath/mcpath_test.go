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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		options func(dir string) []Option
		expect  func(t *testing.T, dir string, d Mcpath, err error)
	}{
		{
			name: "new mcpath by workHome",
			options: func(dir string) []Option {
				return []Option{WithWorkHome(dir)}
			},
			expect: func(t *testing.T, dir string, d Mcpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(d.WorkHome(), dir)
				assert.Equal(d.WorkHomeMode(), DefaultWorkHomeMode)
				assert.Equal(d.LogDir(), filepath.Join(dir, "logs"))
				assert.Equal(d.DataDir(), filepath.Join(dir, "data"))
				assert.Equal(d.ModelDir(), filepath.Join(dir, "models"))
				assert.DirExists(d.ModelDir())
			},
		},
		{
			name: "new mcpath by every directory",
			options: func(dir string) []Option {
				return []Option{
					WithWorkHome(dir),
					WithWorkHomeMode(os.FileMode(0700)),
					WithLogDir(filepath.Join(dir, "l")),
					WithDataDir(filepath.Join(dir, "d")),
					WithModelDir(filepath.Join(dir, "m")),
				}
			},
			expect: func(t *testing.T, dir string, d Mcpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(d.WorkHomeMode(), os.FileMode(0700))
				assert.Equal(d.LogDir(), filepath.Join(dir, "l"))
				assert.Equal(d.DataDir(), filepath.Join(dir, "d"))
				assert.Equal(d.ModelDir(), filepath.Join(dir, "m"))
			},
		},
		{
			name: "new mcpath failed",
			options: func(dir string) []Option {
				file := filepath.Join(dir, "file")
				if err := os.WriteFile(file, []byte{}, 0600); err != nil {
					t.Fatal(err)
				}

				return []Option{WithWorkHome(dir), WithModelDir(filepath.Join(file, "models"))}
			},
			expect: func(t *testing.T, dir string, d Mcpath, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Nil(d)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			d, err := New(tc.options(dir)...)
			tc.expect(t, dir, d, err)
		})
	}
}
