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

	"github.com/hashicorp/go-multierror"
)

// Mcpath is the interface used for init project path.
type Mcpath interface {
	WorkHome() string
	WorkHomeMode() fs.FileMode
	LogDir() string
	DataDir() string
	ModelDir() string
}

type mcpath struct {
	workHome     string
	workHomeMode fs.FileMode
	logDir       string
	dataDir      string
	modelDir     string
}

// Option is a functional option for configuring the mcpath.
type Option func(d *mcpath)

// WithWorkHome set the workhome directory.
func WithWorkHome(dir string) Option {
	return func(d *mcpath) {
		d.workHome = dir
	}
}

// WithWorkHomeMode sets the workHome directory mode
func WithWorkHomeMode(mode fs.FileMode) Option {
	return func(d *mcpath) {
		d.workHomeMode = mode
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(d *mcpath) {
		d.logDir = dir
	}
}

// WithDataDir set the directory of history data files.
func WithDataDir(dir string) Option {
	return func(d *mcpath) {
		d.dataDir = dir
	}
}

// WithModelDir set the directory of trained artifacts.
func WithModelDir(dir string) Option {
	return func(d *mcpath) {
		d.modelDir = dir
	}
}

// New returns a new mcpath interface, directories not given
// by options are placed under the workhome.
func New(options ...Option) (Mcpath, error) {
	d := &mcpath{
		workHome:     DefaultWorkHome,
		workHomeMode: DefaultWorkHomeMode,
	}

	for _, opt := range options {
		opt(d)
	}

	if d.logDir == "" {
		d.logDir = filepath.Join(d.workHome, "logs")
	}

	if d.dataDir == "" {
		d.dataDir = filepath.Join(d.workHome, "data")
	}

	if d.modelDir == "" {
		d.modelDir = filepath.Join(d.workHome, "models")
	}

	var errs *multierror.Error
	if err := os.MkdirAll(d.workHome, d.workHomeMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	for _, dir := range []string{d.logDir, d.dataDir, d.modelDir} {
		if err := os.MkdirAll(dir, fs.FileMode(0700)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *mcpath) WorkHome() string {
	return d.workHome
}

func (d *mcpath) WorkHomeMode() fs.FileMode {
	return d.workHomeMode
}

func (d *mcpath) LogDir() string {
	return d.logDir
}

func (d *mcpath) DataDir() string {
	return d.dataDir
}

func (d *mcpath) ModelDir() string {
	return d.modelDir
}
