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

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/hashicorp/go-multierror"

	"github.com/medalcast/medalcast/forecaster/predictor"
	"github.com/medalcast/medalcast/forecaster/training"
	"github.com/medalcast/medalcast/forecaster/training/models"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

const (
	// ManifestFilename is the file name of the model set manifest.
	ManifestFilename = "manifest.json"

	// ScalerFilename is the file name of the fitted scaler.
	ScalerFilename = "scaler.json"

	// EncoderFilename is the file name of the fitted season encoder.
	EncoderFilename = "encoder.json"

	// ReportFilename is the file name of the metrics report.
	ReportFilename = "metrics_report.json"

	// PredictionsFilename is the file name of the generated predictions.
	PredictionsFilename = "predictions.json"

	// ModelsDirname is the directory of model artifacts within a mode.
	ModelsDirname = "models"

	// JSONFileExt is extension of file name.
	JSONFileExt = "json"

	// LockFilename is the file locked while artifacts are written, it is
	// shared with every process using the same base directory.
	LockFilename = ".lock"

	// TempFileMark marks file names of unfinished writes.
	TempFileMark = ".tmp"

	// DefaultTempFileTTL is default age after which unfinished writes are removed.
	DefaultTempFileTTL = time.Hour
)

// ErrArtifactMissing is returned when a required artifact does not exist.
var ErrArtifactMissing = errors.New("artifact missing")

// Storage is the interface used for storage.
type Storage interface {
	// SaveModelSet writes the scaler, the encoder and each model of the set
	// as separate artifacts of its mode, overwriting earlier ones.
	SaveModelSet(*training.ModelSet) error

	// LoadModelSet reads the model set of the mode.
	LoadModelSet(string) (*training.ModelSet, error)

	// SaveReport writes the metrics report of its mode.
	SaveReport(*training.Report) error

	// LoadReport reads the metrics report of the mode.
	LoadReport(string) (*training.Report, error)

	// SavePredictions writes generated predictions.
	SavePredictions([]predictor.PredictionRecord) error

	// LoadPredictions reads generated predictions.
	LoadPredictions() ([]predictor.PredictionRecord, error)

	// Clear removes all artifacts.
	Clear() error

	// RunGC removes unfinished writes older than the temp file ttl.
	RunGC(context.Context) error
}

// manifest indexes the artifacts of a model set.
type manifest struct {
	Mode         string    `json:"mode"`
	RunID        string    `json:"run_id"`
	TrainedAt    time.Time `json:"trained_at"`
	FeatureNames []string  `json:"feature_names"`
	TargetNames  []string  `json:"target_names"`
	Models       []string  `json:"models"`
	Best         string    `json:"best_model"`
	Encoder      bool      `json:"encoder"`
}

type storage struct {
	baseDir     string
	tempFileTTL time.Duration
	mu          *sync.RWMutex
	dirLock     *flock.Flock
}

// Option is a functional option for configuring the storage.
type Option func(s *storage)

// WithTempFileTTL set the age after which unfinished writes are removed.
func WithTempFileTTL(ttl time.Duration) Option {
	return func(s *storage) {
		s.tempFileTTL = ttl
	}
}

// New returns a new Storage instance.
func New(baseDir string, options ...Option) Storage {
	s := &storage{
		baseDir:     baseDir,
		tempFileTTL: DefaultTempFileTTL,
		mu:          &sync.RWMutex{},
		dirLock:     flock.New(filepath.Join(baseDir, LockFilename)),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// SaveModelSet writes the model set, the manifest is written last.
func (s *storage) SaveModelSet(set *training.ModelSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockDir()
	if err != nil {
		return err
	}
	defer unlock()

	dir := s.modeDir(set.Mode)
	if err := os.MkdirAll(filepath.Join(dir, ModelsDirname), fs.FileMode(0700)); err != nil {
		return err
	}

	m := manifest{
		Mode:         set.Mode,
		RunID:        set.RunID,
		TrainedAt:    set.TrainedAt,
		FeatureNames: set.FeatureNames,
		TargetNames:  set.TargetNames,
		Best:         set.Best,
		Encoder:      set.Encoder != nil,
	}

	if err := writeJSON(filepath.Join(dir, ScalerFilename), set.Scaler); err != nil {
		return err
	}

	if set.Encoder != nil {
		if err := writeJSON(filepath.Join(dir, EncoderFilename), set.Encoder); err != nil {
			return err
		}
	}

	for _, named := range set.Models {
		data, err := models.Marshal(named.Model)
		if err != nil {
			return fmt.Errorf("marshal model %s: %w", named.Name, err)
		}

		if err := writeFile(s.modelFilename(set.Mode, named.Name), data); err != nil {
			return err
		}

		m.Models = append(m.Models, named.Name)
	}

	return writeJSON(filepath.Join(dir, ManifestFilename), m)
}

// LoadModelSet reads the manifest of the mode and every artifact it lists.
func (s *storage) LoadModelSet(mode string) (*training.ModelSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir := s.modeDir(mode)
	var m manifest
	if err := readJSON(filepath.Join(dir, ManifestFilename), &m); err != nil {
		return nil, err
	}

	if len(m.Models) == 0 {
		return nil, fmt.Errorf("%w: manifest of %s lists no models", ErrArtifactMissing, mode)
	}

	set := &training.ModelSet{
		Mode:         m.Mode,
		RunID:        m.RunID,
		TrainedAt:    m.TrainedAt,
		FeatureNames: m.FeatureNames,
		TargetNames:  m.TargetNames,
		Best:         m.Best,
		Scaler:       &training.StandardScaler{},
	}

	if err := readJSON(filepath.Join(dir, ScalerFilename), set.Scaler); err != nil {
		return nil, err
	}

	if m.Encoder {
		set.Encoder = &training.LabelEncoder{}
		if err := readJSON(filepath.Join(dir, EncoderFilename), set.Encoder); err != nil {
			return nil, err
		}
	}

	for _, name := range m.Models {
		data, err := readFile(s.modelFilename(mode, name))
		if err != nil {
			return nil, err
		}

		r, err := models.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("decode model %s: %w", name, err)
		}

		set.Models = append(set.Models, training.NamedModel{Name: name, Model: r})
	}

	return set, nil
}

// SaveReport writes the metrics report of its mode.
func (s *storage) SaveReport(report *training.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockDir()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.MkdirAll(s.modeDir(report.Mode), fs.FileMode(0700)); err != nil {
		return err
	}

	return writeJSON(s.reportFilename(report.Mode), report)
}

// LoadReport reads the metrics report of the mode.
func (s *storage) LoadReport(mode string) (*training.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var report training.Report
	if err := readJSON(s.reportFilename(mode), &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// SavePredictions writes generated predictions.
func (s *storage) SavePredictions(records []predictor.PredictionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockDir()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.MkdirAll(s.baseDir, fs.FileMode(0700)); err != nil {
		return err
	}

	return writeJSON(s.predictionsFilename(), records)
}

// LoadPredictions reads generated predictions.
func (s *storage) LoadPredictions() ([]predictor.PredictionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []predictor.PredictionRecord
	if err := readJSON(s.predictionsFilename(), &records); err != nil {
		return nil, err
	}

	return records, nil
}

// Clear removes all artifacts.
func (s *storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockDir()
	if err != nil {
		return err
	}
	defer unlock()

	var errs error
	for _, mode := range []string{training.ModeFull, training.ModeSimple} {
		if err := os.RemoveAll(s.modeDir(mode)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := os.Remove(s.predictionsFilename()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = multierror.Append(errs, err)
	}

	return errs
}

// RunGC walks the base directory and removes unfinished writes older than
// the temp file ttl, writes in progress are younger than it. The run is
// skipped while another process holds the directory lock.
func (s *storage) RunGC(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another process is writing, its temp files are not stale.
	locked, err := s.tryLockDir()
	if err != nil {
		return err
	}

	if !locked {
		logger.Infof("skip gc, %s is held by another process", s.dirLock.Path())
		return nil
	}
	defer s.unlockDir()

	expired := time.Now().Add(-s.tempFileTTL)
	var errs error
	if err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !strings.Contains(d.Name(), TempFileMark) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			errs = multierror.Append(errs, err)
			return nil
		}

		if info.ModTime().After(expired) {
			return nil
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = multierror.Append(errs, err)
			return nil
		}

		logger.Infof("removed unfinished write %s", path)
		return nil
	}); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs
}

// lockDir waits for the base directory lock, the caller holds mu.
func (s *storage) lockDir() (func(), error) {
	if err := os.MkdirAll(s.baseDir, fs.FileMode(0700)); err != nil {
		return nil, err
	}

	if err := s.dirLock.Lock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", s.dirLock.Path(), err)
	}

	return s.unlockDir, nil
}

// tryLockDir takes the base directory lock if no other process holds it.
func (s *storage) tryLockDir() (bool, error) {
	if err := os.MkdirAll(s.baseDir, fs.FileMode(0700)); err != nil {
		return false, err
	}

	locked, err := s.dirLock.TryLock()
	if err != nil {
		return false, fmt.Errorf("lock %s: %w", s.dirLock.Path(), err)
	}

	return locked, nil
}

func (s *storage) unlockDir() {
	if err := s.dirLock.Unlock(); err != nil {
		logger.Errorf("unlock %s: %s", s.dirLock.Path(), err.Error())
	}
}

// modeDir returns the artifact directory of a mode.
func (s *storage) modeDir(mode string) string {
	return filepath.Join(s.baseDir, mode)
}

// modelFilename generates model file name based on the given mode and name.
func (s *storage) modelFilename(mode, name string) string {
	return filepath.Join(s.modeDir(mode), ModelsDirname, fmt.Sprintf("%s.%s", name, JSONFileExt))
}

// reportFilename generates report file name based on the given mode.
func (s *storage) reportFilename(mode string) string {
	return filepath.Join(s.modeDir(mode), ReportFilename)
}

// predictionsFilename generates predictions file name.
func (s *storage) predictionsFilename() string {
	return filepath.Join(s.baseDir, PredictionsFilename)
}

func writeJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return writeFile(filename, data)
}

// writeFile replaces filename with data through a rename, readers never see
// a partially written file.
func writeFile(filename string, data []byte) error {
	file, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+TempFileMark+"*")
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(file.Name())
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return err
	}

	return os.Rename(file.Name(), filename)
}

func readJSON(filename string, v any) error {
	data, err := readFile(filename)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(filename), err)
	}

	return nil
}

func readFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, filename)
		}

		return nil, err
	}

	return data, nil
}
