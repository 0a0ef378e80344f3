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

package gc

import (
	logger "github.com/medalcast/medalcast/internal/mclog"
)

//go:generate mockgen -destination mocks/logger_mock.go -source logger.go -package mocks

// Logger is the interface used in GC for logging.
type Logger interface {
	// Infof logs routine messages for GC.
	Infof(template string, args ...any)

	// Errorf logs error messages for GC.
	Errorf(template string, args ...any)
}

// gcLogger writes to the core logger.
type gcLogger struct{}

func (gl *gcLogger) Infof(template string, args ...any) {
	logger.CoreLogger.Infof(template, args...)
}

func (gl *gcLogger) Errorf(template string, args ...any) {
	logger.CoreLogger.Errorf(template, args...)
}
