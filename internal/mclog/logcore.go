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

package logger

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	CoreLogFileName  = "core.log"
	TrainLogFileName = "train.log"
	GinLogFileName   = "gin.log"
	GormLogFileName  = "gorm.log"
)

const (
	defaultRotateMaxSize    = 300
	defaultRotateMaxBackups = 50
	defaultRotateMaxAge     = 7
)

const (
	encodeTimeFormat = "2006-01-02 15:04:05.000"
)

// LogRotateConfig controls lumberjack rotation of file loggers.
type LogRotateConfig struct {
	MaxSize    int
	MaxAge     int
	MaxBackups int
}

// CreateLogger creates a json file logger rotated by lumberjack.
func CreateLogger(filePath string, compress, verbose bool, rotate LogRotateConfig) (*zap.Logger, zap.AtomicLevel, error) {
	if filePath == "" {
		return nil, zap.AtomicLevel{}, errors.New("log file path is empty")
	}

	if rotate.MaxSize <= 0 {
		rotate.MaxSize = defaultRotateMaxSize
	}
	if rotate.MaxAge <= 0 {
		rotate.MaxAge = defaultRotateMaxAge
	}
	if rotate.MaxBackups <= 0 {
		rotate.MaxBackups = defaultRotateMaxBackups
	}

	rotateConfig := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    rotate.MaxSize,
		MaxAge:     rotate.MaxAge,
		MaxBackups: rotate.MaxBackups,
		LocalTime:  true,
		Compress:   compress,
	}
	syncer := zapcore.AddSync(rotateConfig)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(encodeTimeFormat)

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		syncer,
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1)), level, nil
}

