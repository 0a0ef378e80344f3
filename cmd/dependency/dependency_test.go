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

package dependency

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medalcast/medalcast/forecaster/config"
)

func TestInitDecoderConfig(t *testing.T) {
	cfg := config.New()
	dc := &mapstructure.DecoderConfig{Result: cfg}
	initDecoderConfig(dc)

	decoder, err := mapstructure.NewDecoder(dc)
	require.NoError(t, err)
	require.NoError(t, decoder.Decode(map[string]any{
		"verbose":    true,
		"pprof-port": 6060,
		"server": map[string]any{
			"listenIP":        "127.0.0.1",
			"shutdownTimeout": "3s",
		},
		"training": map[string]any{
			"testPercent": 0.25,
		},
	}))

	assert := assert.New(t)
	assert.True(cfg.Verbose)
	assert.Equal(6060, cfg.PProfPort)
	assert.True(cfg.Server.ListenIP.Equal(net.ParseIP("127.0.0.1")))
	assert.Equal(3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(0.25, cfg.Training.TestPercent)
	assert.Equal(config.DefaultServerPort, cfg.Server.Port)
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	VersionCmd.SetOut(&out)
	VersionCmd.Run(VersionCmd, nil)
	assert.Contains(t, out.String(), "GitVersion:")
}
