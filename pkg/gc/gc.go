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
	"context"
	"errors"
	"sync"
	"time"
)

// GC is the interface used for release resource.
type GC interface {
	// Add adds GC task.
	Add(string, Task)

	// Run runs the GC task and waits for it.
	Run(string) error

	// RunAll runs all registered GC tasks.
	RunAll()

	// Serve runs the GC tasks at each interval.
	Serve()

	// Stop stops running the GC tasks, it returns after the running tasks.
	Stop()
}

type gc struct {
	tasks    *sync.Map
	interval time.Duration
	timeout  time.Duration
	logger   Logger
	done     chan struct{}
	once     *sync.Once
	serving  *sync.WaitGroup
}

// Option is a functional option for configuring the GC.
type Option func(g *gc)

// WithInterval set the interval for GC collection.
func WithInterval(interval time.Duration) Option {
	return func(g *gc) {
		g.interval = interval
	}
}

// WithTimeout set the timeout for GC collection.
func WithTimeout(timeout time.Duration) Option {
	return func(g *gc) {
		g.timeout = timeout
	}
}

// WithLogger set the logger for GC.
func WithLogger(logger Logger) Option {
	return func(g *gc) {
		g.logger = logger
	}
}

// New returns a new GC instance.
func New(options ...Option) (GC, error) {
	g := &gc{
		tasks:   &sync.Map{},
		done:    make(chan struct{}),
		once:    &sync.Once{},
		serving: &sync.WaitGroup{},
		logger:  &gcLogger{},
	}

	for _, opt := range options {
		opt(g)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *gc) Add(k string, t Task) {
	g.tasks.Store(k, t)
}

func (g *gc) Run(k string) error {
	v, ok := g.tasks.Load(k)
	if !ok {
		return errors.New("can not find the task")
	}

	return g.run(context.Background(), k, v.(Task))
}

func (g *gc) RunAll() {
	g.runAll(context.Background())
}

func (g *gc) Serve() {
	g.serving.Add(1)
	go func() {
		defer g.serving.Done()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		tick := time.NewTicker(g.interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				g.runAll(ctx)
			case <-g.done:
				g.logger.Infof("GC stop")
				return
			}
		}
	}()
}

func (g *gc) Stop() {
	g.once.Do(func() {
		close(g.done)
	})
	g.serving.Wait()
}

func (g *gc) validate() error {
	if g.interval <= 0 {
		return errors.New("interval value is greater than 0")
	}

	if g.timeout <= 0 {
		return errors.New("timeout value is greater than 0")
	}

	if g.timeout >= g.interval {
		return errors.New("timeout value needs to be less than the interval value")
	}

	return nil
}

func (g *gc) runAll(ctx context.Context) {
	wg := &sync.WaitGroup{}
	g.tasks.Range(func(k, v any) bool {
		wg.Add(1)
		go func(k string, t Task) {
			defer wg.Done()
			g.run(ctx, k, t) // nolint: errcheck
		}(k.(string), v.(Task))
		return true
	})
	wg.Wait()
}

func (g *gc) run(ctx context.Context, k string, t Task) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Infof("%s GC start", k)
	if err := t.RunGC(ctx); err != nil {
		g.logger.Errorf("%s GC error: %s", k, err.Error())
		return err
	}

	g.logger.Infof("%s GC done", k)
	return nil
}
