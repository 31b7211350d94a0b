/*
Copyright 2026 the Petstore API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/pkg/waiter"
)

const defaultBaseURL = "https://petstore.swagger.io/v2"

var (
	errInvalidFlag = errors.New("invalid flag")
	errRejected    = errors.New("request rejected")
)

// options are shared by every command that talks to a store.
type options struct {
	baseURL  string
	timeout  time.Duration
	rps      float64
	attempts int
	delay    time.Duration
	debug    bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", "", "store base URL, defaults to API_BASE_URL or "+defaultBaseURL)
	f.DurationVar(&o.timeout, "timeout", 0, "per request timeout, defaults to REQUEST_TIMEOUT")
	f.Float64Var(&o.rps, "rps", 0, "maximum requests per second, 0 means unlimited")
	f.IntVar(&o.attempts, "attempts", 0, "maximum attempts, defaults to the configured policy")
	f.DurationVar(&o.delay, "delay", 0, "delay between attempts, defaults to the configured policy")
	f.BoolVar(&o.debug, "debug", false, "log every attempt in a human readable form")
}

// policy overrides whatever was explicitly set on the command line.
func (o *options) policy(flags *pflag.FlagSet, p waiter.Policy) waiter.Policy {
	if flags.Changed("attempts") {
		p.MaxAttempts = o.attempts
	}

	if flags.Changed("delay") {
		p.Delay = o.delay
	}

	return p
}

// config loads the suite configuration and layers the flags over it.
func (o *options) config() (*petstore.Config, error) {
	config, err := petstore.LoadConfig()
	if err != nil {
		return nil, err
	}

	switch {
	case o.baseURL != "":
		config.BaseURL = o.baseURL
	case config.BaseURL == "":
		config.BaseURL = defaultBaseURL
	}

	if o.timeout > 0 {
		config.RequestTimeout = o.timeout
	}

	if o.rps > 0 {
		config.RequestsPerSecond = o.rps
	}

	config.LogRequests = config.LogRequests || o.debug
	config.LogResponses = config.LogResponses || o.debug

	return config, nil
}

func newLogger(debug bool) (logr.Logger, error) {
	var (
		zl  *zap.Logger
		err error
	)

	if debug {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}

	if err != nil {
		return logr.Discard(), err
	}

	return zapr.NewLogger(zl), nil
}

// setupLogging installs the logger in the command context so the waiters
// and the client pick it up.
func (o *options) setupLogging(cmd *cobra.Command) error {
	logger, err := newLogger(o.debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.SetContext(logr.NewContext(ctx, logger.WithName(application)))

	logger.V(1).Info("command starting", "application", application, "version", version, "revision", revision)

	return nil
}

func newRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           application,
		Short:         "Wait for an eventually consistent pet store to settle",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setupLogging(cmd)
		},
	}

	o.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newPetCommand(o),
		newOrderCommand(o),
		newRenamePetCommand(o),
		newFakeStoreCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", application, version, revision)
		},
	}
}
