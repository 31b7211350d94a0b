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
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/KovalIllia/petstore-api-tests/test/fakestore"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// serveFakeStore serves the store on l until ctx is cancelled.
func serveFakeStore(ctx context.Context, l net.Listener, store *fakestore.Store) error {
	log := logr.FromContextOrDiscard(ctx)

	server := &http.Server{
		Handler:           store,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errChan := make(chan error, 1)

	go func() {
		errChan <- server.Serve(l)
	}()

	log.Info("fake store listening", "address", "http://"+l.Addr().String()+fakestore.BasePath)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutdown complete")

	return nil
}

func newFakeStoreCommand() *cobra.Command {
	var (
		listen string
		lag    int
	)

	cmd := &cobra.Command{
		Use:   "fake-store",
		Short: "Serve an in-memory pet store whose writes take a while to become visible",
		Long: `Serve an in-memory pet store under /v2.

Every write stays invisible for --lag reads of the resource it touched, so
clients see the same 404-then-200 behaviour as the public demo store, but
deterministically. Point API_BASE_URL at it to run the suites locally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lag < 0 {
				return fmt.Errorf("%w: lag must not be negative, got %d", errInvalidFlag, lag)
			}

			l, err := (&net.ListenConfig{}).Listen(cmd.Context(), "tcp", listen)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", listen, err)
			}

			return serveFakeStore(cmd.Context(), l, fakestore.New(fakestore.Options{Lag: lag}))
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "localhost:8080", "address to listen on")
	cmd.Flags().IntVar(&lag, "lag", 2, "reads a write stays invisible for")

	return cmd
}
