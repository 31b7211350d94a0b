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

// Package main is the petstore-wait command.
//
// It runs the same bounded waits the API suites use, one at a time, from the
// command line, which is handy when checking how long a public store takes to
// converge before tuning a policy file:
//
//	petstore-wait pet 42 --expect 200
//	petstore-wait order 7 --expect 200,404 --attempts 10 --delay 1s
//	petstore-wait rename-pet 42 rex
//	petstore-wait fake-store --listen :8080 --lag 3
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Set at build time via -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals
var (
	version  = "dev"
	revision = "none"
)

const application = "petstore-wait"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
