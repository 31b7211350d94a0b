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
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/pkg/waiter"
)

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q: %w", kind, s, err)
	}

	return id, nil
}

// printResponse writes the settled status and body for scripts to consume.
func printResponse(w io.Writer, r *petstore.Response) {
	fmt.Fprintf(w, "%d %s\n", r.StatusCode, r.Body)
}

// waitCommand builds a "<kind> <id>" command that polls a GET until the
// status is one of --expect.
func waitCommand(o *options, kind string, policy func(petstore.PollPolicies) waiter.Policy, get func(context.Context, *petstore.APIClient, int64) (*petstore.Response, error)) *cobra.Command {
	var expect []int

	cmd := &cobra.Command{
		Use:   kind + " <id>",
		Short: "Wait until GET " + kind + " answers with an expected status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(kind, args[0])
			if err != nil {
				return err
			}

			config, err := o.config()
			if err != nil {
				return err
			}

			client := petstore.NewAPIClientWithConfig(config)

			probe := func(ctx context.Context) (*petstore.Response, error) {
				return get(ctx, client, id)
			}

			r, err := waiter.Wait(cmd.Context(), fmt.Sprintf("%s %d", kind, id), probe, waiter.Status(expect...), o.policy(cmd.Flags(), policy(config.Policies)))
			if err != nil {
				return err
			}

			printResponse(cmd.OutOrStdout(), r)

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&expect, "expect", []int{http.StatusOK}, "status codes that end the wait")

	return cmd
}

func newPetCommand(o *options) *cobra.Command {
	return waitCommand(o, "pet",
		func(p petstore.PollPolicies) waiter.Policy { return p.Pet },
		func(ctx context.Context, c *petstore.APIClient, id int64) (*petstore.Response, error) { return c.GetPet(ctx, id) })
}

func newOrderCommand(o *options) *cobra.Command {
	return waitCommand(o, "order",
		func(p petstore.PollPolicies) waiter.Policy { return p.Order },
		func(ctx context.Context, c *petstore.APIClient, id int64) (*petstore.Response, error) { return c.GetOrder(ctx, id) })
}

func newRenamePetCommand(o *options) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "rename-pet <id> <name>",
		Short: "Update a pet's name with a form post, retrying while the pet is not yet visible",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("pet", args[0])
			if err != nil {
				return err
			}

			config, err := o.config()
			if err != nil {
				return err
			}

			client := petstore.NewAPIClientWithConfig(config)

			update := func(ctx context.Context) (*petstore.Response, error) {
				return client.UpdatePetWithForm(ctx, id, args[1], petstore.PetStatus(status))
			}

			r, err := waiter.RetryUpdate(cmd.Context(), fmt.Sprintf("pet %d", id), update, o.policy(cmd.Flags(), config.Policies.Update))
			if err != nil {
				return err
			}

			printResponse(cmd.OutOrStdout(), r)

			if r.StatusCode != http.StatusOK {
				return fmt.Errorf("%w: pet %d rename answered %d", errRejected, id, r.StatusCode)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new pet status, left unchanged when empty")

	return cmd
}
