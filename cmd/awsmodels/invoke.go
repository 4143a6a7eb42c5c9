package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInvokeCommand(options *Options, setup func() (*env, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke OPERATION",
		Short: "Sends an operation and prints its result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			return e.invoke(cmd.Context(), args[0], options.Fields)
		},
	}
	cmd.Flags().StringArrayVarP(&options.Fields, "field", "f", nil, "set a request field using KEY=VALUE")
	return cmd
}

// invoke sends the named operation and writes the result to stdout.
func (e *env) invoke(ctx context.Context, name string, pairs []string) error {
	factory, req, err := newRequest(name, pairs)
	if err != nil {
		return err
	}
	cc, err := e.clientConfig(factory.Service())
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	e.logger.Infof("invoking %s", factory.Name())
	res, err := factory.Invoke(ctx, factory.NewClient(cc), req)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s\n", data)
	return nil
}
