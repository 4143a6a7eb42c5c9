package main

import (
	"context"
	"net/http/httputil"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRenderCommand(options *Options, setup func() (*env, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render OPERATION",
		Short: "Prints the HTTP request for an operation without sending it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			return e.render(cmd.Context(), args[0], options.Fields)
		},
	}
	cmd.Flags().StringArrayVarP(&options.Fields, "field", "f", nil, "set a request field using KEY=VALUE")
	return cmd
}

// render builds the HTTP request of the named operation and dumps it.
func (e *env) render(ctx context.Context, name string, pairs []string) error {
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
	request, err := factory.NewClient(cc).BuildHTTPRequest(ctx, req)
	if err != nil {
		return err
	}
	data, err := httputil.DumpRequest(request, true)
	if err != nil {
		return err
	}
	color.New(color.FgYellow).Fprintf(e.stdout, "%s\n", data)
	return nil
}
