package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sdkmodels/awsmodels/internal/registry"
	"github.com/spf13/cobra"
)

func newOperationsCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "operations [service]",
		Short: "Lists the available operations and their fields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var service string
			if len(args) > 0 {
				service = strings.ToLower(args[0])
			}
			return listOperations(stdout, service)
		},
	}
}

// listOperations writes the operations of service, or of every service
// when service is empty, along with their settable fields.
func listOperations(w io.Writer, service string) error {
	name := color.New(color.FgGreen, color.Bold)
	field := color.New(color.FgCyan)
	var count int
	for _, opname := range registry.OperationNames() {
		factory, err := registry.NewFactory(opname)
		if err != nil {
			return err
		}
		if service != "" && factory.Service() != service {
			continue
		}
		fields, err := factory.Fields()
		if err != nil {
			return err
		}
		names, err := factory.FieldNames()
		if err != nil {
			return err
		}
		name.Fprintln(w, factory.Name())
		for _, fname := range names {
			fmt.Fprintf(w, "  %s %s\n", field.Sprint(fname), fields[fname].Type)
		}
		count++
	}
	if count <= 0 {
		return fmt.Errorf("%w: no operations for service %q", registry.ErrNoSuchOperation, service)
	}
	return nil
}
