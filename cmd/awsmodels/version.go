package main

import (
	"fmt"
	"io"

	"github.com/sdkmodels/awsmodels/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version and the default User-Agent",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "%s\n%s\n", version.Version, version.UserAgent)
		},
	}
}
