package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bft-labs/philo/pkg/topology"
)

func newTopologyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "topology <philosophers>",
		Short: "Print which forks each philosopher uses",
		Example: `  philo topology 5
  philo topology 5 --format dot | dot -Tpng > table.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("error parsing nums of philosophers %q", args[0])
			}

			var out string
			switch format {
			case "text":
				out, err = topology.Text(n)
			case "dot":
				out, err = topology.DOT(n)
			default:
				return fmt.Errorf("unknown format %q (want text or dot)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or dot")
	return cmd
}
