// Package cli implements the keysplit command-line surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keysplit/pkg/logging"
	"keysplit/pkg/partition"
	"keysplit/pkg/planner"
)

// NewRootCmd builds the keysplit command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "keysplit",
		Short:        "Split a composite key range into sub-ranges of uniform cardinality",
		SilenceUsage: true,
	}
	root.AddCommand(newSplitCmd())
	return root
}

func newSplitCmd() *cobra.Command {
	var jobPath string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Partition the key range described by a job spec and print the task spans",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewLogger()

			spec, err := LoadJobSpec(jobPath)
			if err != nil {
				return err
			}

			rng, err := spec.BuildRange()
			if err != nil {
				return err
			}

			part, err := partition.NewUniformRangePartitioner(rng)
			if err != nil {
				return err
			}

			ranges, granularityCol, err := part.PartitionWithDetail(spec.Partitions)
			if err != nil {
				return err
			}

			log.Info().
				Int("partitions_requested", spec.Partitions).
				Int("ranges_produced", len(ranges)).
				Int("granularity_column", granularityCol).
				Str("total_cardinality", part.TotalCard().String()).
				Str("range", rng.String()).
				Msg("partitioned key range")

			spans := planner.Assign(ranges, spec.Workers)
			for _, s := range spans {
				worker := s.Worker
				if worker == "" {
					worker = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", s.Seq, s.TaskID, worker, s.Range)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&jobPath, "job", "", "path to the YAML job spec")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
