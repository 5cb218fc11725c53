package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/relayseq/model"
	"github.com/jsphweid/relayseq/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample <out.mid>",
	Short: "Writes a small example MIDI file",
	Long:  `Writes two overlapping notes (60 and 72) at 480 ticks per beat and 120 bpm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintln(cmd.OutOrStdout(), "usage: relayseq sample out.mid")
			return model.ErrUsage
		}
		return writeSample(args[0])
	},
}

func writeSample(path string) error {
	dat, err := sample.Bytes(sample.Scenario())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, dat, 0644); err != nil {
		return errors.Wrap(err, "Write failed for sample file")
	}
	return nil
}
