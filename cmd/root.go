package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/relayseq/convert"
	"github.com/jsphweid/relayseq/model"
	"github.com/jsphweid/relayseq/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const usage = "usage: relayseq input.mid > relay_song.h"

var (
	arrayName string
	format    string
	verbose   bool
)

func init() {
	rootCmd.Flags().StringVarP(&arrayName, "name", "n", "", "name of the generated array (default SONG_RELAY_MIDI)")
	rootCmd.Flags().StringVarP(&format, "format", "f", render.FormatC, "output format: c or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   "relayseq <input.mid>",
	Short: "Converts a MIDI file into a relay table",
	Long: `Converts a MIDI file into a table of (relay mask, duration in ms) steps
for the 8 relay player. The table is written to stdout as a C array.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			fmt.Fprintln(cmd.OutOrStdout(), usage)
			return model.ErrUsage
		}
		return convertFile(cmd.OutOrStdout(), args[0])
	},
}

func setupLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// convertFile only writes once the whole table rendered.
func convertFile(w io.Writer, path string) error {
	res, err := convert.ConvertFile(path)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	opts := render.Options{ArrayName: arrayName, Source: path}
	if err := render.Write(buf, format, res, opts); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func Execute() {
	err := rootCmd.Execute()
	if err == model.ErrUsage {
		// usage line is already out
		os.Exit(1)
	}
	cobra.CheckErr(err)
}
