package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/convert"
	"github.com/jsphweid/relayseq/model"
	"github.com/spf13/cobra"
)

var speedPercent int

func init() {
	inspectCmd.Flags().IntVarP(&speedPercent, "speed", "s", constants.DefaultSpeedPercent, "player speed in percent (50-300)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Shows tempo, pitch range, the relay of every pitch and how long the table plays.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintln(cmd.OutOrStdout(), "usage: relayseq inspect input.mid")
			return model.ErrUsage
		}
		res, err := convert.ConvertFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), inspect(args[0], res, speedPercent))
		return nil
	},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("241"))
	relayStyle = lipgloss.NewStyle().PaddingLeft(2)
)

func line(label string, format string, args ...any) string {
	return labelStyle.Render(label) + fmt.Sprintf(format, args...)
}

func noteList(notes []uint8) string {
	if len(notes) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, " ")
}

func inspect(path string, res *convert.Result, speed int) string {
	report := analyze(res, speed)

	tempoSource := "from file"
	if !res.TempoFound {
		tempoSource = "default"
	}

	lines := []string{
		titleStyle.Render(path),
		line("tempo", "%d us/beat (%.2f bpm, %s)", res.TempoUs, 60000000/float64(res.TempoUs), tempoSource),
		line("ms per tick", "%.4f", res.MsPerTick),
		line("note events", "%d", res.Events),
		line("pitch range", "%d..%d", res.Range.Min, res.Range.Max),
		line("steps", "%d", report.numSteps),
		line("length", "%d ms (%d ms silent)", report.totalMs, report.silentMs),
		line("player length", "%v at %d%%", report.playback, report.speedPercent),
		titleStyle.Render("relays"),
	}
	for _, r := range report.relays {
		lines = append(lines, relayStyle.Render(fmt.Sprintf(
			"relay %d  %3d Hz  %6d ms in %4d steps  notes: %s",
			r.index+1, r.frequency, r.activeMs, r.numSteps, noteList(r.notes),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
