package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/spf13/cobra"
)

var (
	nameColor  = color.New(color.FgCyan, color.Bold)
	curveColor = color.New(color.FgYellow)
)

func newRootCmd(a *app) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "ledtween",
		Short: "Tweened LED strip animation streamer",
		Long: `ledtween plays scripted, eased animations of light segments and streams the
frames to an ledrx device over MQTT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "YAML config file.")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Stream the show over MQTT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.readConfig(configPath); err != nil {
				return err
			}
			return a.run()
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Play the show in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.readConfig(configPath); err != nil {
				return err
			}
			return a.preview()
		},
	}

	var samples int
	easingsCmd := &cobra.Command{
		Use:   "easings",
		Short: "List the available ease curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEasings(cmd.OutOrStdout(), samples)
		},
	}
	easingsCmd.Flags().IntVarP(&samples, "samples", "n", 24, "Samples drawn per curve.")

	rootCmd.AddCommand(runCmd, previewCmd, easingsCmd)
	return rootCmd
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws curve sampled over [0, 1]. Overshooting curves are clipped.
func sparkline(curve func(float64) float64, samples int) string {
	if samples < 2 {
		samples = 2
	}
	var b strings.Builder
	for i := 0; i < samples; i++ {
		v := curve(float64(i) / float64(samples-1))
		idx := int(v*float64(len(sparks)-1) + 0.5)
		if idx < 0 {
			idx = 0
		} else if idx >= len(sparks) {
			idx = len(sparks) - 1
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

func printEasings(w io.Writer, samples int) error {
	for _, name := range tween.EaseNames() {
		curve, err := tween.Curve(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", nameColor.Sprintf("%-14s", name), curveColor.Sprint(sparkline(curve, samples))); err != nil {
			return err
		}
	}
	return nil
}
