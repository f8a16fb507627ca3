package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"eldlog/internal/duty"
	"eldlog/internal/render"
	"eldlog/internal/trip"
	"eldlog/internal/ui"
)

// renderOptions are the output flags shared by render and plan.
type renderOptions struct {
	configFile string
	outputFile string
	routeFile  string
}

func (o *renderOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configFile, "config", "", "YAML configuration file (optional)")
	cmd.Flags().StringVarP(&o.outputFile, "output", "o", "", "Output SVG filename for the log sheets")
	cmd.Flags().StringVar(&o.routeFile, "route", "", "Also write a route sketch SVG to this file")
}

// SetupCommands builds the command tree.
func SetupCommands() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eldlog",
		Short:         "Plan truck trips and render daily duty-status log sheets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debugMode, _ = cmd.Flags().GetBool("debug")
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode for verbose output")

	// render a saved trip result
	var renderOpts renderOptions
	var renderInput string
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the log sheets of a saved trip result as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := trip.LoadFile(renderInput)
			if err != nil {
				return err
			}
			debugPrint("Loaded trip %d with %d log sheets from %s", data.ID, len(data.LogSheets), renderInput)
			return writeOutputs(cmd.OutOrStdout(), data, getOutputFilename(renderInput, renderOpts.outputFile), renderOpts)
		},
	}
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Trip result JSON file (required)")
	renderCmd.MarkFlagRequired("input")
	renderOpts.bind(renderCmd)

	// plan a trip on the backend
	var planOpts renderOptions
	var inputs trip.Inputs
	var backendURL, saveFile string
	var timeout time.Duration
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip on the backend and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			debugPrint("Requesting trip plan from %s", backendURL)
			client := trip.NewClient(backendURL, &http.Client{})
			data, err := client.Plan(ctx, inputs)
			if err != nil {
				return err
			}
			debugPrint("Received trip %d with %d log sheets", data.ID, len(data.LogSheets))

			fmt.Fprintln(cmd.OutOrStdout(), ui.Summary(data))

			if saveFile != "" {
				if err := saveTrip(saveFile, data); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Trip saved: %s\n", saveFile)
			}
			if planOpts.outputFile == "" && planOpts.routeFile == "" {
				return nil
			}
			return writeOutputs(cmd.OutOrStdout(), data, planOpts.outputFile, planOpts)
		},
	}
	planCmd.Flags().StringVar(&inputs.CurrentLocation, "current", "", "Current location (required)")
	planCmd.Flags().StringVar(&inputs.PickupLocation, "pickup", "", "Pickup location (required)")
	planCmd.Flags().StringVar(&inputs.DropoffLocation, "dropoff", "", "Dropoff location (required)")
	planCmd.Flags().Float64Var(&inputs.CurrentCycleUsedHrs, "cycle", 0, "Hours already used in the current cycle (0-70)")
	planCmd.Flags().StringVar(&backendURL, "backend", trip.DefaultBaseURL, "Trip planning backend base URL")
	planCmd.Flags().StringVar(&saveFile, "save", "", "Save the trip result JSON to this file")
	planCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	planOpts.bind(planCmd)

	// print the summary of a saved trip result
	var summaryInput string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the summary of a saved trip result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := trip.LoadFile(summaryInput)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Summary(data))
			return nil
		},
	}
	summaryCmd.Flags().StringVarP(&summaryInput, "input", "i", "", "Trip result JSON file (required)")
	summaryCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(summaryCmd)

	return rootCmd
}

// writeOutputs renders the log sheets to sheetPath when it is set, and the
// route sketch when opts asks for one.
func writeOutputs(out io.Writer, data *trip.Data, sheetPath string, opts renderOptions) error {
	config, err := render.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	debugPrint("Configuration loaded. Row height: %v, width: %d", config.Layout.RowHeight, config.Layout.Width)

	if sheetPath != "" {
		for i, sheet := range data.LogSheets {
			for _, row := range duty.LayoutSheet(sheet, config.Layout.RowHeight) {
				if row.Err != nil {
					fmt.Fprintf(os.Stderr, "Warning: sheet %d (%s) %s row: %v\n", i+1, sheet.Date, row.Status.Label(), row.Err)
				}
			}
		}
		if err := writeFile(sheetPath, func(w io.Writer) error {
			return render.LogSheets(w, data.LogSheets, config)
		}); err != nil {
			return fmt.Errorf("error writing log sheets: %w", err)
		}
		fmt.Fprintf(out, "Log sheets SVG generated successfully: %s\n", sheetPath)
	}

	if opts.routeFile != "" {
		if err := writeFile(opts.routeFile, func(w io.Writer) error {
			return render.Route(w, data.RouteData, config)
		}); err != nil {
			return fmt.Errorf("error writing route sketch: %w", err)
		}
		fmt.Fprintf(out, "Route SVG generated successfully: %s\n", opts.routeFile)
	}
	return nil
}

// writeFile renders into a temporary file beside path and renames it into
// place, so a failed render leaves no partial output.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".eldlog-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func saveTrip(path string, data *trip.Data) error {
	return writeFile(path, func(w io.Writer) error {
		return trip.Encode(w, data)
	})
}
