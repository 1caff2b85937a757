package main

import (
	"encoding/json"
	"fmt"

	"github.com/emurenMRz/eml2doc/internal/header"
	"github.com/emurenMRz/eml2doc/internal/source"
	"github.com/spf13/cobra"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <source>",
	Short: "Show where the Subject header of a message is and what it unfolds to",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the report as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, index, err := resolveSource(args[0])
	if err != nil {
		return err
	}

	raw, err := source.Load(path, index)
	if err != nil {
		return err
	}

	report := header.Inspect(raw)
	out := cmd.OutOrStdout()

	if inspectJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if !report.Found {
		fmt.Fprintf(out, "%s: no Subject header, one would be synthesized\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "%s:\n", args[0])
	fmt.Fprintf(out, "  value: bytes %d-%d\n", report.ValueStart, report.End)
	if report.FirstLine {
		fmt.Fprintln(out, "  first line of the message")
	}
	fmt.Fprintf(out, "  continuation lines: %d\n", report.Continuations)
	fmt.Fprintf(out, "  subject: %q\n", report.Subject)

	return nil
}
