package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingEric/exceltool/internal/roster"
	"github.com/lingEric/exceltool/pkg/exceltool"
)

func newImportCmd(rf *rootFlags) *cobra.Command {
	var (
		sheet      int
		lenient    bool
		pretty     bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Read a roster workbook and print its records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := roster.Schema()
			if err != nil {
				return err
			}

			opts := exceltool.DefaultOptions()
			opts.Logger = rf.logger
			if lenient {
				opts.Policy = exceltool.SkipInvalid
			}

			students, err := exceltool.ImportFile(args[0], sheet, s, opts)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			if students == nil {
				students = []roster.Student{}
			}

			data, err := toJSON(students, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&sheet, "sheet", 0, "0-based sheet index to read")
	f.BoolVar(&lenient, "lenient", false, "Skip rows that fail to decode instead of aborting")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func toJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
