package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingEric/exceltool/internal/config"
	"github.com/lingEric/exceltool/internal/roster"
	"github.com/lingEric/exceltool/pkg/exceltool"
)

func newExportCmd(rf *rootFlags) *cobra.Command {
	var (
		count        int
		outputPath   string
		capacity     int
		mappingPath  string
		title        string
		seed         uint64
		noValidation bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a generated student roster to a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("invalid count: %d", count)
			}
			s, err := roster.Schema()
			if err != nil {
				return err
			}

			opts := exceltool.DefaultOptions()
			opts.Logger = rf.logger
			opts.Title = title
			opts.PageCapacity = rf.cfg.PageCapacity
			if cmd.Flags().Changed("capacity") {
				opts.PageCapacity = capacity
			}
			opts.Translations = roster.Translations()
			if mappingPath != "" {
				m, err := config.LoadMapping(mappingPath)
				if err != nil {
					return fmt.Errorf("failed to load mapping: %w", err)
				}
				if t := m.Table(); t != nil {
					opts.Translations = t
				}
				opts.SelectLists = m.SelectLists
			}
			if noValidation {
				off := false
				opts.Validations = &off
			}

			students := roster.Generate(count, seed)
			if err := exceltool.ExportFile(outputPath, students, s, opts); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			rf.logger.Info("roster written", "path", outputPath, "records", len(students))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&count, "count", "n", 100, "Number of students to generate")
	f.StringVarP(&outputPath, "out", "o", "roster.xlsx", "Output workbook path")
	f.IntVar(&capacity, "capacity", 0, "Records per sheet (default from EXCELTOOL_PAGE_CAPACITY or 65530)")
	f.StringVar(&mappingPath, "translations", "", "YAML file with translations and select_lists")
	f.StringVar(&title, "title", "", "Title band text (default: schema title)")
	f.Uint64Var(&seed, "seed", 1, "Random seed for generated records")
	f.BoolVar(&noValidation, "no-validation", false, "Do not attach dropdown constraints")
	return cmd
}
