package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/analytics"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/tracker"

	"github.com/spf13/cobra"
)

func newAnalyticsCmd(root *rootOptions) *cobra.Command {
	var (
		file string
		db   string
		top  int
	)
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Summarize an application history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (file == "") == (db == "") {
				return fmt.Errorf("exactly one of --file or --db is required")
			}

			var apps []application.Application
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read applications: %w", err)
				}
				if err := json.Unmarshal(b, &apps); err != nil {
					return fmt.Errorf("failed to parse applications %s: %w", file, err)
				}
			} else {
				s, err := tracker.Open(cmd.Context(), db)
				if err != nil {
					return err
				}
				defer s.Close()
				if apps, err = s.List(cmd.Context()); err != nil {
					return err
				}
			}

			ex, err := root.extractor()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), analytics.NewAggregator(ex, top).Aggregate(apps))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file holding an array of applications")
	cmd.Flags().StringVar(&db, "db", "", "Tracker database file")
	cmd.Flags().IntVar(&top, "top", 10, "Number of top skills to report")
	return cmd
}
