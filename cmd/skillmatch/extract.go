package main

import (
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/spf13/cobra"
)

func newExtractCmd(root *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "List the dictionary skills found in a text file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readText(cmd, file)
			if err != nil {
				return err
			}
			ex, err := root.extractor()
			if err != nil {
				return err
			}
			skills, err := usecase.NewSkillUsecase(ex).Extract(cmd.Context(), text)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string][]string{"skills": skills})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the text file, or - for stdin (required)")
	markRequired(cmd, "file")
	return cmd
}
