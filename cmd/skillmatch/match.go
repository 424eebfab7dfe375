package main

import (
	"fmt"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/spf13/cobra"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	var (
		file     string
		skills   string
		required string
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score a resume or skill list against required skills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.MatchInput{
				CandidateSkills: splitList(skills),
				RequiredSkills:  splitList(required),
			}
			if file != "" {
				text, err := readText(cmd, file)
				if err != nil {
					return err
				}
				in.CandidateText = text
			}
			if in.CandidateText == "" && len(in.CandidateSkills) == 0 {
				return fmt.Errorf("one of --file or --skills is required")
			}

			ex, err := root.extractor()
			if err != nil {
				return err
			}
			res, err := usecase.NewSkillUsecase(ex).Match(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Resume text file, or - for stdin")
	cmd.Flags().StringVar(&skills, "skills", "", "Comma-separated candidate skills, used instead of --file")
	cmd.Flags().StringVar(&required, "require", "", "Comma-separated required skills (required)")
	markRequired(cmd, "require")
	return cmd
}
