package main

import (
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/tracker"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/spf13/cobra"
)

type trackOptions struct {
	root *rootOptions
	db   string
}

func newTrackCmd(root *rootOptions) *cobra.Command {
	opts := &trackOptions{root: root}
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Keep a local application history",
	}
	cmd.PersistentFlags().StringVar(&opts.db, "db", "tracker.db", "Tracker database file")
	cmd.AddCommand(newTrackAddCmd(opts), newTrackStatusCmd(opts), newTrackListCmd(opts))
	return cmd
}

func (o *trackOptions) withStore(cmd *cobra.Command, fn func(*tracker.Store) (any, error)) error {
	s, err := tracker.Open(cmd.Context(), o.db)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := fn(s)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func newTrackAddCmd(opts *trackOptions) *cobra.Command {
	var (
		in         tracker.AddInput
		required   string
		resumeFile string
		score      int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an application",
		Long:  "Records an application. With --resume, the resume is matched against --require to fill in matched skills and, unless --score is set, the match score.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.RequiredSkills = splitList(required)
			if cmd.Flags().Changed("score") {
				in.MatchScore = &score
			}
			if resumeFile != "" {
				text, err := readText(cmd, resumeFile)
				if err != nil {
					return err
				}
				ex, err := opts.root.extractor()
				if err != nil {
					return err
				}
				res, err := usecase.NewSkillUsecase(ex).Match(cmd.Context(), usecase.MatchInput{
					CandidateText:  text,
					RequiredSkills: in.RequiredSkills,
				})
				if err != nil {
					return err
				}
				in.MatchedSkills = res.Matched
				if in.MatchScore == nil {
					in.MatchScore = &res.Score
				}
			}
			return opts.withStore(cmd, func(s *tracker.Store) (any, error) {
				return s.Add(cmd.Context(), in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "Job title (required)")
	f.StringVar(&in.Company, "company", "", "Company name")
	f.StringVar(&in.JobID, "job-id", "", "Catalog job id")
	f.StringVar(&in.Status, "status", "", "Initial status (default applied)")
	f.IntVar(&score, "score", 0, "Match score 0-100")
	f.StringVar(&required, "require", "", "Comma-separated skills the job asks for")
	f.StringVarP(&resumeFile, "resume", "r", "", "Resume text file to match against --require")
	markRequired(cmd, "title")
	return cmd
}

func newTrackStatusCmd(opts *trackOptions) *cobra.Command {
	var id, status string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Change an application's status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd, func(s *tracker.Store) (any, error) {
				return s.UpdateStatus(cmd.Context(), id, status)
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Application id (required)")
	cmd.Flags().StringVar(&status, "status", "", "New status (required)")
	markRequired(cmd, "id", "status")
	return cmd
}

func newTrackListCmd(opts *trackOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked applications, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withStore(cmd, func(s *tracker.Store) (any, error) {
				return s.List(cmd.Context())
			})
		},
	}
}
