package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/catalog"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/spf13/cobra"
)

func newJobsCmd(root *rootOptions) *cobra.Command {
	var (
		catalogFile string
		resumeFile  string
		tags        string
		q           dto.JobMatchQuery
	)
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Filter and paginate a job catalog",
		Long:  "Filters a JSON array of job listings (the bundled sample catalog when --catalog is omitted) and prints one page of results.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.Tags = splitList(tags)
			if err := dto.NewValidator().Struct(q); err != nil {
				return fmt.Errorf("invalid filter: %v", dto.FieldErrors(err))
			}

			listings, err := loadCatalog(catalogFile)
			if err != nil {
				return err
			}

			var out usecase.JobMatchPage
			if resumeFile != "" {
				text, err := readText(cmd, resumeFile)
				if err != nil {
					return err
				}
				ex, err := root.extractor()
				if err != nil {
					return err
				}
				out.ResumeSkills = ex.Extract(text)
				out.Page = job.MatchJobsWithResume(text, listings, q.Filter())
			} else {
				out.ResumeSkills = []string{}
				out.Page = job.Apply(listings, q.Filter())
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&catalogFile, "catalog", "", "JSON file holding an array of job listings")
	f.StringVarP(&resumeFile, "resume", "r", "", "Resume text file; its skills are reported alongside the page")
	f.StringVar(&tags, "tags", "", "Comma-separated tags; a listing matches when it carries any of them")
	f.StringVar(&q.Location, "location", "", "Location substring")
	f.StringVar(&q.JobType, "job-type", "", "Job type, matched case-insensitively")
	f.IntVar(&q.MinSalary, "min-salary", 0, "Minimum salary")
	f.IntVar(&q.MinMatchScore, "min-match-score", 0, "Minimum precomputed match score (0-100)")
	f.IntVar(&q.Page, "page", 1, "Page number, starting at 1")
	f.IntVar(&q.Limit, "limit", 0, "Page size (default 10)")
	return cmd
}

func loadCatalog(path string) ([]job.Listing, error) {
	if path == "" {
		return catalog.SampleListings(time.Now()), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var listings []job.Listing
	if err := json.Unmarshal(b, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return listings, nil
}
