package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	dictionaryPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "skillmatch",
		Short:         "Skill extraction, matching and application analytics",
		Long:          "skillmatch recognizes skills in resumes, scores them against job requirements, filters job catalogs and summarizes application histories.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.dictionaryPath, "dictionary", os.Getenv("SKILL_DICTIONARY_PATH"), "Path to a skill dictionary JSON file (defaults to the built-in table)")

	cmd.AddCommand(
		newExtractCmd(opts),
		newMatchCmd(opts),
		newJobsCmd(opts),
		newAnalyticsCmd(opts),
		newTrackCmd(opts),
		newTokenCmd(),
	)
	return cmd
}

func (o *rootOptions) extractor() (*skill.Extractor, error) {
	if strings.TrimSpace(o.dictionaryPath) == "" {
		return skill.NewExtractor(skill.DefaultDictionary()), nil
	}
	d, err := skill.LoadDictionaryFile(o.dictionaryPath)
	if err != nil {
		return nil, err
	}
	return skill.NewExtractor(d), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// readText reads path, or stdin when path is "-".
func readText(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", n, err))
		}
	}
}
