package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leafilms/docgen"
	"github.com/leafilms/docgen/batch"
	"github.com/leafilms/docgen/model"
	"github.com/leafilms/docgen/pdfinfo"
	"github.com/leafilms/docgen/quote"
	"github.com/leafilms/docgen/shutdown"
	"github.com/leafilms/docgen/source"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	docgen.Version = version
	ctx, stop := shutdown.Notify(context.Background())

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docgen",
		Short: "Render price quotes and project descriptions as PDF",
		Long: `docgen renders two kinds of documents:

  quote   an A4 price quote built from a quote sheet
  deck    a two page 1920x1080 project description with uploaded images

Asset locations and brand settings come from DOCGEN_* environment variables,
an optional --config YAML file and the flags below, in that order.`,
		Example: `  docgen quote --source https://docs.google.com/spreadsheets/d/abc123/edit --data-dir sheets -o out/
  docgen deck --content fest.yaml --type event -o fest.pdf
  docgen batch jobs.yaml -o out/
  docgen inspect out/fest.pdf --text`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			docgen.Flags.UseFlags()
		},
	}

	docgen.BindAllFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newQuoteCommand())
	rootCmd.AddCommand(newDeckCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*docgen.Config, error) {
	return docgen.Flags.Config(cmd.Flags())
}

func newQuoteCommand() *cobra.Command {
	var (
		sourceURL string
		lang      string
		travel    bool
		vat       bool
		discount  float64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Render a price quote",
		Long: `Render an A4 price quote from the sheet behind --source.

The sheet id is taken from the /d/<id> part of the URL and read from
<data-dir>/<id>.yaml, .yml or .json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			language, err := model.ParseLanguage(lang)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := cfg.Quotes().Generate(cmd.Context(), cfg.Fetcher(), sourceURL, quote.Request{
				Language:        language,
				IncludeTravel:   travel,
				IncludeTax:      vat,
				DiscountPercent: discount,
			})
			if err != nil {
				return err
			}
			path, err := writeOutput(output, res.Filename, res.Data)
			if err != nil {
				return err
			}
			printResults([]batch.Result{{
				Job:      batch.Job{Name: res.Filename, Kind: batch.KindQuote},
				Path:     path,
				Size:     len(res.Data),
				Duration: time.Since(start),
			}})
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceURL, "source", "s", "", "Quote sheet URL (required)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "NO", "Language: NO or EN")
	cmd.Flags().BoolVar(&travel, "travel", false, "Travel costs are included in the price")
	cmd.Flags().BoolVar(&vat, "vat", false, "Print totals including VAT")
	cmd.Flags().Float64Var(&discount, "discount", 0, "Discount percent (0-100)")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Output directory, .pdf file, or - for stdout")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newDeckCommand() *cobra.Command {
	var (
		contentFile string
		projectType string
		projectName string
		lang        string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Render a project description",
		Long: `Render the two page 1920x1080 project description from a YAML or JSON
content file. Images are looked up in the uploads directory by file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			content, err := source.LoadProject(contentFile)
			if err != nil {
				return err
			}
			var language model.Language
			if lang != "" {
				if language, err = model.ParseLanguage(lang); err != nil {
					return err
				}
			}

			start := time.Now()
			data, err := cfg.Decks().Render(*content, projectType, projectName, language)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(contentFile), filepath.Ext(contentFile)) + ".pdf"
			path, err := writeOutput(output, name, data)
			if err != nil {
				return err
			}
			printResults([]batch.Result{{
				Job:      batch.Job{Name: name, Kind: batch.KindDeck},
				Path:     path,
				Size:     len(data),
				Duration: time.Since(start),
			}})
			return nil
		},
	}

	cmd.Flags().StringVar(&contentFile, "content", "", "Project content file (required)")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type: event, advertising, product or branding")
	cmd.Flags().StringVar(&projectName, "name", "", "Project name, overrides the content file")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language: NO or EN, overrides the content file")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Output directory, .pdf file, or - for stdout")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newBatchCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Render every job of a YAML manifest",
		Long: `Render the quote and deck jobs listed in a manifest concurrently. A failing
job does not stop the others; the command fails if any job failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := batch.LoadManifest(args[0])
			if err != nil {
				return err
			}
			shutdown.AddHookWithPriority("batch", shutdown.PriorityRenders, func() {
				logger.Warnf("interrupted, skipping jobs of %s that have not started", args[0])
			})

			results, err := cfg.Runner(output).Run(cmd.Context(), *m)
			printResults(results)
			if err != nil {
				return fmt.Errorf("%d of %d jobs failed", countFailed(results), len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "out", "Output directory")
	return cmd
}

func newInspectCommand() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Show page count, page sizes and optionally the text of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			info, err := pdfinfo.Read(data)
			if err != nil {
				return err
			}
			printInfo(args[0], info)

			if text {
				content, err := pdfinfo.Text(data)
				if err != nil {
					return err
				}
				fmt.Println(content)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "Print the extracted text")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("docgen %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}

// writeOutput writes data to output, which is a directory, a .pdf file or
// "-" for stdout, and returns where it went.
func writeOutput(output, name string, data []byte) (string, error) {
	if output == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return "", errors.New("refusing to write PDF data to a terminal, redirect stdout or use -o")
		}
		_, err := os.Stdout.Write(data)
		return "stdout", err
	}

	path := output
	if !strings.EqualFold(filepath.Ext(output), ".pdf") {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return "", err
		}
		path = filepath.Join(output, name)
	} else if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debugf("wrote %s", path)
	return path, nil
}
