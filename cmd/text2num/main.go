// Command text2num converts spoken-form numbers in text to digits.
//
//	text2num normalize            # stdin → stdout, line by line
//	text2num parse twee duizend   # compose one number phrase
//	text2num ordinal eerste       # ordinal word → cardinal word
//	text2num serve --addr :8080   # JSON API
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akpeker/text2num/compose"
	"github.com/akpeker/text2num/lang"
	"github.com/akpeker/text2num/ordinal"
	"github.com/akpeker/text2num/pipeline"
	"github.com/akpeker/text2num/segment"
)

var version = "0.1.0"

// profilePath is the root-level --profile flag: a YAML language profile to
// use instead of the built-in Dutch one.
var profilePath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "text2num",
		Short: "Spoken-form number normalization",
		Long: `text2num rewrites number words in text to digit form.

Glued compound words are split ("tweeëntwintig" → 22), ordinal words are
rendered in digit form ("eerste" → "1e."), and optional passes canonicalize
decimal fractions, currency amounts, dates, and clock times.

The built-in language profile is Dutch; pass --profile to load another.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML language profile (default: built-in Dutch)")

	rootCmd.AddCommand(normalizeCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(ordinalCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "text2num:", err)
		os.Exit(1)
	}
}

// loadProfile returns the profile named by --profile, or the built-in Dutch
// profile when the flag is unset.
func loadProfile() (*lang.Profile, error) {
	if profilePath == "" {
		return lang.Dutch(), nil
	}
	f, err := os.Open(profilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lang.Load(f)
}

func normalizeCmd() *cobra.Command {
	var opts pipeline.Options
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Rewrite number words in text to digits",
		Long: `Normalize reads text from a file (or stdin) and writes it back with
number phrases in digit form, one line at a time.

Example:
  echo "ik heb tweeëntwintig appels" | text2num normalize
  text2num normalize --currency --times transcript.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			pl, err := pipeline.New(p, opts)
			if err != nil {
				return err
			}

			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			sc := bufio.NewScanner(in)
			sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
			for sc.Scan() {
				fmt.Fprintln(out, pl.Normalize(sc.Text()))
			}
			return sc.Err()
		},
	}
	cmd.Flags().BoolVar(&opts.Currency, "currency", false, "rewrite currency amounts to symbol form")
	cmd.Flags().BoolVar(&opts.Dates, "dates", false, "rewrite calendar-date spans")
	cmd.Flags().BoolVar(&opts.Times, "times", false, "rewrite clock-time spans")
	cmd.Flags().BoolVar(&opts.MonthAsName, "month-names", false, "render rewritten dates with month names")
	return cmd
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <word>...",
		Short: "Compose one number phrase",
		Long: `Parse composes a sequence of number words into a single value.

Example:
  text2num parse twee duizend vijfhonderd drieëntwintig`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			toks, err := phraseTokens(segment.New(p), args)
			if err != nil {
				return err
			}
			n, err := compose.ComposeTokens(p, toks)
			if err != nil {
				return err
			}
			fmt.Println(n.Format(p.DecimalSymbol()))
			return nil
		},
	}
}

// phraseTokens resolves phrase words into lexicon tokens, splitting glued
// compounds ("vijfhonderd" → vijf, honderd) the way the pipeline does.
func phraseTokens(sp *segment.Splitter, words []string) ([]lang.Token, error) {
	var toks []lang.Token
	for _, w := range words {
		wt, ok := sp.Tokens(w)
		if !ok {
			return nil, fmt.Errorf("unknown number word %q", w)
		}
		toks = append(toks, wt...)
	}
	return toks, nil
}

func ordinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <word>",
		Short: "Convert an ordinal word to its cardinal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			card, ok := ordinal.New(p).ToCardinal(args[0])
			if !ok {
				return fmt.Errorf("%q is not an ordinal", args[0])
			}
			fmt.Println(card)
			return nil
		},
	}
}
