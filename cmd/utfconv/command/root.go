package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/oy3o/transcode"
)

var (
	verbose bool

	Root = &cobra.Command{
		Use:   "utfconv",
		Short: "utfconv validates and converts text between UTF-8, UTF-16 and UTF-32.",
		Long: "`utfconv` reads a file, or standard input when the file is `-` or omitted, " +
			"in one Unicode encoding form and reports on it or re-encodes it.\n\n" +
			"Forms are named like utf8, utf-16le or UTF32BE. Text ends at the first zero code unit.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = Logger().Sync()
		},
	}
)

func init() {
	Root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to standard error.")
}

// formFlag registers a flag that takes an encoding form name.
func formFlag(fs *pflag.FlagSet, p *string, name, value, usage string) {
	fs.StringVar(p, name, value, usage+" One of "+strings.Join(formNames(), ", ")+".")
}

// parseForm resolves the value of the flag name.
func parseForm(name, value string) (transcode.Form, error) {
	f, err := transcode.LookupForm(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return f, nil
}

func formNames() []string {
	return []string{"utf8", "utf16le", "utf16be", "utf32le", "utf32be"}
}
