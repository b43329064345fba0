package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oy3o/transcode"
)

var (
	convertArgs = struct {
		From  string
		To    string
		Lossy bool
		Out   string
	}{}

	Convert = &cobra.Command{
		Use:   "convert --to <form> [<file>|-]",
		Short: "Re-encodes the input in another encoding form.",
		Long: "Re-encodes the input in another encoding form. Malformed input is rejected " +
			"unless --lossy is set, in which case it is converted with U+FFFD in place of each bad sequence.",
		Args: cobra.MaximumNArgs(1),
		RunE: commandConvert,
	}
)

func commandConvert(cmd *cobra.Command, args []string) error {
	from, err := parseForm("from", convertArgs.From)
	if err != nil {
		return err
	}
	to, err := parseForm("to", convertArgs.To)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var out []byte
	if convertArgs.Lossy {
		if err := transcode.Validate(data, from); err != nil {
			Logger().Warn("replacing malformed input", zap.Stringer("form", from), zap.Error(err))
		}
		out, err = transcode.ConvertLossy(data, from, to)
	} else {
		out, err = transcode.Convert(data, from, to)
	}
	if err != nil {
		return err
	}
	Logger().Info("converted",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("in", len(data)),
		zap.Int("out", len(out)))
	return writeOutput(cmd, convertArgs.Out, out)
}

func init() {
	fs := Convert.Flags()
	formFlag(fs, &convertArgs.From, "from", "utf8", "Encoding form of the input.")
	formFlag(fs, &convertArgs.To, "to", "", "Encoding form of the output.")
	fs.BoolVar(&convertArgs.Lossy, "lossy", false, "Replace malformed sequences with U+FFFD instead of failing.")
	fs.StringVarP(&convertArgs.Out, "out", "o", "", "Write to this file instead of standard output.")
	_ = Convert.MarkFlagRequired("to")
	Root.AddCommand(Convert)
}
