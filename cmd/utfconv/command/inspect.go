package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oy3o/transcode"
)

var (
	inspectArgs = struct {
		From string
	}{}

	Inspect = &cobra.Command{
		Use:   "inspect [<file>|-]",
		Short: "Reports whether the input is well-formed and its length in every form.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  commandInspect,
	}
)

func commandInspect(cmd *cobra.Command, args []string) error {
	from, err := parseForm("from", inspectArgs.From)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	units, err := transcode.UnitLen(data, from)
	if err != nil {
		return err
	}
	status := "valid"
	if err := transcode.Validate(data, from); err != nil {
		Logger().Info("input is malformed", zap.Stringer("form", from), zap.Error(err))
		status = err.Error()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "form:\t%s\n", from)
	fmt.Fprintf(w, "units:\t%d\n", units)
	fmt.Fprintf(w, "status:\t%s\n", status)
	for _, to := range []transcode.Form{transcode.FormUTF8, transcode.FormUTF16LE, transcode.FormUTF32LE} {
		n, err := transcode.EncodedLen(data, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s units:\t%d\n", unitName(to), n/to.UnitSize())
	}
	return w.Flush()
}

func unitName(f transcode.Form) string {
	switch f.UnitSize() {
	case 1:
		return "utf8"
	case 2:
		return "utf16"
	default:
		return "utf32"
	}
}

func init() {
	formFlag(Inspect.Flags(), &inspectArgs.From, "from", "utf8", "Encoding form of the input.")
	Root.AddCommand(Inspect)
}
