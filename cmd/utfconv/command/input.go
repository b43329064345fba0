package command

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readInput reads the file named by the only argument, or standard input
// when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", name, err)
	}
	Logger().Debug("read input", zap.String("name", name), zap.Int("bytes", len(data)))
	return data, nil
}

// writeOutput writes data to the file path, or to the command output when
// path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	Logger().Debug("wrote output", zap.String("name", path), zap.Int("bytes", len(data)))
	return nil
}
