package main

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocode/pkg/geocode"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Geocode addresses read line by line",
	Long:  "Reads one address per line from the given file (or stdin), geocodes each, and writes results as JSON lines. Unmatched or malformed addresses are logged and skipped; they never abort the run.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return eris.Wrapf(err, "batch: open %s", args[0])
			}
			defer f.Close() //nolint:errcheck
			in = f
		}

		client, cleanup, err := newGeocoder()
		if err != nil {
			return err
		}
		defer cleanup()

		log := zap.L().With(zap.String("command", "batch"))
		enc := json.NewEncoder(cmd.OutOrStdout())

		var total, resolved int
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			location := strings.TrimSpace(scanner.Text())
			if location == "" {
				continue
			}
			total++

			result, gcErr := client.Geocode(cmd.Context(), geocode.Location(location))
			if gcErr != nil {
				return gcErr
			}
			if result == nil {
				continue // condition already reported at warn level
			}

			if encErr := enc.Encode(map[string]any{"location": location, "result": result}); encErr != nil {
				return eris.Wrap(encErr, "batch: encode result")
			}
			resolved++
		}
		if err := scanner.Err(); err != nil {
			return eris.Wrap(err, "batch: read input")
		}

		log.Info("batch complete",
			zap.Int("addresses", total),
			zap.Int("resolved", resolved),
		)
		return nil
	},
}

func init() { rootCmd.AddCommand(batchCmd) }
