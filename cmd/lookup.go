package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/census-geocode/pkg/geocode"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <address words...>",
	Short: "Geocode a single address",
	Long:  "Joins the positional arguments into one location string, geocodes it, and prints the decoded result.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newGeocoder()
		if err != nil {
			return err
		}
		defer cleanup()

		location := strings.Join(args, " ")
		result, err := client.Geocode(cmd.Context(), geocode.Location(location))
		if err != nil {
			return err
		}
		if result == nil {
			return eris.Errorf("no result for %q", location)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "lookup: encode result")
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() { rootCmd.AddCommand(lookupCmd) }
