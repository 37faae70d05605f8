package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/census-geocode/pkg/geocode"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <lat> <lng>",
	Short: "Reverse geocoding (unsupported)",
	Long:  "Coordinate-to-address resolution is not implemented; this command always fails.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return eris.Wrapf(err, "reverse: parse latitude %q", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return eris.Wrapf(err, "reverse: parse longitude %q", args[1])
		}

		_, err = geocode.New().ReverseGeocode(cmd.Context(), lat, lng)
		return err
	},
}

func init() { rootCmd.AddCommand(reverseCmd) }
