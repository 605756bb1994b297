package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/uspsship/pkg/usps"
)

func newValidateCmd(a *app) *cobra.Command {
	var addr usps.StandardAddress

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate and standardize an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.ValidateAddress(cmd.Context(), addr)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&addr.Firm, "firm", "", "firm or company name")
	cmd.Flags().StringVar(&addr.Street, "street", "", "street line, e.g. \"1600 Pennsylvania Ave NW\"")
	cmd.Flags().StringVar(&addr.Unit, "unit", "", "apartment or suite")
	cmd.Flags().StringVar(&addr.City, "city", "", "city")
	cmd.Flags().StringVar(&addr.State, "state", "", "2-letter state code")
	cmd.Flags().StringVar(&addr.Zip5, "zip5", "", "5-digit ZIP code")
	cmd.Flags().StringVar(&addr.Zip4, "zip4", "", "ZIP+4 extension")
	_ = cmd.MarkFlagRequired("street")

	return cmd
}
