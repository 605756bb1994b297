package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/uspsship/internal/cliconfig"
	"github.com/bft-labs/uspsship/pkg/usps"
)

func newLabelCmd(a *app) *cobra.Command {
	var (
		shipmentPath string
		weight       float64
		service      string
		labelType    string
	)

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Create an eVS shipping label",
		Long: `Create an eVS shipping label from a shipment file.

The shipment file is TOML with weight_ounces, service and label_type keys and
[from] / [to] address tables (name, firm, street, unit, city, state, zip5,
zip4, phone). Flags override the values from the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := cliconfig.LoadShipmentFile(shipmentPath)
			if err != nil {
				return err
			}
			label := sf.Label()
			if cmd.Flags().Changed("weight") {
				label.WeightOunces = weight
			}
			if service != "" {
				label.Service = usps.Service(service)
			}
			if labelType != "" {
				label.LabelType = usps.LabelType(labelType)
			}

			result, err := a.client.CreateShipment(cmd.Context(), label)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&shipmentPath, "shipment", "", "path to shipment TOML file")
	cmd.Flags().Float64Var(&weight, "weight", 0, "package weight in ounces")
	cmd.Flags().StringVar(&service, "service", "", "service type (default PRIORITY)")
	cmd.Flags().StringVar(&labelType, "label-type", "", "label image type (default ZPLII)")
	_ = cmd.MarkFlagRequired("shipment")

	return cmd
}
