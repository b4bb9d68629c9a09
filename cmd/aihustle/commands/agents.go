package commands

import (
	"github.com/spf13/cobra"

	"aihustle/internal/domain"
	"aihustle/internal/services/strategist"
)

func productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <type>",
		Short: "Instantiate a product template (e.g. prompt_kit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, appCtx.Builder.CreateProduct(domain.ProductType(args[0])))
		},
	}
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List landing-page and email-sequence templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, appCtx.Builder.GetTemplates())
		},
	}
}

func dmsCmd() *cobra.Command {
	var leadType string
	cmd := &cobra.Command{
		Use:   "dms",
		Short: "Print the DM template and matching leads for a lead type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, appCtx.Outreach.GenerateDMs(domain.LeadType(leadType)))
		},
	}
	cmd.Flags().StringVar(&leadType, "type", string(domain.LeadCold), "lead type: cold, warm or followup")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, strategist.GetStats())
		},
	}
}

func researchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "research",
		Short: "Print the loaded research data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, appCtx.Strategist.MarketData())
		},
	}
}
