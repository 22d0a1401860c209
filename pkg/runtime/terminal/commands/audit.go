package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type AuditCmd struct {
	dbPath      string
	profilePath string
	product     int
	factory     ServiceFactory
}

func NewAuditCmd(factory ServiceFactory) *cobra.Command {
	ac := &AuditCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report verification and ordering totals for one product",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dbPath, "db", "", "Path to the order-history SQLite file")
	cmd.Flags().StringVar(&ac.profilePath, "profile", "", "Path to an analysis configuration profile")
	cmd.Flags().IntVar(&ac.product, "product", 0, "Product id to audit")

	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(ac.profilePath)
	if err != nil {
		return err
	}

	service := ac.factory(cfg)
	ds, err := service.LoadFile(cmd.Context(), ac.dbPath)
	if err != nil {
		return fmt.Errorf("failed to load order history: %w", err)
	}

	a := service.AuditProduct(ds.Records, ac.product)
	if a.Verifications == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No records found for product %d.\n", ac.product)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Product: %s\n", a.Product.Display)
	fmt.Fprintf(cmd.OutOrStdout(), "Stock verifications: %d\n", a.Verifications)
	fmt.Fprintf(cmd.OutOrStdout(), "Units ordered: %d\n", a.UnitsOrdered)
	return nil
}
