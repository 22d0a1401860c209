package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type ProductsCmd struct {
	dbPath      string
	profilePath string
	factory     ServiceFactory
}

func NewProductsCmd(factory ServiceFactory) *cobra.Command {
	pc := &ProductsCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the products monitored in an order-history database",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.dbPath, "db", "", "Path to the order-history SQLite file")
	cmd.Flags().StringVar(&pc.profilePath, "profile", "", "Path to an analysis configuration profile")

	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func (pc *ProductsCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(pc.profilePath)
	if err != nil {
		return err
	}

	service := pc.factory(cfg)
	ds, err := service.LoadFile(cmd.Context(), pc.dbPath)
	if err != nil {
		return fmt.Errorf("failed to load order history: %w", err)
	}

	products := ds.Products()
	if len(products) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No monitored products found.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintln(cmd.OutOrStdout(), p.Display)
	}
	return nil
}
