package commands

import (
	"fmt"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/runtime/terminal/export"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/analysis"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/roi"
	"github.com/spf13/cobra"
)

const dateLayout = "02-01-2006"

// ServiceFactory builds an analysis service from a resolved configuration.
type ServiceFactory func(cfg analysis.Config) analysis.Service

type AnalyzeCmd struct {
	dbPath          string
	profilePath     string
	hourlyCost      float64
	gapMinutes      float64
	discountSeconds float64
	from            string
	to              string
	product         int
	factory         ServiceFactory
	reporter        *export.Reporter
}

func NewAnalyzeCmd(factory ServiceFactory, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the automation ROI for an order-history database",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dbPath, "db", "", "Path to the order-history SQLite file")
	cmd.Flags().StringVar(&ac.profilePath, "profile", "", "Path to an analysis configuration profile")
	cmd.Flags().Float64Var(&ac.hourlyCost, "hourly-cost", 0, "Hourly labor cost")
	cmd.Flags().Float64Var(&ac.gapMinutes, "gap-minutes", 0, "Inactivity gap separating execution sessions, in minutes")
	cmd.Flags().Float64Var(&ac.discountSeconds, "discount-seconds", 0, "Human-speed discount per verification, in seconds")
	cmd.Flags().StringVar(&ac.from, "from", "", "Start of the analyzed period (dd-mm-yyyy)")
	cmd.Flags().StringVar(&ac.to, "to", "", "End of the analyzed period (dd-mm-yyyy)")
	cmd.Flags().IntVar(&ac.product, "product", 0, "Restrict the analysis to one product id")

	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(ac.profilePath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("hourly-cost") {
		cfg.HourlyCost = ac.hourlyCost
	}
	if cmd.Flags().Changed("gap-minutes") {
		cfg.GapMinutes = ac.gapMinutes
	}
	if cmd.Flags().Changed("discount-seconds") {
		cfg.DiscountSeconds = ac.discountSeconds
	}

	service := ac.factory(cfg)

	ds, err := service.LoadFile(cmd.Context(), ac.dbPath)
	if err != nil {
		return fmt.Errorf("failed to load order history: %w", err)
	}

	from, to, err := parseRange(ac.from, ac.to)
	if err != nil {
		return err
	}

	records := analysis.FilterRange(ds.Records, from, to)
	if cmd.Flags().Changed("product") {
		records = analysis.FilterProduct(records, ac.product)
	}

	summary := service.Summarize(records, service.Defaults())
	report := roi.BuildReport(ds, records, summary, cfg.Currency)

	return ac.reporter.Handle(report)
}

func resolveConfig(profilePath string) (analysis.Config, error) {
	if profilePath == "" {
		return analysis.DefaultConfig(), nil
	}
	cfg, err := analysis.LoadConfig(profilePath)
	if err != nil {
		return analysis.Config{}, fmt.Errorf("failed to load profile %s: %w", profilePath, err)
	}
	return *cfg, nil
}

func parseRange(from, to string) (*time.Time, *time.Time, error) {
	parse := func(name, value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s date %q, expected dd-mm-yyyy", name, value)
		}
		return &t, nil
	}

	fromTime, err := parse("from", from)
	if err != nil {
		return nil, nil, err
	}
	toTime, err := parse("to", to)
	if err != nil {
		return nil, nil, err
	}
	return fromTime, toTime, nil
}
