// Package cli is the one-shot command surface. The bare command opens the
// interactive console; subcommands print a single report and exit, which is
// what cron jobs and shell pipelines want.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hoppers-ops/internal/adapters/repl"
	"hoppers-ops/internal/app"
	"hoppers-ops/internal/logger"
	"hoppers-ops/internal/money"
)

// Execute builds the command tree over svc and runs it.
func Execute(svc app.ApplicationService, currency string) error {
	root := &cobra.Command{
		Use:   "hoppers",
		Short: "Operations console for Hoppers Hotel & Butchery",
		Long: `hoppers tracks inventory stock, food/table orders, and supplier
expenses with partial-payment balances. Run without arguments for the
interactive console; subcommands print one report and exit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.Run(cmd.Context(), svc, bufio.NewReader(os.Stdin), currency)
			return nil
		},
	}

	root.AddCommand(
		newSummaryCmd(svc, currency),
		newStockCmd(svc),
		newExpensesCmd(svc),
		newOrdersCmd(svc, currency),
	)

	if err := root.Execute(); err != nil {
		log := logger.WithComponent("cli")
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func newSummaryCmd(svc app.ApplicationService, currency string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print today's overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.GetTodaySummary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Orders today:      %d (%s)\n", result.OrderCount, money.Format(currency, result.OrdersTotal))
			fmt.Printf("Expenses today:    %s\n", money.Format(currency, result.Expenses.TotalExpense))
			fmt.Printf("Paid today:        %s\n", money.Format(currency, result.Expenses.TotalPaid))
			fmt.Printf("Total outstanding: %s\n", money.Format(currency, result.Expenses.TotalOutstanding))
			return nil
		},
	}
}

func newStockCmd(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Print the current stock levels as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.GetInventory(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Levels)
		},
	}
}

func newExpensesCmd(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "expenses [group]",
		Short: "Print expense records (optionally one product group) as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.ListExpenses(cmd.Context())
			if err != nil {
				return err
			}
			rows := result.Rows
			if len(args) == 1 {
				filtered := rows[:0]
				for _, r := range rows {
					if r.Expense.ProductID == args[0] {
						filtered = append(filtered, r)
					}
				}
				rows = filtered
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}
}

func newOrdersCmd(svc app.ApplicationService, currency string) *cobra.Command {
	var todayOnly bool
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Print orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.ListOrders(cmd.Context(), todayOnly)
			if err != nil {
				return err
			}
			for _, o := range result.Orders {
				fmt.Printf("%s  %s  %-20s %s\n",
					o.ID, o.Date.Format("2006-01-02 15:04"), o.Employee,
					money.Format(currency, o.Total))
			}
			fmt.Printf("%d order(s)\n", len(result.Orders))
			return nil
		},
	}
	cmd.Flags().BoolVar(&todayOnly, "today", false, "only today's orders")
	return cmd
}
