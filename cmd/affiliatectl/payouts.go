package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func payoutsCmd(e env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Payout settlement",
	}
	cmd.AddCommand(batchCmd(e))
	return cmd
}

func batchCmd(e env) *cobra.Command {
	var (
		dryRun   bool
		operator string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Pay every partner whose approved balance reaches the minimum payout",
		Example: `  affiliatectl payouts batch --dry-run --operator ops-1
  affiliatectl payouts batch --operator ops-1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if operator == "" {
				return errors.New("--operator is required")
			}
			srv, release, err := e.Services(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			result, err := srv.PayoutService.RunPayoutBatch(cmd.Context(), operatorActor(operator), dryRun)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d of %d partners failed", result.Failed, len(result.Payouts))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the payouts without creating them")
	cmd.Flags().StringVar(&operator, "operator", "", "operator id recorded in the audit log")
	return cmd
}
