package main

import (
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

func commissionsCmd(e env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commissions",
		Short: "Commission maintenance",
	}
	cmd.AddCommand(autoApproveCmd(e))
	return cmd
}

func autoApproveCmd(e env) *cobra.Command {
	var operator string
	cmd := &cobra.Command{
		Use:   "auto-approve",
		Short: "Approve pending commissions older than the approval window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, release, err := e.Services(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			result, err := srv.CommissionService.AutoApprove(cmd.Context(), operatorActor(operator))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&operator, "operator", "", "operator id recorded in the audit log")
	return cmd
}

func operatorActor(id string) domain.Actor {
	if id == "" {
		return domain.SystemActor
	}
	return domain.Actor{ID: id, Role: domain.RoleAdmin}
}
