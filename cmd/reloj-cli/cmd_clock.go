package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zer0x25/reloj-control/client"
)

func newClockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Register clock events",
	}
	cmd.AddCommand(clockInCmd())
	cmd.AddCommand(clockOutCmd())
	cmd.AddCommand(clockStatusCmd())
	return cmd
}

func clockInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "in <employee-id>",
		Short: "Register an entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Clock.In(context.Background(), args[0])
			if err != nil {
				fatal("clock in", err)
			}
			output(rec, rec.UID)
		},
	}
}

func clockOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "out <employee-id>",
		Short: "Register an exit",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Clock.Out(context.Background(), args[0])
			if err != nil {
				fatal("clock out", err)
			}
			output(rec, rec.UID)
		},
	}
}

func clockStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <employee-id>",
		Short: "Show whether the employee is clocked in",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Clock.OpenRecord(context.Background(), args[0])
			if client.IsNotFound(err) {
				fmt.Println("clocked out")
				return
			}
			if err != nil {
				fatal("clock status", err)
			}
			fmt.Printf("clocked in since %s\n", rec.EntryAt.Format("2006-01-02 15:04"))
		},
	}
}
