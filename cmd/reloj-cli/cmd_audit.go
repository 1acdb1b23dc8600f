package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the action history",
	}
	cmd.AddCommand(auditListCmd())
	cmd.AddCommand(auditClearCmd())
	return cmd
}

func auditListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List audit entries, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			entries, err := apiClient.Audit.List(context.Background())
			if err != nil {
				fatal("list audit", err)
			}
			if flagFmt == "table" {
				headers := []string{"TIME", "ACTION", "SUBJECT"}
				var rows [][]string
				for _, e := range entries {
					rows = append(rows, []string{e.Time.Format("2006-01-02 15:04:05"), e.Action, e.Subject})
				}
				formatTable(headers, rows)
				return
			}
			output(entries, "")
		},
	}
}

func auditClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Wipe the audit log",
		Run: func(cmd *cobra.Command, args []string) {
			if !confirm("Clear the entire audit log?") {
				return
			}
			if err := apiClient.Audit.Clear(context.Background()); err != nil {
				fatal("clear audit", err)
			}
			fmt.Println("cleared")
		},
	}
}
