package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zer0x25/reloj-control/client"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "View and correct attendance records",
	}
	cmd.AddCommand(recordListCmd())
	cmd.AddCommand(recordEditCmd())
	cmd.AddCommand(recordCommentCmd())
	cmd.AddCommand(recordDeleteCmd())
	cmd.AddCommand(recordExportCmd())
	return cmd
}

func recordFilterFlags(cmd *cobra.Command, filter *client.RecordFilter) {
	cmd.Flags().StringVar(&filter.Name, "name", "", "Filter by employee name substring")
	cmd.Flags().StringVar(&filter.Area, "area", "", "Filter by area substring")
	cmd.Flags().StringVar(&filter.From, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.To, "to", "", "End date, inclusive (YYYY-MM-DD)")
}

func recordListCmd() *cobra.Command {
	var filter client.RecordFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visible attendance records",
		Run: func(cmd *cobra.Command, args []string) {
			rows, err := apiClient.Records.List(context.Background(), &filter)
			if err != nil {
				fatal("list records", err)
			}
			if flagFmt == "table" {
				headers := []string{"AREA", "NAME", "TITLE", "ENTRY", "EXIT", "COMMENT"}
				var cells [][]string
				for _, r := range rows {
					cells = append(cells, []string{r.Area, r.Name, r.Title, r.Entry, r.Exit, r.Comment})
				}
				formatTable(headers, cells)
				return
			}
			if flagFmt == "quiet" {
				for _, r := range rows {
					fmt.Println(r.UID)
				}
				return
			}
			output(rows, "")
		},
	}
	recordFilterFlags(cmd, &filter)
	return cmd
}

func recordEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <uid> <entry|exit> <YYYY-MM-DDTHH:MM>",
		Short: "Rewrite one timestamp of a record",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Records.EditField(context.Background(), args[0], args[1], args[2]); err != nil {
				fatal("edit record", err)
			}
			fmt.Println("updated")
		},
	}
}

func recordCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <uid> [text]",
		Short: "Set or clear a record's comment",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			comment := ""
			if len(args) == 2 {
				comment = args[1]
			}
			if err := apiClient.Records.Annotate(context.Background(), args[0], comment); err != nil {
				fatal("set comment", err)
			}
			fmt.Println("updated")
		},
	}
}

func recordDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <uid>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !confirm(fmt.Sprintf("Delete record %s?", args[0])) {
				return
			}
			if err := apiClient.Records.Delete(context.Background(), args[0]); err != nil {
				fatal("delete record", err)
			}
			fmt.Println("deleted")
		},
	}
}

func recordExportCmd() *cobra.Command {
	var filter client.RecordFilter
	var format, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download visible records as csv or xlsx",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			var (
				data []byte
				err  error
			)
			switch format {
			case "csv":
				data, err = apiClient.Records.ExportCSV(ctx, &filter)
			case "xlsx":
				data, err = apiClient.Records.ExportXLSX(ctx, &filter)
			default:
				fmt.Fprintf(os.Stderr, "Error: --as must be csv or xlsx\n")
				os.Exit(1)
			}
			if err != nil {
				fatal("export records", err)
			}
			if outPath == "" {
				outPath = "attendance." + format
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				fatal("write export file", err)
			}
			fmt.Println(outPath)
		},
	}
	recordFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&format, "as", "csv", "Export format: csv|xlsx")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file path")
	return cmd
}
