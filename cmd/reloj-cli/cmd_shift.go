package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zer0x25/reloj-control/client"
)

func newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage the shift log",
	}
	cmd.AddCommand(shiftStatusCmd())
	cmd.AddCommand(shiftStartCmd())
	cmd.AddCommand(shiftCloseCmd())
	cmd.AddCommand(shiftNoteCmd())
	cmd.AddCommand(shiftSupplierCmd())
	cmd.AddCommand(shiftArchiveCmd())
	cmd.AddCommand(shiftNextFolioCmd())
	return cmd
}

func shiftStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the open shift",
		Run: func(cmd *cobra.Command, args []string) {
			shift, err := apiClient.Shifts.Open(context.Background())
			if client.IsNotFound(err) {
				fmt.Println("no open shift")
				return
			}
			if err != nil {
				fatal("get open shift", err)
			}
			output(shift, shift.Folio)
		},
	}
}

func shiftStartCmd() *cobra.Command {
	var shiftType string
	cmd := &cobra.Command{
		Use:   "start <responsible>",
		Short: "Open a new shift",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			shift, err := apiClient.Shifts.Start(context.Background(), &client.StartShiftRequest{
				Type:        shiftType,
				Responsible: args[0],
			})
			if err != nil {
				fatal("start shift", err)
			}
			output(shift, shift.Folio)
		},
	}
	cmd.Flags().StringVar(&shiftType, "type", "day", "Shift type: day|night")
	return cmd
}

func shiftCloseCmd() *cobra.Command {
	var remarks string
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close the open shift and archive it",
		Run: func(cmd *cobra.Command, args []string) {
			if !confirm("Close the open shift?") {
				return
			}
			shift, err := apiClient.Shifts.Close(context.Background(), remarks)
			if err != nil {
				fatal("close shift", err)
			}
			output(shift, shift.Folio)
		},
	}
	cmd.Flags().StringVar(&remarks, "remarks", "", "Closing remarks")
	return cmd
}

func shiftNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <text>",
		Short: "Log an incident note on the open shift",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			note, err := apiClient.Shifts.AddNote(context.Background(), args[0])
			if err != nil {
				fatal("add note", err)
			}
			output(note, note.Text)
		},
	}
}

func shiftSupplierCmd() *cobra.Command {
	var driver, company, reason string
	var companions int
	cmd := &cobra.Command{
		Use:   "supplier <plate>",
		Short: "Log a supplier visit on the open shift",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			visit, err := apiClient.Shifts.AddSupplierVisit(context.Background(), &client.SupplierVisitRequest{
				Plate:      args[0],
				Driver:     driver,
				Companions: companions,
				Company:    company,
				Reason:     reason,
			})
			if err != nil {
				fatal("add supplier visit", err)
			}
			output(visit, visit.Plate)
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "Driver name")
	cmd.Flags().IntVar(&companions, "companions", 0, "Number of companions")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&reason, "reason", "", "Visit reason")
	return cmd
}

func shiftArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "List closed shifts, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			shifts, err := apiClient.Shifts.Archive(context.Background())
			if err != nil {
				fatal("list archive", err)
			}
			if flagFmt == "table" {
				headers := []string{"FOLIO", "DATE", "TYPE", "RESPONSIBLE", "NOTES", "SUPPLIERS"}
				var rows [][]string
				for _, s := range shifts {
					rows = append(rows, []string{
						s.Folio, s.Date, s.Type, s.Responsible,
						fmt.Sprintf("%d", len(s.Notes)),
						fmt.Sprintf("%d", len(s.SupplierVisits)),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, s := range shifts {
					fmt.Println(s.Folio)
				}
				return
			}
			output(shifts, "")
		},
	}
}

func shiftNextFolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-folio",
		Short: "Show the folio the next shift will receive",
		Run: func(cmd *cobra.Command, args []string) {
			folio, err := apiClient.Shifts.NextFolio(context.Background())
			if err != nil {
				fatal("get next folio", err)
			}
			fmt.Println(folio)
		},
	}
}
