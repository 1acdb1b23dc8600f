package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zer0x25/reloj-control/client"
)

func newEmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the employee roster",
	}
	cmd.AddCommand(employeeListCmd())
	cmd.AddCommand(employeeGetCmd())
	cmd.AddCommand(employeeCreateCmd())
	cmd.AddCommand(employeeUpdateCmd())
	cmd.AddCommand(employeeDeleteCmd())
	cmd.AddCommand(employeeNextIDCmd())
	return cmd
}

func employeeListCmd() *cobra.Command {
	var nameQuery string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Run: func(cmd *cobra.Command, args []string) {
			employees, err := apiClient.Employees.List(context.Background(), nameQuery)
			if err != nil {
				fatal("list employees", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "TITLE", "AREA"}
				var rows [][]string
				for _, e := range employees {
					rows = append(rows, []string{e.ID, e.Name, e.Title, e.Area})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, e := range employees {
					fmt.Println(e.ID)
				}
				return
			}
			output(employees, "")
		},
	}
	cmd.Flags().StringVar(&nameQuery, "name", "", "Filter by name substring")
	return cmd
}

func employeeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an employee by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			emp, err := apiClient.Employees.Get(context.Background(), args[0])
			if err != nil {
				fatal("get employee", err)
			}
			output(emp, emp.ID)
		},
	}
}

func employeeCreateCmd() *cobra.Command {
	var id, title, area string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Add an employee (omit --id to auto-assign)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if id == "" {
				next, err := apiClient.Employees.NextID(ctx)
				if err != nil {
					fatal("get next id", err)
				}
				id = next
			}
			emp, err := apiClient.Employees.Create(ctx, &client.EmployeeRequest{
				ID:    id,
				Name:  args[0],
				Title: title,
				Area:  area,
			})
			if err != nil {
				fatal("create employee", err)
			}
			output(emp, emp.ID)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Employee ID")
	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&area, "area", "", "Work area")
	return cmd
}

func employeeUpdateCmd() *cobra.Command {
	var name, title, area string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			current, err := apiClient.Employees.Get(ctx, args[0])
			if err != nil {
				fatal("get employee", err)
			}
			req := &client.EmployeeRequest{
				Name:  current.Name,
				Title: current.Title,
				Area:  current.Area,
			}
			if name != "" {
				req.Name = name
			}
			if title != "" {
				req.Title = title
			}
			if area != "" {
				req.Area = area
			}
			emp, err := apiClient.Employees.Update(ctx, args[0], req)
			if err != nil {
				fatal("update employee", err)
			}
			output(emp, emp.ID)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&area, "area", "", "Work area")
	return cmd
}

func employeeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee and their attendance records",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !confirm(fmt.Sprintf("Delete employee %s and all their records?", args[0])) {
				return
			}
			if err := apiClient.Employees.Delete(context.Background(), args[0]); err != nil {
				fatal("delete employee", err)
			}
			fmt.Println("deleted")
		},
	}
}

func employeeNextIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Show the next free sequential employee ID",
		Run: func(cmd *cobra.Command, args []string) {
			id, err := apiClient.Employees.NextID(context.Background())
			if err != nil {
				fatal("get next id", err)
			}
			fmt.Println(id)
		},
	}
}
