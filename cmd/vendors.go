package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/model"
)

var (
	flagVendorContact string
	flagVendorEmail   string
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Manage the vendor roster",
	RunE:  runVendorsList,
}

var vendorsAddCmd = &cobra.Command{
	Use:   "add <name> <service>",
	Short: "Add a vendor",
	Args:  cobra.ExactArgs(2),
	RunE:  runVendorsAdd,
}

func init() {
	vendorsAddCmd.Flags().StringVar(&flagVendorContact, "contact", "", "Contact number")
	vendorsAddCmd.Flags().StringVar(&flagVendorEmail, "email", "", "Email address")

	vendorsCmd.AddCommand(vendorsAddCmd)
	rootCmd.AddCommand(vendorsCmd)
}

func runVendorsList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	vendors, err := s.store.Vendors()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(vendors) == 0 {
		fmt.Println("  No vendors on record.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, []string{
			strconv.Itoa(v.ID), v.Name, v.Service, v.Contact, v.Email,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Vendors",
		Headers: []string{"ID", "Name", "Service", "Contact", "Email"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runVendorsAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.AddVendor(model.Vendor{
		Name:    args[0],
		Service: args[1],
		Contact: flagVendorContact,
		Email:   flagVendorEmail,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Vendor #%d %q added\n", id, args[0])
	return nil
}
