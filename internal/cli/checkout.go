package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkoutNotes string

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Check out for today",
	Args:  cobra.NoArgs,
	RunE:  runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutNotes, "notes", "", "optional notes")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := setup(ctx)
	if err != nil {
		return err
	}

	sess, err := app.attendanceSession(ctx)
	if err != nil {
		return friendlyError(err)
	}

	entry, err := sess.CheckOut(ctx, checkoutNotes)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Checked out at %s", entry.CheckOutTime.Local().Format("15:04:05"))
	if entry.WorkHours != nil {
		fmt.Printf(", %.1f hours worked", *entry.WorkHours)
	}
	fmt.Println()
	return nil
}
