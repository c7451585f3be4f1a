package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/geo"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's attendance state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "keep running with a live clock")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := setup(ctx)
	if err != nil {
		return err
	}

	sess, err := app.attendanceSession(ctx)
	if err != nil {
		return friendlyError(err)
	}

	printState := func() {
		today := sess.Today()
		switch sess.State() {
		case domain.NotStarted:
			fmt.Println("Not checked in today.")
		case domain.CheckedIn:
			fmt.Printf("Checked in at %s.\n", today.CheckInTime.Local().Format("15:04:05"))
		case domain.CheckedOut:
			fmt.Printf("Day complete: in %s, out %s.\n",
				today.CheckInTime.Local().Format("15:04:05"),
				today.CheckOutTime.Local().Format("15:04:05"))
		}
		if today != nil && today.Status != "" {
			fmt.Printf("Status: %s\n", today.Status)
		}
	}

	printState()
	app.printOfficeDistance(ctx)

	if !statusWatch {
		return nil
	}

	// Live clock, one tick per second. State is re-fetched once a minute;
	// the display between fetches is derived, not trusted network state.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	tick := 0
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case now := <-ticker.C:
			tick++
			if tick%60 == 0 {
				if err := sess.Refresh(ctx); err == nil {
					fmt.Println()
					printState()
				}
			}
			fmt.Printf("\r%s  [%s]", now.Local().Format("15:04:05"), sess.State())
		}
	}
}

// printOfficeDistance shows how far the device is from the configured
// office, when both positions are known.
func (a *app) printOfficeDistance(ctx context.Context) {
	office := geo.Point{
		Latitude:  a.cfg.Location.OfficeLatitude,
		Longitude: a.cfg.Location.OfficeLongitude,
	}
	if office.Latitude == 0 && office.Longitude == 0 {
		return
	}
	here, err := a.locator.Locate(ctx)
	if err != nil {
		return
	}
	fmt.Printf("Distance to office: %.0f m\n", geo.Distance(here, office))
}
