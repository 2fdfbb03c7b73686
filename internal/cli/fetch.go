package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spacedata/internal/ui"
)

const dateLayout = "2006-01-02"

// FetchNEO prompts for a date range and renders the near-earth object feed.
// Fetch failures are reported and control returns to the menu.
func (a *App) FetchNEO(ctx context.Context) {
	today := time.Now().Format(dateLayout)

	startDate, err := getSimpleText(a.reader, fmt.Sprintf("Start date YYYY-MM-DD (empty for %s)", today), a.out)
	if err != nil {
		return
	}
	if startDate == "" {
		startDate = today
	}
	endDate, err := getSimpleText(a.reader, fmt.Sprintf("End date YYYY-MM-DD (empty for %s)", startDate), a.out)
	if err != nil {
		return
	}
	if endDate == "" {
		endDate = startDate
	}

	objects, err := a.gateway.FetchNEOFeed(ctx, startDate, endDate)
	if err != nil {
		a.log.Error(ctx, "neo fetch failed", "error", err)
		fmt.Fprintln(a.out, ui.ErrorTextStyle.Render(fmt.Sprintf("Error fetching NEO data: %v", err)))
		return
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.TitleStyle.Render("Near-Earth Objects (NEO) Data:"))
	fmt.Fprintln(a.out, ui.NEOTable(objects))
}

// FetchSSD prompts for an object designation and renders the small-body
// database lookup.
func (a *App) FetchSSD(ctx context.Context) {
	designation, err := getSimpleText(a.reader, `Object designation (empty for "Ceres")`, a.out)
	if err != nil {
		return
	}
	if designation == "" {
		designation = "Ceres"
	}

	body, err := a.gateway.FetchSmallBody(ctx, designation)
	if err != nil {
		a.log.Error(ctx, "ssd fetch failed", "error", err)
		fmt.Fprintln(a.out, ui.ErrorTextStyle.Render(fmt.Sprintf("Error fetching SSD data: %v", err)))
		return
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.TitleStyle.Render(fmt.Sprintf("Solar System Object Data (%s):", designation)))
	fmt.Fprintln(a.out, ui.SmallBodyTable(body))
}
