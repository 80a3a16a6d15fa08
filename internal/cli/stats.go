package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tallyhq/tally/internal/stats"
	"github.com/tallyhq/tally/internal/validation"
)

var (
	statsHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	statsMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statsLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statsNameStyle   = lipgloss.NewStyle().Width(24)
)

type StatsCmd struct {
	Month int `help:"Limit to one calendar month (1-12). 0 shows the whole year." default:"0"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := validation.Month(c.Month); err != nil {
		return err
	}

	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	since := stats.YearStart(time.Now())
	records, err := ctx.Store.EntryRecordsSince(user.ID, since)
	if err != nil {
		return err
	}

	results := stats.Aggregate(records, time.Month(c.Month))
	if len(results) == 0 {
		fmt.Println("No entries in the selected window.")
		return nil
	}

	window := "this year"
	if c.Month != 0 {
		window = time.Month(c.Month).String()
	}
	fmt.Printf("Completion rates (%s):\n\n", window)

	for _, st := range results {
		rate := fmt.Sprintf("%3d%%", st.Rate)
		switch stats.Bucket(st.Rate) {
		case stats.LevelHigh:
			rate = statsHighStyle.Render(rate)
		case stats.LevelMedium:
			rate = statsMediumStyle.Render(rate)
		default:
			rate = statsLowStyle.Render(rate)
		}
		fmt.Printf("%s %s\n", statsNameStyle.Render(st.Name), rate)
	}

	return nil
}
