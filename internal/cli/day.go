package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/tui"
	"github.com/tallyhq/tally/internal/validation"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	today := time.Now().Format(constants.DateFormat)
	statuses, err := ctx.Store.ListHabitsForDay(user.ID, today)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		fmt.Println("No habits yet. Add one with 'tally habit add'.")
		return nil
	}

	for _, st := range statuses {
		if st.Recorded {
			fmt.Printf("Habits already submitted for %s:\n\n", today)
			printDay(statuses)
			return nil
		}
	}

	habits := make([]models.Habit, len(statuses))
	for i, st := range statuses {
		habits[i] = st.Habit
	}

	checks, submitted, err := tui.RunToday(today, habits)
	if err != nil {
		return err
	}
	if !submitted {
		fmt.Println("Nothing submitted.")
		return nil
	}

	if err := ctx.Store.SubmitDay(user.ID, today, checks); err != nil {
		if errors.Is(err, storage.ErrAlreadySubmitted) {
			return fmt.Errorf("habits were already submitted for %s", today)
		}
		return err
	}

	done := 0
	for _, check := range checks {
		if check.Completed {
			done++
		}
	}
	fmt.Printf("Submitted %d habit(s) for %s (%d done)\n", len(checks), today, done)
	return nil
}

type SubmitCmd struct {
	Date string `help:"Date to submit in YYYY-MM-DD format (default: today)." default:""`
	Done string `help:"Comma-separated ids of habits completed; the rest are recorded as not done." default:""`
}

func (c *SubmitCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	} else if err := validation.Date(date); err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits(user.ID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		return fmt.Errorf("no habits to submit, add one with 'tally habit add'")
	}

	doneIDs, err := parseIDList(c.Done)
	if err != nil {
		return err
	}

	known := make(map[int64]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}
	for id := range doneIDs {
		if !known[id] {
			return fmt.Errorf("habit %d not found", id)
		}
	}

	checks := make([]models.HabitCheck, len(habits))
	for i, h := range habits {
		checks[i] = models.HabitCheck{HabitID: h.ID, Completed: doneIDs[h.ID]}
	}

	if err := ctx.Store.SubmitDay(user.ID, date, checks); err != nil {
		if errors.Is(err, storage.ErrAlreadySubmitted) {
			return fmt.Errorf("habits were already submitted for %s", date)
		}
		return err
	}

	fmt.Printf("Submitted %d habit(s) for %s (%d done)\n", len(checks), date, len(doneIDs))
	return nil
}

func printDay(statuses []models.HabitStatus) {
	for _, st := range statuses {
		marker := "[ ]"
		if st.Completed {
			marker = "[x]"
		}
		fmt.Printf("%s %s\n", marker, st.Name)
	}
}

func parseIDList(raw string) (map[int64]bool, error) {
	ids := make(map[int64]bool)
	if strings.TrimSpace(raw) == "" {
		return ids, nil
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid habit id %q", part)
		}
		ids[id] = true
	}

	return ids, nil
}
