package cli

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List your habits."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := validation.HabitName(c.Name); err != nil {
		return err
	}

	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	id, err := ctx.Store.CreateHabit(user.ID, c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit %q (id %d)\n", c.Name, id)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
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
		marker := "[ ]"
		if st.Completed {
			marker = "[x]"
		} else if st.Recorded {
			marker = "[.]"
		}
		fmt.Printf("%4d %s %s\n", st.ID, marker, st.Name)
	}

	return nil
}

type HabitRenameCmd struct {
	ID   int64  `arg:"" help:"Habit id (see 'tally habit list')."`
	Name string `arg:"" help:"New habit name."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	if err := validation.HabitName(c.Name); err != nil {
		return err
	}

	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	if _, err := ownedHabit(ctx, user.ID, c.ID); err != nil {
		return err
	}

	if err := ctx.Store.RenameHabit(c.ID, c.Name); err != nil {
		return err
	}

	fmt.Printf("Renamed habit %d to %q\n", c.ID, c.Name)
	return nil
}

type HabitDeleteCmd struct {
	ID int64 `arg:"" help:"Habit id to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	habit, err := ownedHabit(ctx, user.ID, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its entries\n", habit.Name)
	return nil
}

// ownedHabit fetches a habit and rejects ids belonging to other users.
func ownedHabit(ctx *Context, userID, habitID int64) (models.Habit, error) {
	habit, err := ctx.Store.GetHabit(habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if habit.UserID != userID {
		return models.Habit{}, fmt.Errorf("habit %d: %w", habitID, storage.ErrNotFound)
	}
	return habit, nil
}
