package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
	"github.com/vovakirdan/tour-of-heroes/internal/views"
)

// searchDebounce is short because the whole term arrives at once.
const searchDebounce = time.Millisecond

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all heroes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := views.NewHeroesView(heroSvc)
		view.Load(cmd.Context())
		renderHeroes(cmd.OutOrStdout(), view.Heroes())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one hero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := views.NewDetailView(heroSvc, msgs, detailHistory(args[0]))
		view.Activate(cmd.Context(), views.Params{"id": args[0]})

		hero := view.Hero()
		if hero == nil {
			return fmt.Errorf("hero %s not found", args[0])
		}
		renderHero(cmd.OutOrStdout(), *hero)
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a hero and save it",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := core.NormalizeName(strings.Join(args[1:], " "))
		if err := core.ValidateName(name); err != nil {
			return err
		}

		history := detailHistory(args[0])
		view := views.NewDetailView(heroSvc, msgs, history)
		view.Activate(cmd.Context(), views.Params{"id": args[0]})
		if !view.SetName(name) {
			return fmt.Errorf("hero %s not found", args[0])
		}

		view.Save(cmd.Context())
		logger.Debug().Str("location", history.Current()).Msg("returned from detail")

		hero := view.Hero()
		renderHero(cmd.OutOrStdout(), *hero)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a hero",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		if err := core.ValidateName(name); err != nil {
			return err
		}

		view := views.NewHeroesView(heroSvc)
		if !view.Add(cmd.Context(), name) {
			return fmt.Errorf("hero %q was not added", core.NormalizeName(name))
		}
		renderHeroes(cmd.OutOrStdout(), view.Heroes())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a hero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid hero id %q", args[0])
		}

		view := views.NewHeroesView(heroSvc)
		view.Load(cmd.Context())
		view.Delete(cmd.Context(), core.Hero{ID: id})
		renderHeroes(cmd.OutOrStdout(), view.Heroes())

		// The process must not exit before the delete reaches the server.
		view.Wait()
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search heroes by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		view := views.NewSearchView(heroSvc, searchDebounce)
		done := make(chan struct{})
		go func() {
			view.Run(ctx)
			close(done)
		}()
		defer func() {
			cancel()
			<-done
		}()

		view.Search(strings.Join(args, " "))
		select {
		case heroes := <-view.Updates():
			renderHeroes(cmd.OutOrStdout(), heroes)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the top heroes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := views.NewDashboardView(heroSvc)
		view.Load(cmd.Context())
		renderHeroes(cmd.OutOrStdout(), view.TopHeroes())
		return nil
	},
}

func detailHistory(id string) *views.History {
	history := views.NewHistory("/heroes")
	history.Push("/detail/" + id)
	return history
}
