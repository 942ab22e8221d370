package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newRunsCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored seeding runs",
	}
	cmd.AddCommand(newRunsListCmd(s), newRunsShowCmd(s), newRunsDeleteCmd(s))

	return cmd
}

func newRunsListCmd(s *settings) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := s.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "no runs stored")
				return nil
			}
			fmt.Fprintf(w, "%-6s %-20s %-10s %-9s %s\n", "id", "created", "seed", "districts", "source")
			for _, r := range runs {
				fmt.Fprintf(w, "%-6d %-20s %-10d %-9d %s\n",
					r.ID, r.CreatedAt.UTC().Format(time.DateTime), r.RandSeed, r.Districts, r.Source)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 = all)")

	return cmd
}

func newRunsShowCmd(s *settings) *cobra.Command {
	var units bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the seats and, optionally, the unit assignment of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("run id %q: %w", args[0], err)
			}
			db, err := s.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			r, err := db.GetRun(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "run %d  source=%s  seed=%d  sizes=%v  target=%g  attempts=%d\n",
				r.ID, r.Source, r.RandSeed, r.Sizes, r.SeatTarget, r.Attempts)
			districts := make([]int, 0, len(r.Seats))
			for d := range r.Seats {
				districts = append(districts, d)
			}
			sort.Ints(districts)
			fmt.Fprintf(w, "  %-8s %14s %6s\n", "district", "population", "seats")
			for _, d := range districts {
				fmt.Fprintf(w, "  %-8d %14.0f %6d\n", d, r.Population[d], r.Seats[d])
			}

			if units {
				ids := make([]string, 0, len(r.Assignment))
				for u := range r.Assignment {
					ids = append(ids, u)
				}
				sort.Strings(ids)
				for _, u := range ids {
					fmt.Fprintf(w, "%s\t%d\n", u, r.Assignment[u])
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&units, "units", false, "Also print every unit and its district")

	return cmd
}

func newRunsDeleteCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored run with its seats and assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("run id %q: %w", args[0], err)
			}
			db, err := s.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.DeleteRun(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted run %d\n", id)

			return nil
		},
	}
}
