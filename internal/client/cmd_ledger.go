// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const dateLayout = "2006-01-02"

// transactionFlags are shared by tx add and tx update.
type transactionFlags struct {
	txType      string
	date        string
	category    string
	mood        string
	tags        []string
	amount      float64
	description string
	notes       string
}

func (f *transactionFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.txType, "type", string(models.TransactionExpense), "income or expense")
	fs.StringVar(&f.date, "date", "", "Date as YYYY-MM-DD (default today)")
	fs.StringVar(&f.category, "category", "", "Category id")
	fs.StringVar(&f.mood, "mood", "", "Mood")
	fs.StringSliceVar(&f.tags, "tag", nil, "Tag, repeatable")
	fs.Float64Var(&f.amount, "amount", 0, "Amount in the ledger currency")
	fs.StringVar(&f.description, "description", "", "Description (encrypted)")
	fs.StringVar(&f.notes, "notes", "", "Notes (encrypted)")
}

func (f *transactionFlags) transaction(now time.Time) (models.Transaction, error) {
	date := now.UTC().Truncate(24 * time.Hour)
	if f.date != "" {
		parsed, err := parseDate(f.date)
		if err != nil {
			return models.Transaction{}, err
		}
		date = parsed
	}

	return models.Transaction{
		Type:       models.TransactionType(f.txType),
		Date:       date,
		CategoryID: f.category,
		Mood:       f.mood,
		Tags:       f.tags,
		TransactionSecrets: models.TransactionSecrets{
			Amount:      f.amount,
			Description: f.description,
			Notes:       f.notes,
		},
	}, nil
}

// patch copies only the flags the user set.
func (f *transactionFlags) patch(fs *pflag.FlagSet) (models.TransactionPatch, error) {
	var p models.TransactionPatch

	if fs.Changed("type") {
		t := models.TransactionType(f.txType)
		p.Type = &t
	}
	if fs.Changed("date") {
		d, err := parseDate(f.date)
		if err != nil {
			return p, err
		}
		p.Date = &d
	}
	if fs.Changed("category") {
		p.CategoryID = &f.category
	}
	if fs.Changed("mood") {
		p.Mood = &f.mood
	}
	if fs.Changed("tag") {
		p.Tags = f.tags
	}
	if fs.Changed("amount") {
		p.Amount = &f.amount
	}
	if fs.Changed("description") {
		p.Description = &f.description
	}
	if fs.Changed("notes") {
		p.Notes = &f.notes
	}
	return p, nil
}

func (a *App) newTransactionCommand() *cobra.Command {
	tx := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Add, list, update and delete transactions",
	}

	var addFlags transactionFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Example: `  ledger tx add --amount 19.99 --description groceries --tag weekly
  ledger tx add --type income --amount 2500 --date 2026-05-01`,
		Args:        cobra.NoArgs,
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("amount") {
				return usageErrorf("--amount is required")
			}
			t, err := addFlags.transaction(time.Now())
			if err != nil {
				return err
			}

			created, err := a.services.LedgerService.AddTransaction(cmd.Context(), t)
			if err != nil {
				return err
			}
			a.success("Added transaction %s", created.ID)
			return nil
		},
	}
	addFlags.bind(add.Flags())

	list := &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List transactions",
		Args:        cobra.NoArgs,
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, err := a.services.LedgerService.ListTransactions(cmd.Context())
			if err != nil {
				return err
			}
			if len(transactions) == 0 {
				a.hint("No transactions yet")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION\tTAGS")
			for _, t := range transactions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date.Format(dateLayout), t.Type, formatAmount(t.Amount),
					t.CategoryID, t.Description, strings.Join(t.Tags, ","))
			}
			return w.Flush()
		},
	}

	var updateFlags transactionFlags
	update := &cobra.Command{
		Use:         "update <id>",
		Short:       "Change the given fields of a transaction",
		Example:     `  ledger tx update 6f1c... --amount 21.50 --notes "split with Sam"`,
		Args:        exactArgs(1),
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := updateFlags.patch(cmd.Flags())
			if err != nil {
				return err
			}

			updated, err := a.services.LedgerService.UpdateTransaction(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			a.success("Updated transaction %s", updated.ID)
			return nil
		},
	}
	updateFlags.bind(update.Flags())

	del := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.LedgerService.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.success("Deleted transaction %s", args[0])
			return nil
		},
	}

	tx.AddCommand(add, list, update, del)
	return tx
}

// goalFlags are shared by goal add and goal update.
type goalFlags struct {
	name        string
	deadline    string
	target      float64
	current     float64
	description string
}

func (f *goalFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Goal name")
	fs.StringVar(&f.deadline, "deadline", "", "Deadline as YYYY-MM-DD")
	fs.Float64Var(&f.target, "target", 0, "Target amount (encrypted)")
	fs.Float64Var(&f.current, "current", 0, "Amount saved so far (encrypted)")
	fs.StringVar(&f.description, "description", "", "Description (encrypted)")
}

func (f *goalFlags) goal() (models.Goal, error) {
	g := models.Goal{
		Name: f.name,
		GoalSecrets: models.GoalSecrets{
			TargetAmount:  f.target,
			CurrentAmount: f.current,
			Description:   f.description,
		},
	}
	if f.deadline != "" {
		d, err := parseDate(f.deadline)
		if err != nil {
			return g, err
		}
		g.Deadline = &d
	}
	return g, nil
}

func (f *goalFlags) patch(fs *pflag.FlagSet) (models.GoalPatch, error) {
	var p models.GoalPatch

	if fs.Changed("name") {
		p.Name = &f.name
	}
	if fs.Changed("deadline") {
		d, err := parseDate(f.deadline)
		if err != nil {
			return p, err
		}
		p.Deadline = &d
	}
	if fs.Changed("target") {
		p.TargetAmount = &f.target
	}
	if fs.Changed("current") {
		p.CurrentAmount = &f.current
	}
	if fs.Changed("description") {
		p.Description = &f.description
	}
	return p, nil
}

func (a *App) newGoalCommand() *cobra.Command {
	goal := &cobra.Command{
		Use:   "goal",
		Short: "Add, list, update and delete savings goals",
	}

	var addFlags goalFlags
	add := &cobra.Command{
		Use:         "add",
		Short:       "Add a savings goal",
		Example:     `  ledger goal add --name "new bike" --target 1200 --deadline 2027-04-01`,
		Args:        cobra.NoArgs,
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := addFlags.goal()
			if err != nil {
				return err
			}

			created, err := a.services.LedgerService.AddGoal(cmd.Context(), g)
			if err != nil {
				return err
			}
			a.success("Added goal %s", created.ID)
			return nil
		},
	}
	addFlags.bind(add.Flags())

	list := &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List savings goals",
		Args:        cobra.NoArgs,
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := a.services.LedgerService.ListGoals(cmd.Context())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				a.hint("No goals yet")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSAVED\tTARGET\tDEADLINE")
			for _, g := range goals {
				deadline := "-"
				if g.Deadline != nil {
					deadline = g.Deadline.Format(dateLayout)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					g.ID, g.Name, formatAmount(g.CurrentAmount), formatAmount(g.TargetAmount), deadline)
			}
			return w.Flush()
		},
	}

	var updateFlags goalFlags
	update := &cobra.Command{
		Use:         "update <id>",
		Short:       "Change the given fields of a goal",
		Example:     `  ledger goal update 9a2e... --current 450`,
		Args:        exactArgs(1),
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := updateFlags.patch(cmd.Flags())
			if err != nil {
				return err
			}

			updated, err := a.services.LedgerService.UpdateGoal(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			a.success("Updated goal %s", updated.ID)
			return nil
		},
	}
	updateFlags.bind(update.Flags())

	del := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a savings goal",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.LedgerService.DeleteGoal(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.success("Deleted goal %s", args[0])
			return nil
		},
	}

	goal.AddCommand(add, list, update, del)
	return goal
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, usageErrorf("date %q is not YYYY-MM-DD", s)
	}
	return d, nil
}

func formatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// exactArgs is cobra.ExactArgs with an error that reads as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s expects %d argument(s), got %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}
