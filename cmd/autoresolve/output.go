package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/autoresolve/internal/models"
	"github.com/napolitain/autoresolve/internal/solver/batch"
)

func describeBattles(opts batch.Options) string {
	switch {
	case opts.Template != nil:
		return fmt.Sprintf("%s battles", opts.Template.Scenario.Name())
	case opts.Kind != nil:
		return fmt.Sprintf("random %s battles", *opts.Kind)
	}
	return "random battles"
}

func describeWorkers(n int) string {
	if n <= 1 {
		return "one thread"
	}
	return fmt.Sprintf("%d workers", n)
}

func printTally(t models.Tally) {
	fmt.Println("📊 Outcomes:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Outcome", "Count", "Share"}),
	)

	total := t.Total()
	for _, o := range models.AllOutcomes() {
		n := t.Count(o)
		share := 0.0
		if total > 0 {
			share = 100 * float64(n) / float64(total)
		}
		table.Append([]string{
			o.String(),
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	table.Render()

	victories, defeats := 0, 0
	for _, o := range models.AllOutcomes() {
		switch {
		case o.IsVictory():
			victories += t.Count(o)
		case o.IsDefeat():
			defeats += t.Count(o)
		}
	}
	fmt.Printf("\n   Attacker victories: %d, draws: %d, defeats: %d\n", victories, t.Count(models.Draw), defeats)
}

func printBattles(results []*models.BattleResult) {
	fmt.Println("\n⚔️  Battles:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Type", "Outcome", "Score", "Att Lost", "Def Lost", "Att General", "Def General", "Found"}),
	)

	for i, r := range results {
		att, def := r.AttackerReport(), r.DefenderReport()
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			r.Scenario().Name(),
			r.Outcome().String(),
			fmt.Sprintf("%.1f", r.Score().Score),
			fmt.Sprintf("%d (%d units)", att.SoldiersLost, att.UnitsLost),
			fmt.Sprintf("%d (%d units)", def.SoldiersLost, def.UnitsLost),
			att.General.String(),
			def.General.String(),
			describeFinds(r),
		})
	}
	table.Render()
}

func describeFinds(r *models.BattleResult) string {
	found := ""
	if e := r.AttackerReward(); e != nil {
		found = "att: " + e.Name
	}
	if e := r.DefenderReward(); e != nil {
		if found != "" {
			found += ", "
		}
		found += "def: " + e.Name
	}
	if s := r.Spoils(); s != nil {
		if found != "" {
			found += ", "
		}
		found += fmt.Sprintf("%d coins", s.Coins)
		if s.Item != nil {
			found += " + " + s.Item.Name
		}
	}
	if found == "" {
		return color.New(color.Faint).Sprint("-")
	}
	return found
}
