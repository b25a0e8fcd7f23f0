package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/autoresolve/internal/loader"
	"github.com/napolitain/autoresolve/internal/models"
)

var (
	rosterFile   string
	treasureFile string
	faction      string
	showTreasure bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Browse the unit roster and treasure catalog",
		Long: `Lists the sub-units each faction can field and the equipment
generals can carry into battle.`,
		Run: runRoster,
	}

	rootCmd.Flags().StringVar(&rosterFile, "unit", "", "Roster file (CSV), built-in roster if empty")
	rootCmd.Flags().StringVar(&treasureFile, "treasure", "", "Treasure file (CSV), built-in catalog if empty")
	rootCmd.Flags().StringVar(&faction, "faction", "", "Only list this faction")
	rootCmd.Flags().BoolVarP(&showTreasure, "treasure-only", "t", false, "Only list the treasure catalog")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoster(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Autoresolve              │")
	titleColor.Println("│  Roster & Treasure        │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()

	roster := models.DefaultRoster()
	if rosterFile != "" {
		r, err := loader.LoadRoster(rosterFile)
		if err != nil {
			color.Red("Error loading roster: %v", err)
			os.Exit(1)
		}
		roster = r
	}

	treasure := models.DefaultTreasure()
	if treasureFile != "" {
		t, err := loader.LoadTreasure(treasureFile)
		if err != nil {
			color.Red("Error loading treasure: %v", err)
			os.Exit(1)
		}
		treasure = t
	}

	if !showTreasure {
		factions := models.AllFactions()
		if faction != "" {
			f, err := models.ParseFaction(faction)
			if err != nil {
				color.Red("Error: %v", err)
				os.Exit(1)
			}
			factions = []models.Faction{f}
		}
		for _, f := range factions {
			printFaction(f, roster.UnitsForFaction(f))
		}
	}

	printTreasure(treasure)
}

func printFaction(f models.Faction, units []*models.Unit) {
	color.New(color.FgYellow).Printf("🛡️  %s (%d units)\n", f, len(units))

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Name", "Type", "Bonus", "Size"}),
	)

	for _, u := range units {
		row := []string{
			fmt.Sprintf("%d", u.ID),
			u.Name,
			u.Type.String(),
			fmt.Sprintf("%d", u.Bonus),
			fmt.Sprintf("%d", u.Size),
		}
		table.Append(row)
	}
	table.Render()
	fmt.Println()
}

func printTreasure(t *models.Treasure) {
	color.New(color.FgYellow).Printf("💰 Treasure (%d items)\n", t.Len())

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Slot", "Name", "Effect", "Bonus", "Coins", "Range", "Dragon"}),
	)

	for _, et := range models.AllEquipmentTypes() {
		for _, e := range t.ItemsOfType(et) {
			dragon := ""
			if e.Dragon {
				dragon = "🐉"
			}
			row := []string{
				fmt.Sprintf("%d", e.ID),
				e.Type.String(),
				e.Name,
				e.Effect,
				fmt.Sprintf("%d", e.Bonus),
				fmt.Sprintf("%d", e.CoinValue),
				fmt.Sprintf("%d", e.Range),
				dragon,
			}
			table.Append(row)
		}
	}
	table.Render()
}
