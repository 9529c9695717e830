package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mind-engage/swiftfood/internal/catalog"
)

var levelID int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		if levelID != 0 {
			return printLevelByID(cmd.OutOrStdout(), cat, levelID)
		}
		printLevels(cmd.OutOrStdout(), cat)
		return nil
	},
}

func init() {
	levelsCmd.Flags().IntVar(&levelID, "id", 0, "Print only the level with this id")
}

func printLevels(w io.Writer, cat *catalog.Catalog) {
	for _, lv := range cat.List() {
		printLevel(w, lv)
	}
}

func printLevelByID(w io.Writer, cat *catalog.Catalog, id int) error {
	lv, ok := cat.Get(id)
	if !ok {
		return fmt.Errorf("level %d not in catalog", id)
	}
	printLevel(w, lv)
	return nil
}

func printLevel(w io.Writer, lv catalog.Level) {
	lock := "locked"
	if lv.Unlocked {
		lock = "unlocked"
	}
	fmt.Fprintf(w, "%d. %s %s (%s, requires level %d)\n", lv.ID, lv.Icon, lv.Title, lock, lv.RequiredLevel)
	for i, t := range lv.Tasks {
		fmt.Fprintf(w, "   %d) %s - %s [%d xp]\n", i+1, t.Title, t.Description, t.XPReward)
	}
}
