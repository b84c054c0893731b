package main

import (
	"fmt"
	"sort"

	"github.com/milk9111/shadowmario/levels"
	"github.com/milk9111/shadowmario/obj"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Check the configured level files",
	Long:  `Parses and builds every configured level and prints how many of each record kind it holds.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	spec := loadSpec()
	out := cmd.OutOrStdout()

	for i := range spec.LevelFiles {
		v := obj.Variant(i + 1)
		name, err := spec.LevelFile(int(v))
		if err != nil {
			return err
		}
		records, err := levels.Load(name)
		if err != nil {
			return err
		}

		status := "ok"
		if !v.Valid() {
			status = "no such level"
		} else if _, err := obj.BuildLevel(v, records, spec, nil); err != nil {
			status = err.Error()
		}

		fmt.Fprintf(out, "Level %d (%s): %s\n", v, name, status)

		counts := levels.Count(records)
		kinds := make([]string, 0, len(counts))
		for k := range counts {
			kinds = append(kinds, string(k))
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			note := ""
			if !levels.Kind(k).Known() {
				note = " (unknown)"
			} else if !v.Supports(levels.Kind(k)) {
				note = " (ignored)"
			}
			fmt.Fprintf(out, "  %-18s %d%s\n", k, counts[levels.Kind(k)], note)
		}
	}
	return nil
}
