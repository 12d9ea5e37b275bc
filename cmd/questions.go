package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		categories := catalog.AllCategories()
		if c, _ := cmd.Flags().GetString("category"); c != "" {
			category := catalog.Category(strings.ToLower(c))
			if !category.Valid() {
				return fmt.Errorf("unknown category %q (want one of %s)", c, categoryNames())
			}
			categories = []catalog.Category{category}
		}

		out := cmd.OutOrStdout()
		for i, category := range categories {
			qs := cat.ByCategory(category)
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (%d)\n", category.DisplayName(), len(qs))
			fmt.Fprintln(out, strings.Repeat("─", 60))
			for _, q := range qs {
				fmt.Fprintf(out, "%-18s %s\n", q.ID, q.Text)
				tag := string(q.Type)
				if q.Subcategory != "" {
					tag += ", " + q.Subcategory.DisplayName()
				}
				fmt.Fprintf(out, "%-18s [%s]\n", "", tag)
				switch {
				case q.Scale != nil:
					fmt.Fprintf(out, "%-18s %d = %s ... %d = %s\n", "",
						q.Scale.Min, q.Scale.MinLabel, q.Scale.Max, q.Scale.MaxLabel)
				case q.Type.IsChoice():
					for j, opt := range q.Options {
						fmt.Fprintf(out, "%-18s %c) %s\n", "", 'a'+j, opt)
					}
				}
			}
		}
		return nil
	},
}

func categoryNames() string {
	names := make([]string, 0, 4)
	for _, c := range catalog.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func init() {
	questionsCmd.Flags().StringP("category", "c", "", "Only list one category (interest, personality, technical, wiscar)")
}
