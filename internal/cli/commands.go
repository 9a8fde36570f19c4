package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/lunar/internal/content"
	"github.com/idilsaglam/lunar/internal/model"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/store/catalogstore"
	"github.com/idilsaglam/lunar/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const titleWidth = 72

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("usage: lunar %s", cmd.Name())
	}
	return nil
}

func (st *state) catalog() (content.Catalog, error) {
	c, err := catalogstore.Load(st.cfg.Content.Path)
	if err != nil {
		return content.Catalog{}, fmt.Errorf("load content: %w", err)
	}
	return c, nil
}

func newArticlesCmd(st *state) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List featured articles",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.catalog()
			if err != nil {
				return err
			}
			t := ui.Current()
			lines := []string{
				fmt.Sprintf("%s  %s %d", t.Title.Render("Featured Articles"), t.Accent.Render("Total"), len(c.Articles)),
				"",
			}
			if group {
				lines = append(lines, groupLines(c)...)
			} else {
				lines = append(lines, flatLines(c.Articles)...)
			}
			lines = append(lines, "", t.Muted.Render("Tip: read one with `lunar --start /articles/<id>`"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group articles by category")
	return cmd
}

func flatLines(articles []model.Article) []string {
	t := ui.Current()
	if len(articles) == 0 {
		return []string{t.Muted.Render("(none)")}
	}
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", a.ID)),
			t.Accent.Render(a.Category.Glyph()),
			ui.Truncate(a.Title, titleWidth)))
	}
	return out
}

func groupLines(c content.Catalog) []string {
	t := ui.Current()
	groups := c.ByCategory()
	var lines []string
	for i, cat := range model.Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(string(cat)))
		lines = append(lines, flatLines(groups[cat])...)
	}
	return lines
}

func bulletCmd(st *state, use, short, title string, pick func(content.Catalog) []string, bullet func(ui.Theme) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.catalog()
			if err != nil {
				return err
			}
			t := ui.Current()
			lines := []string{t.Title.Render(title), ""}
			for _, s := range pick(c) {
				lines = append(lines, t.Accent.Render(bullet(t))+" "+s)
			}
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func newNewsCmd(st *state) *cobra.Command {
	return bulletCmd(st, "news", "Show the latest news flashes", "Latest News",
		func(c content.Catalog) []string { return c.News },
		func(t ui.Theme) string { return t.SymBullet })
}

func newFactsCmd(st *state) *cobra.Command {
	return bulletCmd(st, "facts", "Show fun facts", "Fun Facts",
		func(c content.Catalog) []string { return c.Facts },
		func(t ui.Theme) string { return t.SymStar })
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the paths accepted by --start",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(router.Patterns(), "\n"))
			return nil
		},
	}
}

func newContentCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Work with the content catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export <file.yaml|file.json>",
		Short: "Write the current catalog to a file you can edit and pass to --content",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: lunar content export <file>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.catalog()
			if err != nil {
				return err
			}
			if err := catalogstore.Save(args[0], c); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			st.log.Info("catalog exported", zap.String("path", args[0]))
			ui.OK("exported " + args[0])
			return nil
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "lunar", Version)
			return nil
		},
	}
}
