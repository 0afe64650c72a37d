package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/makedot/makedot/color"
	"github.com/makedot/makedot/palette"
	"github.com/makedot/makedot/style"
	"github.com/makedot/makedot/theme"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().BoolP("json", "j", false, "Print the template variables as JSON")
	paletteCmd.Flags().BoolP("toml", "t", false, "Print the template variables as TOML")
	paletteCmd.MarkFlagsMutuallyExclusive("json", "toml")
}

// paletteCmd shows the resolved palette exactly as templates will see it.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Display the resolved palette and terminal color tables",
	Run: func(cmd *cobra.Command, args []string) {
		t, err := loadTheme(cmd)
		handleErr(err)

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(t.Vars()))
		case lo.Must(cmd.Flags().GetBool("toml")):
			data, err := toml.Marshal(t.Vars())
			handleErr(err)
			cmd.Print(string(data))
		default:
			cmd.Print(prettyTheme(t))
		}
	},
}

func prettyTheme(t *theme.Theme) string {
	var b strings.Builder
	header := style.New().Bold(true).Foreground(color.HiPurple).Render

	group := func(title string, colors map[string]palette.Color) {
		b.WriteString(header(title) + "\n")

		names := lo.Keys(colors)
		sort.Strings(names)
		width := lo.Max(lo.Map(names, func(n string, _ int) int { return len(n) }))

		for _, name := range names {
			fmt.Fprintf(&b, "  %-*s %s\n", width, name, style.SwatchWithIndex(colors[name]))
		}
		b.WriteString("\n")
	}

	table := func(title string, table theme.Table) {
		b.WriteString(header(title) + "\n")
		for row := 0; row < 2; row++ {
			b.WriteString(" ")
			for _, c := range table[row*8 : row*8+8] {
				b.WriteString(" " + style.Swatch(c))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	group("Base", t.Base)
	group("Colors", t.Colors)
	table("Terminal (dark)", t.XtermDark)
	table("Terminal (light)", t.XtermLight)

	return b.String()
}
