// Package cmd implements the command-line interface for makedot.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/makedot/makedot/color"
	"github.com/makedot/makedot/constant"
	"github.com/makedot/makedot/icon"
	"github.com/makedot/makedot/key"
	"github.com/makedot/makedot/log"
	"github.com/makedot/makedot/render"
	"github.com/makedot/makedot/style"
	"github.com/makedot/makedot/theme"
	"github.com/makedot/makedot/util"
	"github.com/makedot/makedot/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("config", "c", "", "Palette configuration file (default "+where.Config()+")")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("output", "o", "", "Directory receiving compiled templates (default "+filepath.Join("$XDG_DATA_HOME", constant.Makedot, constant.CompiledDir)+")")
	lo.Must0(viper.BindPFlag(key.RenderOutput, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().StringP("engine", "e", "", "Engine for templates whose extension does not select one")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("engine", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.AvailableEngines(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.RenderEngine, rootCmd.Flags().Lookup("engine")))
}

// rootCmd compiles a template directory against the configured palette.
var rootCmd = &cobra.Command{
	Use:   constant.Makedot + " DIR",
	Short: "Compile dotfile templates against a color palette",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.Makedot) + "\n\n" +
		"Derives a full palette, including terminal color tables, from a few base colors\n" +
		"and renders every template found in DIR with it.\n\n" +
		"Templates ending in .j2/.jinja use Jinja syntax, .tmpl/.gotmpl Go templates,\n" +
		".mustache mustache. Other files use the engine set with --engine.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("a template directory is required"))
		}

		templates, err := filepath.Abs(args[0])
		handleErr(err)

		t, err := loadTheme(cmd)
		handleErr(err)

		output := viper.GetString(key.RenderOutput)
		if output == "" {
			output = where.Compiled()
		}

		results, err := render.Run(render.Options{
			Templates: templates,
			Output:    output,
			Engine:    viper.GetString(key.RenderEngine),
			Theme:     t,
			OnRender: func(r render.Result) {
				cmd.Printf("%s rendering %s %s\n", icon.Get(icon.Template), r.Template, style.Faint(r.Engine))
			},
		})
		handleErr(err)

		cmd.Printf("%s %s compiled into %s\n",
			icon.Get(icon.Success),
			util.Quantify(len(results), "template", "templates"),
			style.Fg(color.Yellow)(output),
		)
	},
}

// loadTheme locates, reads and resolves the palette configuration selected by the --config flag.
func loadTheme(cmd *cobra.Command) (*theme.Theme, error) {
	explicit := mo.EmptyableToOption(lo.Must(cmd.Flags().GetString("config")))

	path, err := theme.Locate(explicit)
	if err != nil {
		return nil, err
	}

	log.Infof("using configuration %s", path)

	file, err := theme.Load(path)
	if err != nil {
		return nil, err
	}

	return theme.Resolve(file)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
