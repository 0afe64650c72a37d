package cmd

import (
	"os"
	"slices"
	"strings"

	"github.com/makedot/makedot/color"
	"github.com/makedot/makedot/config"
	"github.com/makedot/makedot/constant"
	"github.com/makedot/makedot/style"
	"github.com/makedot/makedot/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVars lists every environment variable makedot reads, settings first.
func envVars() []string {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) string {
		return strings.ToUpper(constant.Makedot + "_" + config.EnvKeyReplacer.Replace(k))
	})
	slices.Sort(vars)

	return append(vars, where.EnvConfigPath, "XDG_CONFIG_HOME", "XDG_DATA_HOME")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envVars() {
			value := os.Getenv(env)
			present := value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
