package cmd

import (
	"github.com/rohmanhakim/linkscrub/internal/config"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rule table as YAML.",
	Long: `rules prints the domain and global rules linkscrub applies, after the
config file is merged in. The output is itself a valid config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := config.MarshalRules(cfg.RuleTable())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
