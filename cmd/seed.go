package cmd

import (
	"github.com/spf13/cobra"
)

var (
	seedOrbit  bool
	seedAether bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the stores, seed the Orbit admin and the Aether catalog",
	Long: `seed prepares the databases without serving. By default both stores are
seeded; --orbit or --aether limits it to one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := !seedOrbit && !seedAether

		if all || seedOrbit {
			db, err := prepareOrbit(cfg.Orbit, logger)
			if err != nil {
				return err
			}
			closeDB(db, logger)
		}
		if all || seedAether {
			db, err := prepareAether(cfg.Aether, logger)
			if err != nil {
				return err
			}
			closeDB(db, logger)
		}
		logger.Info("seed complete")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedOrbit, "orbit", false, "Only seed the back-office store")
	seedCmd.Flags().BoolVar(&seedAether, "aether", false, "Only seed the storefront store")
}
