package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/draftleague/marketd/pkg/config"
	"github.com/draftleague/marketd/pkg/dldb"
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/draftleague/marketd/pkg/mlog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	db    *gorm.DB
	stors *stor.Stors
)

var rootCmd = &cobra.Command{
	Use:   "marketseed",
	Short: "Load players and set up leagues, drafts and teams",
	Long:  ``,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c := config.MustLoadFromDotenv()
		mlog.Setup(c.GetKeyWithDefault("MARKETD_LOG_LEVEL", "info"), os.Stderr)
		db = dldb.MustConnectToDB()

		if err := dldb.RunMigrations(db); err != nil {
			log.Fatalf("Unable to run migrations: %s", err)
		}

		stors = stor.NewGormStors(db, 0)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
