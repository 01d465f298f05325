package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/draftleague/marketd/pkg/config"
	"github.com/draftleague/marketd/pkg/dldb"
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/draftleague/marketd/pkg/mlog"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marketd",
	Short: "Run the transfer-market API server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		c := config.MustLoadFromDotenv()
		mlog.Setup(c.GetKeyWithDefault("MARKETD_LOG_LEVEL", "info"), os.Stderr)
		db := dldb.MustConnectToDB()

		if err := dldb.RunMigrations(db); err != nil {
			log.Fatalf("Unable to run migrations: %s", err)
		}

		maxOffers := c.GetIntKeyWithDefault("MARKETD_MAX_OFFERS", 0)
		stors := stor.NewGormStors(db, maxOffers)

		setupRoutes(e, RouteOpts{Stors: stors})

		port := c.GetKeyWithDefault("MARKETD_PORT", "1620")
		log.Infof("Starting marketd on :%s", port)
		if err := e.Start(":" + port); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
