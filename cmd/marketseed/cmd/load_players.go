package cmd

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// loadPlayersCmd loads the player catalog from a CSV file. Columns are
// name,gender,position,element,value and optionally sprite. Players already
// in the catalog (matched by slug) are skipped.
var loadPlayersCmd = &cobra.Command{
	Use:   "load-players <players.csv>",
	Short: "Load the player catalog from a CSV file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Unable to open %s: %s", args[0], err)
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1

		loaded := 0
		skipped := 0
		line := 0

		for {
			record, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				log.Fatalf("Unable to read %s: %s", args[0], err)
			}

			line++
			if line == 1 && record[0] == "name" {
				// header row
				continue
			}

			if len(record) < 5 {
				log.Fatalf("Line %d: expected at least 5 columns, got %d", line, len(record))
			}

			value, err := decimal.NewFromString(record[4])
			if err != nil {
				log.Fatalf("Line %d: bad value %q: %s", line, record[4], err)
			}

			player := &dlmodel.Player{
				Name:     record[0],
				Gender:   record[1],
				Position: record[2],
				Element:  record[3],
				Value:    value,
			}
			if len(record) > 5 {
				player.Sprite = record[5]
			}

			if _, err := stors.PlayerStor.CreatePlayer(player); err != nil {
				log.Warnf("Skipping %s: %s", player.Name, err)
				skipped++
				continue
			}

			loaded++
		}

		log.Infof("Loaded %d players, skipped %d", loaded, skipped)
	},
}

func init() {
	rootCmd.AddCommand(loadPlayersCmd)
}
