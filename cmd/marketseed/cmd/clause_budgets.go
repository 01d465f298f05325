package cmd

import (
	"github.com/apex/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var clauseBudgetDraftID int

// clauseBudgetMultiplier is applied to a team's mean squad value to get its
// clause budget for the season.
var clauseBudgetMultiplier = decimal.RequireFromString("1.33")

// clauseBudgetsCmd recomputes every team's clause budget in a draft as the
// mean value of its squad times 1.33, and clears all release clauses so the
// new season starts without carryover buyout prices.
var clauseBudgetsCmd = &cobra.Command{
	Use:   "clause-budgets",
	Short: "Recompute team clause budgets for a draft",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := stors.DraftStor.GetDraftByID(clauseBudgetDraftID); err != nil {
			log.Fatalf("No such draft %d: %s", clauseBudgetDraftID, err)
		}

		teams, err := stors.TeamStor.GetTeamsByDraft(clauseBudgetDraftID)
		if err != nil {
			log.Fatalf("Unable to load teams for draft %d: %s", clauseBudgetDraftID, err)
		}

		for _, team := range teams {
			dps, err := stors.PlayerStor.GetDraftPlayersByTeam(team.ID)
			if err != nil {
				log.Fatalf("Unable to load squad for team %d: %s", team.ID, err)
			}

			if len(dps) == 0 {
				log.Warnf("Team %s (id %d) has no players, skipping", team.Name, team.ID)
				continue
			}

			total := decimal.Zero
			for _, dp := range dps {
				if dp.Player != nil {
					total = total.Add(dp.Player.Value)
				}
			}

			mean := total.Div(decimal.NewFromInt(int64(len(dps))))
			clauseBudget := mean.Mul(clauseBudgetMultiplier).Round(2)

			err = db.Model(&team).Update("clause_budget", clauseBudget).Error
			if err != nil {
				log.Fatalf("Unable to set clause budget for team %d: %s", team.ID, err)
			}

			log.Infof("Team %s (id %d): clause budget %s", team.Name, team.ID, clauseBudget)
		}

		err = db.Table("draft_players").
			Where("draft_id = ?", clauseBudgetDraftID).
			Update("release_clause", nil).Error
		if err != nil {
			log.Fatalf("Unable to clear release clauses for draft %d: %s", clauseBudgetDraftID, err)
		}

		log.Infof("Cleared release clauses for draft %d", clauseBudgetDraftID)
	},
}

func init() {
	clauseBudgetsCmd.Flags().IntVar(&clauseBudgetDraftID, "draft-id", 0, "Draft to recompute")
	_ = clauseBudgetsCmd.MarkFlagRequired("draft-id")
	rootCmd.AddCommand(clauseBudgetsCmd)
}
