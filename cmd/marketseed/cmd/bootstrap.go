package cmd

import (
	"strings"

	"github.com/apex/log"
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	leagueName    string
	draftName     string
	budgetStr     string
	userSpecs     []string
	assignPlayers bool
)

// bootstrapCmd creates a league, a draft inside it, one user and team per
// --user flag, and a draft player for every player in the catalog. It is the
// quickest way to get a playable draft out of an empty database.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create a league, draft, users and teams",
	Run: func(cmd *cobra.Command, args []string) {
		if len(userSpecs) == 0 {
			log.Fatalf("At least one --user is required")
		}

		budget, err := decimal.NewFromString(budgetStr)
		if err != nil {
			log.Fatalf("Bad --budget %q: %s", budgetStr, err)
		}

		league, err := stors.DraftStor.CreateLeague(&dlmodel.League{Name: leagueName})
		if err != nil {
			log.Fatalf("Unable to create league: %s", err)
		}

		draft, err := stors.DraftStor.CreateDraft(&dlmodel.Draft{Name: draftName, LeagueID: league.ID})
		if err != nil {
			log.Fatalf("Unable to create draft: %s", err)
		}

		var teams []*dlmodel.Team
		for i, spec := range userSpecs {
			parts := strings.SplitN(spec, ":", 3)
			if len(parts) != 3 {
				log.Fatalf("Bad --user %q, expected team:name:email", spec)
			}

			user, err := stors.UserStor.CreateUser(&dlmodel.User{Name: parts[1], Email: parts[2]})
			if err != nil {
				log.Fatalf("Unable to create user %s: %s", parts[2], err)
			}

			draftUser, err := stors.DraftStor.CreateDraftUser(&dlmodel.DraftUser{
				UserID:    user.ID,
				DraftID:   draft.ID,
				PickOrder: i + 1,
			})
			if err != nil {
				log.Fatalf("Unable to create draft user for %s: %s", parts[2], err)
			}

			team, err := stors.TeamStor.CreateTeam(&dlmodel.Team{
				Name:        parts[0],
				DraftID:     draft.ID,
				DraftUserID: draftUser.ID,
				Budget:      budget,
			})
			if err != nil {
				log.Fatalf("Unable to create team %s: %s", parts[0], err)
			}

			teams = append(teams, team)
			log.Infof("Created team %s (id %d) for %s, api token %s", team.Name, team.ID, user.Email, user.ApiToken)
		}

		// Every catalog player gets a draft player in the new draft.
		var players []dlmodel.Player
		if err := db.Order("id").Find(&players).Error; err != nil {
			log.Fatalf("Unable to load player catalog: %s", err)
		}

		for i, p := range players {
			dp := &dlmodel.DraftPlayer{
				PlayerID: p.ID,
				DraftID:  draft.ID,
				Name:     p.Name,
			}

			// Snake-less round robin in catalog order, standing in for a
			// real draft.
			if assignPlayers {
				pickOrder := i + 1
				dp.TeamID = &teams[i%len(teams)].ID
				dp.PickOrder = &pickOrder
			}

			if _, err := stors.PlayerStor.CreateDraftPlayer(dp); err != nil {
				log.Fatalf("Unable to create draft player for %s: %s", p.Name, err)
			}
		}

		log.Infof("Created draft %s (id %d) with %d draft players", draft.Name, draft.ID, len(players))
	},
}

func init() {
	bootstrapCmd.Flags().StringVar(&leagueName, "league", "League", "League name")
	bootstrapCmd.Flags().StringVar(&draftName, "draft", "Draft", "Draft name")
	bootstrapCmd.Flags().StringVar(&budgetStr, "budget", "500.00", "Starting budget for each team")
	bootstrapCmd.Flags().StringArrayVar(&userSpecs, "user", nil, "Team, user and email as team:name:email (repeatable)")
	bootstrapCmd.Flags().BoolVar(&assignPlayers, "assign", true, "Assign the catalog to teams round robin")
	rootCmd.AddCommand(bootstrapCmd)
}
