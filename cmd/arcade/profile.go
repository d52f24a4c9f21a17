package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the local profile",
	Long: `Show the username and user id used on the leaderboard.

Examples:
  arcade profile
  arcade profile set "Tile Wizard"`,
	Args: cobra.NoArgs,
	Run:  runProfile,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <username>",
	Short: "Set the username",
	Long: fmt.Sprintf(`Set the username shown on the leaderboard.

Usernames are %d-%d characters of letters, numbers, spaces, underscores
and hyphens. A user id is generated the first time.`, profile.UsernameMinLength, profile.UsernameMaxLength),
	Args: cobra.ExactArgs(1),
	Run:  runProfileSet,
}

func init() {
	profileCmd.AddCommand(profileSetCmd)
}

func runProfile(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := mustOpenStore()
	defer store.Close()
	svc := localServices(store, loadGameConfig(), logger)

	p, err := svc.Profiles.Get()
	if err != nil {
		fail("loading profile: %v", err)
	}
	if !p.Complete() {
		fmt.Println("No profile yet.")
		fmt.Println("Run 'arcade profile set <username>' or 'arcade menu' to create one.")
		return
	}

	fmt.Printf("Username: %s\n", p.Username)
	fmt.Printf("User ID:  %s\n", p.UserID)
}

func runProfileSet(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := mustOpenStore()
	defer store.Close()
	svc := localServices(store, loadGameConfig(), logger)

	p, err := svc.Profiles.UpdateUsername(args[0])
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "Error: invalid username:")
			for _, msg := range verr.Messages {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
			os.Exit(1)
		}
		fail("saving profile: %v", err)
	}

	logger.Info("profile saved", "user", p.UserID, "username", p.Username)
	fmt.Printf("Username set to %q\n", p.Username)
}
