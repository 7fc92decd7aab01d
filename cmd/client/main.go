package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/aleksmv/go-habit-tracker/internal/adapter"
	"github.com/aleksmv/go-habit-tracker/internal/clientstore"
	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: habit-client <command> [flags]

Commands:
  register  -name NAME -email EMAIL -password PASSWORD   create an account and log in
  login     -email EMAIL -password PASSWORD              authenticate and cache the session
  logout                                                 revoke the cached session
  whoami                                                 show the authenticated user
  check                                                  verify the cached token is still valid
  habits list                                            list your habits
  habits create -name NAME -frequency daily|weekly|monthly
  habits get    ID
  habits update ID [-name NAME] [-frequency FREQ]
  habits delete ID
`

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("habit-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAPIClient(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx := context.Background()

	sessions, err := clientstore.NewSessionStore(ctx, cfg.Client.SessionDBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}
	defer sessions.Close()

	session, err := sessions.Load(ctx)
	if err != nil && !errors.Is(err, clientstore.ErrSessionNotFound) {
		log.Fatal().Err(err).Msg("load cached session")
	}
	api.SetToken(session.Token)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err = dispatch(ctx, api, sessions, cfg.Client, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func dispatch(ctx context.Context, api adapter.APIClient, sessions clientstore.SessionStore, cfg config.Client, command string, args []string) error {
	switch command {
	case "register":
		return runRegister(ctx, api, sessions, cfg, args)
	case "login":
		return runLogin(ctx, api, sessions, cfg, args)
	case "logout":
		return runLogout(ctx, api, sessions)
	case "whoami":
		return runWhoami(ctx, api)
	case "check":
		return runCheck(ctx, api)
	case "habits":
		return dispatchHabits(ctx, api, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func dispatchHabits(ctx context.Context, api adapter.APIClient, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("habits: missing subcommand")
	}

	switch args[0] {
	case "list":
		return runHabitsList(ctx, api)
	case "create":
		return runHabitsCreate(ctx, api, args[1:])
	case "get":
		return runHabitsGet(ctx, api, args[1:])
	case "update":
		return runHabitsUpdate(ctx, api, args[1:])
	case "delete":
		return runHabitsDelete(ctx, api, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("habits: unknown subcommand %q", args[0])
	}
}

func runRegister(ctx context.Context, api adapter.APIClient, sessions clientstore.SessionStore, cfg config.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := api.Register(ctx, models.RegisterRequest{
		Name:                 *name,
		Email:                *email,
		Password:             *password,
		PasswordConfirmation: *password,
	})
	if err != nil {
		return err
	}

	if err = sessions.Save(ctx, clientstore.Session{Token: data.Token, BaseURL: cfg.BaseURL}); err != nil {
		return fmt.Errorf("cache session: %w", err)
	}

	fmt.Printf("Registered and logged in as %s <%s>\n", data.User.Name, data.User.Email)
	return nil
}

func runLogin(ctx context.Context, api adapter.APIClient, sessions clientstore.SessionStore, cfg config.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := api.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	if err = sessions.Save(ctx, clientstore.Session{Token: data.Token, BaseURL: cfg.BaseURL}); err != nil {
		return fmt.Errorf("cache session: %w", err)
	}

	fmt.Printf("Logged in as %s <%s>\n", data.User.Name, data.User.Email)
	return nil
}

func runLogout(ctx context.Context, api adapter.APIClient, sessions clientstore.SessionStore) error {
	if err := api.Logout(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	// drop the cached token even if the server had already revoked it
	if err := sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear cached session: %w", err)
	}

	fmt.Println("Logged out")
	return nil
}

func runWhoami(ctx context.Context, api adapter.APIClient) error {
	user, err := api.CurrentUser(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> (id %d)\n", user.Name, user.Email, user.UserID)
	return nil
}

func runCheck(ctx context.Context, api adapter.APIClient) error {
	user, err := api.CheckToken(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Token is valid for %s <%s>\n", user.Name, user.Email)
	return nil
}

func runHabitsList(ctx context.Context, api adapter.APIClient) error {
	habits, err := api.ListHabits(ctx)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet")
		return nil
	}

	for _, habit := range habits {
		printHabit(habit)
	}
	return nil
}

func runHabitsCreate(ctx context.Context, api adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("habits create", flag.ExitOnError)
	name := fs.String("name", "", "habit name")
	frequency := fs.String("frequency", string(models.Daily), "daily|weekly|monthly")
	if err := fs.Parse(args); err != nil {
		return err
	}

	habit, err := api.CreateHabit(ctx, models.HabitCreateRequest{
		Name:      *name,
		Frequency: models.Frequency(*frequency),
	})
	if err != nil {
		return err
	}

	fmt.Println("Created:")
	printHabit(habit)
	return nil
}

func runHabitsGet(ctx context.Context, api adapter.APIClient, args []string) error {
	habitID, err := habitIDFromArgs(args)
	if err != nil {
		return err
	}

	habit, err := api.GetHabit(ctx, habitID)
	if err != nil {
		return err
	}

	printHabit(habit)
	return nil
}

func runHabitsUpdate(ctx context.Context, api adapter.APIClient, args []string) error {
	habitID, err := habitIDFromArgs(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("habits update", flag.ExitOnError)
	name := fs.String("name", "", "new habit name")
	frequency := fs.String("frequency", "", "new frequency: daily|weekly|monthly")
	if err = fs.Parse(args[1:]); err != nil {
		return err
	}

	var req models.HabitUpdateRequest
	if *name != "" {
		req.Name = name
	}
	if *frequency != "" {
		f := models.Frequency(*frequency)
		req.Frequency = &f
	}
	if req.Name == nil && req.Frequency == nil {
		return fmt.Errorf("habits update: nothing to change")
	}

	habit, err := api.UpdateHabit(ctx, habitID, req)
	if err != nil {
		return err
	}

	fmt.Println("Updated:")
	printHabit(habit)
	return nil
}

func runHabitsDelete(ctx context.Context, api adapter.APIClient, args []string) error {
	habitID, err := habitIDFromArgs(args)
	if err != nil {
		return err
	}

	if err = api.DeleteHabit(ctx, habitID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %d\n", habitID)
	return nil
}

func habitIDFromArgs(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing habit id")
	}

	habitID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid habit id %q", args[0])
	}
	return habitID, nil
}

func printHabit(habit models.Habit) {
	label := habit.FrequencyLabel
	if label == "" {
		label = habit.Frequency.Label()
	}
	fmt.Printf("  [%d] %s (%s)\n", habit.ID, habit.Name, label)
}
