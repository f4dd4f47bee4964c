package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/asyncee/prophet-bot/internal/bot"
	"github.com/asyncee/prophet-bot/internal/config"
	"github.com/asyncee/prophet-bot/internal/ics"
	"github.com/asyncee/prophet-bot/internal/notify"
	"github.com/asyncee/prophet-bot/internal/store"
	"github.com/asyncee/prophet-bot/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "prophet-bot",
	Short: "Reminder bot that understands plain Russian",
	Long:  "prophet-bot reads free-form phrases like \"сходить в магазин завтра в 10:30\", finds the time expression and turns it into an exact reminder moment.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	RunE:  runServe,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running bot",
	RunE:  runStop,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot locally",
	RunE:  runChat,
}

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Extract a reminder from a phrase and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Show phrases the bot did not understand",
	RunE:  runPhrases,
}

var timezoneCmd = &cobra.Command{
	Use:   "timezone",
	Short: "Print the timezone reminders resolve in",
	RunE:  runTimezone,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	parseCmd.Flags().String("at", "", "Reference moment, e.g. \"2018-01-01 12:00\" (default: now)")
	parseCmd.Flags().String("ics", "", "Write the recognized reminder as an iCalendar file")
	phrasesCmd.Flags().Bool("clear", false, "Clear the recorded phrases")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(phrasesCmd)
	rootCmd.AddCommand(timezoneCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token not configured — run 'prophet-bot config' to set it up")
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	b, err := bot.New(cfg.Telegram.Token, db, newLogger())
	if err != nil {
		return err
	}

	if err := bot.WritePID(); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer bot.RemovePID()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return b.Run(ctx)
}

func runStop(cmd *cobra.Command, args []string) error {
	pid, err := bot.ReadPID()
	if err != nil {
		return err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("finding process %d: %w", pid, err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("sending stop signal: %w", err)
	}

	fmt.Printf("Sent stop signal to prophet-bot (PID %d)\n", pid)
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	responder := &bot.Responder{DB: db}
	chat := tui.NewChat(func(text string) (string, bool) {
		reply, x := responder.Reply(text)
		if x != nil && cfg.Notifications.Enabled {
			notify.Send("prophet-bot", reply)
		}
		return reply, x != nil
	})

	if _, err := tea.NewProgram(chat).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	atFlag, _ := cmd.Flags().GetString("at")
	icsFlag, _ := cmd.Flags().GetString("ics")

	now := time.Now()
	if atFlag != "" {
		parsed, err := parseReference(atFlag)
		if err != nil {
			return err
		}
		now = parsed
	}

	responder := &bot.Responder{Now: func() time.Time { return now }}
	reply, x := responder.Reply(strings.Join(args, " "))
	fmt.Println(reply)

	// NoMatch is a normal outcome, not a failure.
	if x == nil || icsFlag == "" {
		return nil
	}

	f, err := os.Create(icsFlag)
	if err != nil {
		return fmt.Errorf("creating ics file: %w", err)
	}
	defer f.Close()

	if err := ics.Write(f, x, now); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", icsFlag)
	return nil
}

func parseReference(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized reference moment %q", s)
}

func runPhrases(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if clearFlag {
		if err := db.ClearPhrases(); err != nil {
			return fmt.Errorf("clearing phrases: %w", err)
		}
		fmt.Println("Cleared.")
		return nil
	}

	phrases, err := db.ListPhrases()
	if err != nil {
		return fmt.Errorf("fetching phrases: %w", err)
	}

	if len(phrases) == 0 {
		fmt.Println("No unrecognized phrases recorded.")
		return nil
	}

	for _, p := range phrases {
		fmt.Println(p)
	}
	return nil
}

func runTimezone(cmd *cobra.Command, args []string) error {
	name, offset := time.Now().Zone()
	fmt.Printf("%s (UTC%+d)\n", name, offset/3600)
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config file
		cfg := config.DefaultConfig()
		data := fmt.Sprintf(`[telegram]
token = "%s"

[notifications]
enabled = %t
`,
			cfg.Telegram.Token,
			cfg.Notifications.Enabled,
		)
		if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", configPath, editor)

	proc := os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}
	process, err := os.StartProcess(editor, []string{editor, configPath}, &proc)
	if err != nil {
		// If editor fails, just print the path
		fmt.Printf("Could not open editor. Config file is at: %s\n", configPath)
		return nil
	}
	_, err = process.Wait()
	return err
}
