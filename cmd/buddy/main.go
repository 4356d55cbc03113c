package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/Epicb0i/Chatbot/internal/buddy"
	"github.com/Epicb0i/Chatbot/internal/config"
	"github.com/Epicb0i/Chatbot/internal/corpus"
	"github.com/Epicb0i/Chatbot/internal/spinner"

	"github.com/spf13/cobra"
)

// exitWords end the chat session.
var exitWords = map[string]struct{}{
	"quit": {}, "exit": {}, "bye": {}, "goodbye": {}, "stop": {}, "gotta go": {},
}

// buildConfig constructs the runtime configuration from flags.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dataPath, _ := cmd.Flags().GetString("data")

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	// the --data flag overrides the config file
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// newRand builds the composer's random source; seed 0 means unseeded.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func banner(out *os.File, topics int) {
	fmt.Fprintln(out, strings.Repeat("=", 70))
	fmt.Fprintln(out, "💙 Your Support Buddy")
	fmt.Fprintln(out, strings.Repeat("=", 70))
	fmt.Fprintf(out, "\nHey friend! I'm so glad you're here. 😊 (%d topics I can help with)\n", topics)
	fmt.Fprintln(out, "\nYou can talk to me about anything - feeling lonely, sad, anxious,")
	fmt.Fprintln(out, "stressed about work or life, or just needing someone to listen.")
	fmt.Fprintln(out, "\n🚨 If you're in crisis, I'll help connect you to immediate support.")
	fmt.Fprintln(out, "💬 Type 'bye' whenever you need to go. No pressure!")
	fmt.Fprintln(out, strings.Repeat("=", 70))
}

// chat runs the interactive read loop until an exit word, EOF, or interrupt.
func chat(ctx context.Context, responder *buddy.Responder, quiet bool) {
	if !quiet {
		banner(os.Stdout, responder.Topics())
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n😊 You: ")
		if !scanner.Scan() || ctx.Err() != nil {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Println("\n🤖 Buddy: I'm here. Take your time. 💙")
			continue
		}

		if _, done := exitWords[strings.ToLower(input)]; done {
			break
		}

		fmt.Printf("\n🤖 Buddy: %s\n", responder.Respond(input))
	}

	fmt.Printf("\n🤖 Buddy: %s\n", responder.Farewell())
}

var rootCmd = &cobra.Command{
	Use:   "buddy",
	Short: "A supportive chat companion for your terminal",
	Long: `Buddy is a terminal chat companion that answers questions about stress,
sleep, loneliness, and other everyday struggles from a curated set of
supportive answers. Messages that signal a crisis are always routed to
crisis-line information first.

Buddy is a keyword matcher, not a clinician; it is no substitute for
professional help.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")
		seed, _ := cmd.Flags().GetUint64("seed")

		setupLogger(debug)

		cfg, err := buildConfig(cmd)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sp := spinner.New(os.Stderr, "Getting ready to chat...")
		if !quiet {
			sp.Start(ctx)
		}

		entries, err := corpus.Load(cfg.DataPath)
		if err != nil {
			sp.Stop()
			return err
		}

		responder, err := buddy.New(entries, cfg, newRand(seed))
		sp.Stop()
		if err != nil {
			return err
		}

		chat(ctx, responder, quiet)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("data", "d", "", "Path to the question/answer dataset CSV")
	rootCmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().Uint64("seed", 0, "Seed for reply selection (0 = random)")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress the banner and spinner")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
