package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/analyzer"
	"github.com/passforge/passforge-go/internal/cli"
	"github.com/passforge/passforge-go/internal/session"
)

type options struct {
	Length      int  `short:"l" long:"length" description:"Password length (8-64)" default:"16"`
	NoUppercase bool `long:"no-uppercase" description:"Exclude uppercase letters"`
	NoLowercase bool `long:"no-lowercase" description:"Exclude lowercase letters"`
	NoNumbers   bool `long:"no-numbers" description:"Exclude digits"`
	NoSymbols   bool `long:"no-symbols" description:"Exclude symbols"`
	Analyze     bool `short:"a" long:"analyze" description:"Ask the model to rate the generated password"`
	Interactive bool `short:"i" long:"interactive" description:"Start an interactive session"`

	OpenAIAPIKey  string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"API key for strength analysis"`
	OpenAIModel   string `long:"openai-model" env:"OPENAI_MODEL" default:"gpt-4o-mini" description:"Model used for strength analysis"`
	OpenAIBaseURL string `long:"openai-base-url" env:"OPENAI_BASE_URL" description:"Alternative OpenAI-compatible endpoint"`
}

func main() {
	_ = godotenv.Load()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var an session.StrengthAnalyzer
	if opts.OpenAIAPIKey != "" {
		llm, err := analyzer.NewOpenAICompleter(analyzer.Settings{
			Model:   opts.OpenAIModel,
			APIKey:  opts.OpenAIAPIKey,
			BaseURL: opts.OpenAIBaseURL,
		})
		if err != nil {
			slog.Error("invalid analyzer settings", "error", err)
			os.Exit(1)
		}
		an = analyzer.New(llm)
	}

	state := session.New(an)
	state.SetLength(opts.Length)
	state.SetUppercase(!opts.NoUppercase)
	state.SetLowercase(!opts.NoLowercase)
	state.SetNumbers(!opts.NoNumbers)
	state.SetSymbols(!opts.NoSymbols)

	console := cli.NewConsole(state, os.Stdout)

	var err error
	if opts.Interactive {
		err = console.Run(ctx, os.Stdin)
	} else {
		err = console.Once(ctx, opts.Analyze)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
