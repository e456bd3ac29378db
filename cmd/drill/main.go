package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/drill"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

func main() {
	app := &cli.App{
		Name:  "drill",
		Usage: "run an adaptive multiple-choice drill in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://localhost:8080", EnvVars: []string{"DRILL_SERVER"}, Usage: "base URL of the drill API"},
			&cli.StringFlag{Name: "api-key", EnvVars: []string{"DRILL_API_KEY"}, Usage: "key sent as bearer token and apikey header"},
			&cli.StringFlag{Name: "subject", Required: true},
			&cli.StringFlag{Name: "subtopic", Required: true},
			&cli.StringFlag{Name: "difficulty", Value: string(quiz.Intermediate), Usage: "Beginner, Intermediate or Advanced"},
			&cli.StringFlag{Name: "confidence", Value: string(quiz.ReadyToMaster), Usage: "Vague, Got the Basics or Ready to Master"},
			&cli.IntFlag{Name: "count", Value: 10, Usage: "number of questions (5, 10, 15 or 20)"},
			&cli.StringFlag{Name: "type", Value: string(quiz.Conceptual), Usage: "conceptual or problem-solving"},
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config.InitLogger(config.LogSettings{Level: c.String("log-level"), Format: "text"})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	cfg := quiz.DrillConfig{
		Subject:       c.String("subject"),
		Subtopic:      c.String("subtopic"),
		Difficulty:    quiz.Difficulty(c.String("difficulty")),
		Confidence:    quiz.Confidence(c.String("confidence")),
		QuestionCount: c.Int("count"),
		QuestionType:  quiz.QuestionType(c.String("type")),
	}

	client := drill.NewClient(c.String("server"), drill.WithAPIKey(c.String("api-key")))

	fmt.Fprintf(c.App.Writer, "Generating questions for %s: %s...\n", cfg.Subject, cfg.Subtopic)
	session, err := drill.Start(ctx, cfg, client, client)
	if err != nil {
		return err
	}
	return drill.RunInteractive(ctx, session, os.Stdin, c.App.Writer)
}
