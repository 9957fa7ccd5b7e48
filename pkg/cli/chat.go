package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/cli/config"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/service/connectivity"
	"github.com/minterminds/chatfront/pkg/usecase"
	"github.com/minterminds/chatfront/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdChat() *cli.Command {
	var (
		backendCfg config.Backend
		storageCfg config.Storage
		sentryCfg  config.Sentry

		message    string
		noGreeting bool
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "Send a single message and exit (if not provided, interactive mode starts)",
				Destination: &message,
			},
			&cli.BoolFlag{
				Name:        "no-greeting",
				Usage:       "Skip the synthetic welcome greeting",
				Destination: &noGreeting,
			},
		},
		backendCfg.Flags(),
		storageCfg.Flags(),
		sentryCfg.Flags(),
	)

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Talk to the conversational backend",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			repo, closeRepo, err := storageCfg.Configure(ctx)
			defer closeRepo()
			if err != nil {
				return err
			}

			monitor := connectivity.New(client, connectivity.WithInterval(backendCfg.HealthInterval()))
			uc := usecase.New(repo, client, monitor, usecase.WithGreeting(!noGreeting))
			if err := uc.Init(ctx); err != nil {
				return goerr.Wrap(err, "failed to initialize session")
			}
			defer uc.Close()

			if message != "" {
				return runSingleMessage(ctx, uc, message)
			}
			return runInteractiveMode(ctx, uc)
		},
	}
}

func runSingleMessage(ctx context.Context, uc *usecase.UseCases, message string) error {
	before := len(uc.Snapshot().Messages)
	uc.SendMessage(ctx, message)

	snap := uc.Snapshot()
	if snap.LastError != "" {
		return goerr.New(snap.LastError)
	}
	printNewTurns(snap, before)
	return nil
}

func runInteractiveMode(ctx context.Context, uc *usecase.UseCases) error {
	logger := logging.From(ctx)
	logger.Debug("starting interactive chat", "session_id", uc.SessionID())

	snap := uc.Snapshot()
	if !snap.IsOnline {
		fmt.Println("📡 The backend is unreachable. Messages are disabled until it recovers.")
	}
	for _, m := range snap.Messages {
		printTurn(m)
	}
	fmt.Println("💬 Type your message. Commands: /clear, /capture, /suggest, exit")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println("\n👋 Session ended.")
				return nil
			}
			return goerr.Wrap(err, "failed to read input")
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue

		case input == "exit" || input == "quit":
			fmt.Println("👋 Session ended.")
			return nil

		case input == "/clear":
			uc.ClearChat(ctx)
			fmt.Println("🧹 Chat cleared. New session:", uc.SessionID())

		case input == "/capture":
			uc.OpenCaptureForm()
			runCaptureForm(ctx, uc, reader)

		case input == "/suggest":
			for _, s := range uc.QuickReplies() {
				fmt.Println("  💡", s)
			}

		default:
			before := len(uc.Snapshot().Messages)
			uc.SendMessage(ctx, input)

			snap := uc.Snapshot()
			if !snap.IsOnline {
				fmt.Println("📡 Offline: the message was not sent.")
				continue
			}
			printNewTurns(snap, before)

			if snap.ShowCaptureForm {
				runCaptureForm(ctx, uc, reader)
			}
		}
	}
}

func printNewTurns(snap usecase.Snapshot, since int) {
	for _, m := range snap.Messages[since:] {
		printTurn(m)
	}
}

func printTurn(m *chat.Message) {
	switch {
	case m.Sender == types.SenderUser:
		fmt.Println("🧑", m.Text)
	case m.IsError:
		fmt.Println("⚠️ ", m.Text)
	default:
		fmt.Println("🤖", m.Text)
	}
}

// runCaptureForm collects lead contact details. An empty name dismisses the
// form; a failed submission keeps it open for another attempt.
func runCaptureForm(ctx context.Context, uc *usecase.UseCases, reader *bufio.Reader) {
	fmt.Println("📇 We'd love to stay in touch. Leave empty to skip.")

	for {
		sub := &lead.Submission{
			Name:     promptField(reader, "Name"),
			Email:    promptField(reader, "Email"),
			Phone:    promptField(reader, "Phone (optional)"),
			Category: types.LeadCategory(promptField(reader, "Category [services|trainings|careers|general]")),
		}
		if strings.TrimSpace(sub.Name) == "" {
			uc.DismissCaptureForm()
			fmt.Println("👌 No problem, carrying on.")
			return
		}

		sub.Normalize()
		if err := sub.Validate(); err != nil {
			fmt.Println("✋", err.Error())
			continue
		}

		if err := uc.CaptureLead(ctx, sub); err != nil {
			fmt.Println("⚠️  Could not submit, please try again:", err.Error())
			continue
		}

		snap := uc.Snapshot()
		if n := len(snap.Messages); n > 0 {
			printTurn(snap.Messages[n-1])
		}
		return
	}
}

func promptField(reader *bufio.Reader, label string) string {
	fmt.Printf("  %s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
