package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saravenpi/wore/internal/chat"
	"github.com/saravenpi/wore/internal/config"
	"github.com/saravenpi/wore/internal/effects"
	"github.com/saravenpi/wore/internal/fixtures"
	"github.com/saravenpi/wore/internal/logger"
	"github.com/saravenpi/wore/internal/outbox"
	"github.com/saravenpi/wore/internal/ui"
)

const version = "1.0.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "-v", "--version":
			fmt.Printf("Wore v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		case "effects":
			if err := printEffects(config.Load()); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Printf("Unknown command: %s\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	if err := run(config.Load()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log, err := logger.Open(cfg.Logging.File, logger.Config{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.Format == "json",
	})
	if err != nil {
		return err
	}
	defer log.Close()

	data, err := fixtures.Load(cfg.Data.File)
	if err != nil {
		log.LogError(err, "failed to load messenger data", "path", cfg.Data.File)
		return err
	}
	log.Info("messenger data loaded",
		"source", dataSource(cfg.Data.File),
		"chats", len(data.Chats),
		"messages", len(data.Messages),
		"effects", len(data.Effects),
	)

	box := outbox.New(data.Me, data.Chats, data.MessagesByChat())
	session := chat.NewSession(data.Chats, box)

	panel := effects.NewPanel(data.Effects)
	panel.SetVolume(cfg.Effects.Volume)
	panel.SetSpeed(cfg.Effects.Speed)
	panel.SetPitch(cfg.Effects.Pitch)

	model := ui.NewMessengerModel(ui.Deps{
		Session: session,
		Panel:   panel,
		Outbox:  box,
		Log:     log,
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		log.LogError(err, "program exited with error")
		return err
	}
	log.Info("program exited")
	return nil
}

func dataSource(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}

func printEffects(cfg *config.Config) error {
	data, err := fixtures.Load(cfg.Data.File)
	if err != nil {
		return err
	}
	for _, e := range data.Effects {
		fmt.Printf("%-10s %-12s %s\n", e.ID, e.Name, e.Description)
	}
	return nil
}

func printHelp() {
	help := `Wore - Terminal Messenger

Usage:
  wore               Start the messenger
  wore effects       List available voice effects
  wore version       Show version information
  wore help          Show this help message

Chats:
  ↑/↓ or j/k        Navigate chats
  Enter             Open chat
  /                 Search chats
  [ and ]           Switch between all chats and contacts
  Tab               Move to the composer
  q                 Quit

Composer:
  Enter             Send message
  ctrl+r            Start/stop voice recording
  ctrl+e            Show/hide voice effects (while recording)
  PgUp/PgDn         Scroll messages
  Tab or Esc        Back to chats

Voice effects:
  Arrows            Move between effects and sliders
  Enter or Space    Apply effect
  ←/→ on a slider   Adjust volume, speed or pitch
  Esc               Close panel

Configuration (environment or .env):
  WORE_DATA_FILE        YAML file with chats, messages and effects
  WORE_LOG_FILE         Write logs to this file
  WORE_LOG_LEVEL        debug, info, warn or error
  WORE_LOG_FORMAT       text or json
  WORE_DEFAULT_VOLUME   Initial volume (0-100)
  WORE_DEFAULT_SPEED    Initial speed (50-200)
  WORE_DEFAULT_PITCH    Initial pitch (50-200)
  WORE_ALT_SCREEN       Use the alternate screen (default true)

Notes:
  - Chats and messages are mock data; nothing is sent over the network
  - Voice recording is simulated; no audio is captured
`
	fmt.Print(help)
}
