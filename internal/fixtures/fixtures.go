// Package fixtures loads the mock chats, messages and voice effects the
// messenger displays.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saravenpi/wore/internal/models"
)

//go:embed data/messenger.yml
var defaultDocument []byte

// ErrInvalidData wraps every validation failure.
var ErrInvalidData = errors.New("invalid messenger data")

const defaultMe = "Ты"

type Data struct {
	Me       string               `yaml:"me"`
	Chats    []models.Chat        `yaml:"chats"`
	Messages []models.Message     `yaml:"messages"`
	Effects  []models.VoiceEffect `yaml:"effects"`
}

// Default returns the data set bundled with the binary.
func Default() (*Data, error) {
	data, err := Parse(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled data: %w", err)
	}
	return data, nil
}

// Load reads a data file, or the bundled data when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes and validates a YAML document.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.Me == "" {
		data.Me = defaultMe
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks id uniqueness and enum values across the document.
// Messages must point at a known chat.
func (d *Data) Validate() error {
	chatIDs := make(map[string]bool, len(d.Chats))
	for _, c := range d.Chats {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		if chatIDs[c.ID] {
			return fmt.Errorf("%w: duplicate chat id %s", ErrInvalidData, c.ID)
		}
		chatIDs[c.ID] = true
	}

	msgIDs := make(map[string]bool, len(d.Messages))
	for _, m := range d.Messages {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		if !chatIDs[m.ChatID] {
			return fmt.Errorf("%w: message %s references unknown chat %q", ErrInvalidData, m.ID, m.ChatID)
		}
		if msgIDs[m.ID] {
			return fmt.Errorf("%w: duplicate message id %s", ErrInvalidData, m.ID)
		}
		msgIDs[m.ID] = true
	}

	effectIDs := make(map[string]bool, len(d.Effects))
	for _, e := range d.Effects {
		if e.ID == "" {
			return fmt.Errorf("%w: effect %q has no id", ErrInvalidData, e.Name)
		}
		if effectIDs[e.ID] {
			return fmt.Errorf("%w: duplicate effect id %s", ErrInvalidData, e.ID)
		}
		effectIDs[e.ID] = true
	}
	return nil
}

// MessagesByChat groups messages by chat id, keeping document order.
func (d *Data) MessagesByChat() map[string][]models.Message {
	out := make(map[string][]models.Message, len(d.Chats))
	for _, m := range d.Messages {
		out[m.ChatID] = append(out[m.ChatID], m)
	}
	return out
}
