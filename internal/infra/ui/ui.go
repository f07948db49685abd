// Where: cli/internal/infra/ui/ui.go
// What: UserInterface adapter over Console.
// Why: Give command handlers a narrow output surface that tests can capture.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, items []string)
}

// NewConsoleUI returns a UserInterface backed by a Console on out.
func NewConsoleUI(out io.Writer) UserInterface {
	return consoleUI{console: New(out)}
}

// NewConsoleUIWithEmoji returns a UserInterface with explicit emoji settings.
func NewConsoleUIWithEmoji(out io.Writer, emoji bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emoji)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string)    { c.console.Info(msg) }
func (c consoleUI) Warn(msg string)    { c.console.Warn(msg) }
func (c consoleUI) Success(msg string) { c.console.Success(msg) }
func (c consoleUI) Error(msg string)   { c.console.Error(msg) }

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

func (c consoleUI) List(emoji, title string, items []string) {
	c.console.BlockStart(emoji, title)
	for _, item := range items {
		c.console.ItemPlain(item)
	}
	c.console.BlockEnd()
}
