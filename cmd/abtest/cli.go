package main

import (
	"flag"
	"fmt"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

type CommandHandler struct {
	items map[string]func(args []string) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(args []string) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(args []string) error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Names() string {
	var names []string
	for name := range ch.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func (ch *CommandHandler) Execute(commandName string, args []string) error {
	handler, found := ch.items[commandName]
	if !found {
		return fmt.Errorf("command not found %v", commandName)
	}
	return handler(args)
}

// verboseFlag registers -v on flags; call apply after parsing.
func verboseFlag(flags *flag.FlagSet) (apply func()) {
	var verbose = flags.Bool("v", false, "debug logging")
	return func() {
		if *verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}
}

func mapPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		curUser, err := user.Current()
		if err != nil {
			return path
		}
		return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
	}
	return path
}

func requireFlag(flags *flag.FlagSet, value, name string) error {
	if value == "" {
		flags.Usage()
		return fmt.Errorf("-%v is required", name)
	}
	return nil
}
