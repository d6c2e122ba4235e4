package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

// Engine is the searching side of a UCI engine built on the rules library.
type Engine interface {
	Clear()
	// Search returns nil when it was cancelled or has no move.
	Search(ctx context.Context, game *chess.Game, limits Limits) *chess.Move
}

type Limits struct {
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	Depth          int
	Infinite       bool
}

// Protocol serves the engine side of UCI.
type Protocol struct {
	name     string
	author   string
	version  string
	options  []Option
	engine   Engine
	game     *chess.Game
	out      io.Writer
	thinking bool
	bestMove chan *chess.Move
	cancel   context.CancelFunc
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		game:    chess.NewGame(chess.UseNotation(chess.UCINotation{})),
	}
}

// Run reads commands from in until quit or end of input.
func (uci *Protocol) Run(in io.Reader, out io.Writer) {
	uci.out = out
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	for {
		select {
		case move := <-uci.bestMove:
			if move != nil {
				fmt.Fprintf(uci.out, "bestmove %v\n", FromChess(move))
			} else {
				fmt.Fprintln(uci.out, "bestmove (none)")
			}
			uci.thinking = false
			uci.cancel()
			uci.cancel = nil
			uci.bestMove = nil
		case commandLine, ok := <-commands:
			if !ok {
				if uci.cancel != nil {
					uci.cancel()
				}
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				log.Warn().Err(err).Str("command", commandLine).Msg("uci-command")
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		if commandName == "stop" {
			uci.cancel()
			return nil
		}
		if commandName == "isready" {
			return uci.isReadyCommand(fields)
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		return nil
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	if uci.version != "" {
		fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	} else {
		fmt.Fprintf(uci.out, "id name %s\n", uci.name)
	}
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	var valueIndex = findIndexString(fields, "value")
	if len(fields) < 2 || fields[0] != "name" || valueIndex < 2 {
		return errors.New("invalid setoption arguments")
	}
	var name = strings.Join(fields[1:valueIndex], " ")
	var value = strings.Join(fields[valueIndex+1:], " ")
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var movesIndex = findIndexString(fields, "moves")
	var opts = []func(*chess.Game){chess.UseNotation(chess.UCINotation{})}
	switch fields[0] {
	case "startpos":
	case "fen":
		var fen string
		if movesIndex == -1 {
			fen = strings.Join(fields[1:], " ")
		} else {
			fen = strings.Join(fields[1:movesIndex], " ")
		}
		var fenOption, err = chess.FEN(fen)
		if err != nil {
			return err
		}
		opts = append(opts, fenOption)
	default:
		return errors.New("unknown position command")
	}
	var game = chess.NewGame(opts...)
	if movesIndex >= 0 {
		for _, smove := range fields[movesIndex+1:] {
			if err := game.MoveStr(smove); err != nil {
				return fmt.Errorf("parse move failed: %w", err)
			}
		}
	}
	uci.game = game
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var limits = parseLimits(fields)
	var ctx, cancel = context.WithCancel(context.Background())
	var game = uci.game.Clone()
	uci.cancel = cancel
	uci.thinking = true
	uci.bestMove = make(chan *chess.Move, 1)
	go func(result chan<- *chess.Move) {
		result <- uci.engine.Search(ctx, game, limits)
	}(uci.bestMove)
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	return nil
}

func parseLimits(args []string) (result Limits) {
	for i := 0; i+1 < len(args); i++ {
		switch args[i] {
		case "wtime":
			result.WhiteTime, _ = strconv.Atoi(args[i+1])
			i++
		case "btime":
			result.BlackTime, _ = strconv.Atoi(args[i+1])
			i++
		case "winc":
			result.WhiteIncrement, _ = strconv.Atoi(args[i+1])
			i++
		case "binc":
			result.BlackIncrement, _ = strconv.Atoi(args[i+1])
			i++
		case "depth":
			result.Depth, _ = strconv.Atoi(args[i+1])
			i++
		case "movetime":
			result.MoveTime, _ = strconv.Atoi(args[i+1])
			i++
		}
	}
	for _, arg := range args {
		if arg == "infinite" {
			result.Infinite = true
		}
	}
	return
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
