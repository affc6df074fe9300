// Package cli implements the line-oriented todo interpreter.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/AnumEjaz1/todo/internal/service"
)

const prompt = "\n> "

var (
	// errQuit ends the loop after an explicit quit or exit.
	errQuit = errors.New("quit")
	// errInputClosed ends the loop on end of input or cancellation.
	errInputClosed = errors.New("input closed")
)

type Interpreter struct {
	service  *service.TaskService
	registry *Registry
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger

	lines <-chan string
}

func New(svc *service.TaskService, in io.Reader, out io.Writer, logger *zap.Logger) *Interpreter {
	it := &Interpreter{
		service: svc,
		in:      in,
		out:     out,
		logger:  logger,
	}
	it.registry = it.commands()
	return it
}

// Run prints the banner and processes lines until quit, end of input or ctx
// cancellation. Every ending prints the farewell; none is an error.
func (it *Interpreter) Run(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)
	it.lines = it.readLines(done)

	fmt.Fprintln(it.out, "Welcome to the Todo App!")
	fmt.Fprintf(it.out, "Available commands: %s\n", strings.Join(it.registry.Names(), ", "))

	for {
		fmt.Fprint(it.out, prompt)
		line, err := it.readLine(ctx)
		if err == nil {
			err = it.execute(ctx, line)
		}

		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			it.logger.Debug("interpreter stopped by command")
			return
		case errors.Is(err, errInputClosed):
			fmt.Fprintln(it.out, "\nGoodbye!")
			it.logger.Debug("interpreter stopped", zap.Error(context.Cause(ctx)))
			return
		default:
			it.logger.Error("command failed", zap.Error(err))
		}
	}
}

// execute handles a single input line.
func (it *Interpreter) execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	keyword, args := splitKeyword(line)
	cmd, ok := it.registry.Find(keyword)
	if !ok || (cmd.NoArgs && args != "") {
		fmt.Fprintf(it.out, "Unknown command: %s. Type 'help' for available commands.\n", strings.ToLower(line))
		return nil
	}
	if !cmd.NoArgs && args == "" {
		fmt.Fprintln(it.out, cmd.Usage)
		return nil
	}

	it.logger.Debug("dispatch", zap.String("command", cmd.Name))
	return cmd.Run(ctx, args)
}

func (it *Interpreter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", errInputClosed
	case line, ok := <-it.lines:
		if !ok {
			return "", errInputClosed
		}
		return line, nil
	}
}

// readLines feeds input lines to a channel so a blocked read never delays
// cancellation. Lines have no length limit. The channel is closed at end of
// input.
func (it *Interpreter) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(it.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" || err == nil {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					it.logger.Warn("reading input", zap.Error(err))
				}
				return
			}
		}
	}()
	return lines
}
