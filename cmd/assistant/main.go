package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/okravchuk/assistant/internal/book"
	"github.com/okravchuk/assistant/internal/commands"
	"github.com/okravchuk/assistant/internal/config"
	"github.com/okravchuk/assistant/internal/graph"
	"github.com/okravchuk/assistant/internal/logging"
	"github.com/okravchuk/assistant/internal/storage"
)

func main() {
	var (
		dataPath  = flag.String("data", "", "Path to the address book snapshot (overrides ADDRESSBOOK_PATH)")
		noPersist = flag.Bool("no-persist", false, "Keep the address book in memory only")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Storage.Path = *dataPath
	}
	if *noPersist {
		cfg.Storage.Backend = config.BackendMemory
	}

	logger := logging.New(cfg.Logging)
	ctx := context.Background()

	store, err := buildStore(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("closing store failed", "error", err)
		}
	}()

	b, err := store.Load(ctx)
	if err != nil {
		logger.Error("failed to load address book", "error", err)
		os.Exit(1)
	}

	table := commands.NewSet(cfg.Birthdays.WindowDays).Commands()

	fmt.Println("Welcome to the assistant bot!")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter a command: ")
		if !scanner.Scan() {
			break
		}
		name, args := parseInput(scanner.Text())

		switch name {
		case "":
			continue
		case "close", "exit":
			persist(ctx, logger, store, b)
			fmt.Println("Good bye!")
			return
		case "hello":
			fmt.Println("How can I help you?")
			continue
		}

		cmd, ok := table[name]
		if !ok {
			fmt.Println("Invalid command.")
			continue
		}

		message, err := cmd.Run(args, b)
		if err != nil {
			fmt.Println(commands.Render(err))
			continue
		}
		fmt.Println(message)
		if cmd.Mutating {
			persist(ctx, logger, store, b)
		}
	}

	// stdin closed; save as if the user typed exit
	fmt.Println()
	persist(ctx, logger, store, b)
	fmt.Println("Good bye!")
}

// persist saves the book and keeps the REPL alive on failure: the error is
// surfaced, not swallowed, but losing one save must not kill the session.
func persist(ctx context.Context, logger *slog.Logger, store storage.Store, b *book.Book) {
	if err := store.Save(ctx, b); err != nil {
		logger.Error("failed to save address book", "error", err)
		fmt.Println("Warning: your changes could not be saved.")
	}
}

// parseInput splits a line into a lowercased command word and its arguments.
func parseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

func buildStore(ctx context.Context, logger *slog.Logger, cfg config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendGraph:
		client, err := graph.NewClient(ctx, graph.Options{
			URI:            cfg.Storage.Graph.URI,
			Database:       cfg.Storage.Graph.Database,
			Username:       cfg.Storage.Graph.Username,
			Password:       cfg.Storage.Graph.Password,
			MaxConnections: cfg.Storage.Graph.MaxConnections,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewGraphStore(client, logger), nil
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.Storage.Path, logger), nil
	}
}
