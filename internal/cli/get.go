package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/books"
)

// GetCommand prints a previously saved book.
type GetCommand struct {
	ID  string
	Out io.Writer

	id uuid.UUID
}

func NewGetCommand() *GetCommand {
	return &GetCommand{Out: os.Stdout}
}

func (cmd *GetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)

	fs.StringVar(&cmd.ID, "id", "", "Book id (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s get -id <uuid>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print a saved book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID == "" {
		return fmt.Errorf("required flag -id not provided")
	}

	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("invalid -id %q: %w", cmd.ID, err)
	}
	cmd.id = id

	return nil
}

func (cmd *GetCommand) Run(ctx context.Context, repo books.Reader) error {
	book, err := repo.Get(ctx, cmd.id)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "ID:        %s\n", book.ID)
	fmt.Fprintf(cmd.Out, "Title:     %s\n", book.Title)
	fmt.Fprintf(cmd.Out, "Author:    %s\n", book.Author)
	fmt.Fprintf(cmd.Out, "Published: %s\n", book.PublishingDate.Format(DateLayout))
	return nil
}
