package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/bookshelf/internal/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// DateLayout is the accepted format for -date.
const DateLayout = "2006-01-02"

// SaveCommand stores a new book and prints the assigned id.
type SaveCommand struct {
	Title  string
	Author string
	Date   string
	Out    io.Writer

	publishingDate time.Time
}

func NewSaveCommand() *SaveCommand {
	return &SaveCommand{Out: os.Stdout}
}

func (cmd *SaveCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author (required)")
	fs.StringVar(&cmd.Date, "date", "", "Publishing date in YYYY-MM-DD format (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s save -title <title> -author <author> -date <YYYY-MM-DD>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Save a book and print its assigned id.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s save -title \"Lord of the Rings\" -author \"J.R.R. Tolkien\" -date 1954-07-29\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Title == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	if cmd.Author == "" {
		return fmt.Errorf("required flag -author not provided")
	}
	if cmd.Date == "" {
		return fmt.Errorf("required flag -date not provided")
	}

	date, err := time.Parse(DateLayout, cmd.Date)
	if err != nil {
		return fmt.Errorf("invalid -date %q: expected YYYY-MM-DD", cmd.Date)
	}
	cmd.publishingDate = date

	return nil
}

func (cmd *SaveCommand) Run(ctx context.Context, repo books.Writer) error {
	book := &entities.Book{
		Title:          cmd.Title,
		Author:         cmd.Author,
		PublishingDate: cmd.publishingDate,
	}

	if err := repo.Save(ctx, book); err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}

	fmt.Fprintln(cmd.Out, book.ID)
	return nil
}
