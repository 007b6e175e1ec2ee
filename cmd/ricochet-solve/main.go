// Command ricochet-solve runs the Ricochet Robots solver as a line-oriented
// JSON protocol over stdin/stdout, or prints recorded run history.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomas-reyes/ricochet/internal/book"
	"github.com/tomas-reyes/ricochet/internal/cli"
	"github.com/tomas-reyes/ricochet/internal/solver"
	"github.com/tomas-reyes/ricochet/internal/store"
)

var bookPath string

func main() {
	root := &cobra.Command{
		Use:   "ricochet-solve",
		Short: "Solve Ricochet Robots puzzles over a JSON protocol",
	}
	root.PersistentFlags().StringVar(&bookPath, "book", "", "path to a saved solved-position book")

	root.AddCommand(newSolveCommand(), newHistoryCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Read solve requests from stdin, write solutions to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve()
		},
	}
}

func runSolve() error {
	b := loadBook()

	dbDir, err := store.DatabaseDir()
	if err != nil {
		log.Printf("[ricochet-solve] run history disabled: %v", err)
	}
	var st *store.Store
	if err == nil {
		st, err = store.Open(dbDir)
		if err != nil {
			log.Printf("[ricochet-solve] run history disabled: %v", err)
		} else {
			defer st.Close()
		}
	}

	oracles, err := solver.NewOracleCache(1024)
	if err != nil {
		log.Printf("[ricochet-solve] oracle cache disabled: %v", err)
	} else {
		defer oracles.Close()
	}

	handler := &cli.Handler{Book: b, Store: st, Oracles: oracles}
	return handler.Run(os.Stdin, os.Stdout)
}

func loadBook() *book.Book {
	if bookPath == "" {
		return book.New()
	}
	f, err := os.Open(bookPath)
	if err != nil {
		log.Printf("[ricochet-solve] starting with an empty book: %v", err)
		return book.New()
	}
	defer f.Close()

	b, err := book.Load(f)
	if err != nil {
		log.Printf("[ricochet-solve] failed to load book %s: %v", bookPath, err)
		return book.New()
	}
	log.Printf("[ricochet-solve] loaded %d book entries from %s", b.Size(), bookPath)
	return b
}

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print recorded solve-run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbDir, err := store.DatabaseDir()
			if err != nil {
				return err
			}
			st, err := store.Open(dbDir)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.History()
			if err != nil {
				return err
			}
			for _, run := range runs {
				fmt.Printf("%s\t%s\t%s\t%d moves\t%s\n", run.SolvedAt.Format("2006-01-02 15:04:05"), run.Solver, run.Target, run.PathLength, run.Elapsed)
			}
			return nil
		},
	}
}
