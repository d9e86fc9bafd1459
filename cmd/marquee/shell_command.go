package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/logging"
	"marquee/internal/services"
)

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

type shellSession struct {
	ctx    context.Context
	ops    *operations
	out    io.Writer
	reader *bufio.Reader
}

type shellAction struct {
	label string
	run   func(s *shellSession) error
}

// shellActions is the menu dispatch table. Keys are what the user types;
// each action also answers to its lower-cased label.
var shellActions = map[string]shellAction{
	"0":  {label: "Exit", run: shellExit},
	"1":  {label: "List movies", run: shellList},
	"2":  {label: "Add movie", run: shellAdd},
	"3":  {label: "Delete movie", run: shellDelete},
	"4":  {label: "Update movie", run: shellUpdate},
	"5":  {label: "Stats", run: shellStats},
	"6":  {label: "Random movie", run: shellRandom},
	"7":  {label: "Search movie", run: shellSearch},
	"8":  {label: "Movies sorted by rating", run: shellSort},
	"9":  {label: "Generate website", run: shellGenerate},
	"10": {label: "Add movie manually", run: shellAddManual},
}

var shellAliases = map[string]string{
	"q": "0", "quit": "0", "exit": "0",
	"list": "1", "ls": "1",
	"add": "2",
	"delete": "3", "rm": "3",
	"update": "4",
	"stats": "5",
	"random": "6",
	"search": "7",
	"sort": "8",
	"generate": "9",
	"manual": "10",
}

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu over the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, cctx, err := ctx.operations(cmd)
			if err != nil {
				return err
			}
			session := &shellSession{
				ctx:    cctx,
				ops:    ops,
				out:    cmd.OutOrStdout(),
				reader: bufio.NewReader(cmd.InOrStdin()),
			}
			return session.loop()
		},
	}
}

func (s *shellSession) loop() error {
	fmt.Fprintln(s.out, "********** My Movies Database **********")
	for {
		s.printMenu()
		choice, err := prompt(s.out, s.reader, "Enter choice")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		action, ok := lookupShellAction(choice)
		if !ok {
			fmt.Fprintf(s.out, "Invalid choice %q\n", choice)
			continue
		}
		err = action.run(s)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			s.report(err)
		}
	}
}

func lookupShellAction(choice string) (shellAction, bool) {
	key := strings.ToLower(strings.TrimSpace(choice))
	if alias, ok := shellAliases[key]; ok {
		key = alias
	}
	action, ok := shellActions[key]
	return action, ok
}

func (s *shellSession) printMenu() {
	keys := make([]string, 0, len(shellActions))
	for key := range shellActions {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	fmt.Fprintln(s.out, "\nMenu:")
	for _, key := range keys {
		fmt.Fprintf(s.out, "%2s. %s\n", key, shellActions[key].label)
	}
}

// report prints err and keeps the session alive.
func (s *shellSession) report(err error) {
	s.ops.logger.WarnContext(s.ctx, "shell action failed",
		logging.String("error_kind", services.Kind(err)),
		logging.Error(err),
	)
	if services.IsUserError(err) {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintln(s.out, formatError(err))
}

func shellExit(s *shellSession) error {
	if confirm(s.out, s.reader, "Are you sure you want to quit?") {
		return errQuit
	}
	return nil
}

func shellList(s *shellSession) error {
	movies, err := s.ops.list(s.ctx)
	if err != nil {
		return err
	}
	writeMovies(s.out, movies, "No movies yet.")
	return nil
}

func shellAdd(s *shellSession) error {
	title, err := prompt(s.out, s.reader, "Movie title")
	if err != nil {
		return err
	}
	movie, err := s.ops.add(s.ctx, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added %s\n", describeMovie(movie))
	return nil
}

func shellAddManual(s *shellSession) error {
	title, err := prompt(s.out, s.reader, "Movie title")
	if err != nil {
		return err
	}
	rawYear, err := prompt(s.out, s.reader, "Year")
	if err != nil {
		return err
	}
	year, err := parseYear(rawYear)
	if err != nil {
		return err
	}
	rawRating, err := prompt(s.out, s.reader, "Rating (0-10)")
	if err != nil {
		return err
	}
	rating, err := parseRating(rawRating)
	if err != nil {
		return err
	}
	poster, err := prompt(s.out, s.reader, "Poster URL (optional)")
	if err != nil {
		return err
	}
	movie, err := s.ops.addManual(s.ctx, catalog.Movie{Title: title, Year: year, Rating: rating, PosterURL: poster})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added %s\n", describeMovie(movie))
	return nil
}

func shellDelete(s *shellSession) error {
	title, err := prompt(s.out, s.reader, "Movie title to delete")
	if err != nil {
		return err
	}
	if !confirm(s.out, s.reader, fmt.Sprintf("Are you sure you want to delete %q?", title)) {
		fmt.Fprintln(s.out, "Cancelled")
		return nil
	}
	if err := s.ops.remove(s.ctx, title); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted %s\n", title)
	return nil
}

func shellUpdate(s *shellSession) error {
	title, err := prompt(s.out, s.reader, "Movie title")
	if err != nil {
		return err
	}
	rawRating, err := prompt(s.out, s.reader, "New rating (0-10)")
	if err != nil {
		return err
	}
	rating, err := parseRating(rawRating)
	if err != nil {
		return err
	}
	movie, err := s.ops.update(s.ctx, title, rating)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Updated %s\n", describeMovie(movie))
	return nil
}

func shellStats(s *shellSession) error {
	stats, err := s.ops.stats(s.ctx)
	if err != nil {
		return err
	}
	writeStats(s.out, stats)
	return nil
}

func shellRandom(s *shellSession) error {
	movie, err := s.ops.random(s.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Your movie for tonight: %s\n", describeMovie(movie))
	return nil
}

func shellSearch(s *shellSession) error {
	fragment, err := prompt(s.out, s.reader, "Part of the title")
	if err != nil {
		return err
	}
	movies, err := s.ops.search(s.ctx, fragment)
	if err != nil {
		return err
	}
	writeMovies(s.out, movies, fmt.Sprintf("No movies match %q.", fragment))
	return nil
}

func shellSort(s *shellSession) error {
	movies, err := s.ops.sorted(s.ctx)
	if err != nil {
		return err
	}
	writeMovies(s.out, movies, "No movies yet.")
	return nil
}

func shellGenerate(s *shellSession) error {
	name, err := prompt(s.out, s.reader, fmt.Sprintf("Collection name [%s]", s.ops.siteName))
	if err != nil {
		return err
	}
	result, err := s.ops.generate(s.ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Website generated at %s\n", result.PagePath)
	return nil
}
