package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"marquee/internal/catalog"
)

var movieHeaders = []string{"#", "Title", "Year", "Rating", "Poster"}

var movieAligns = []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func posterLabel(url string) string {
	if url == "" {
		return "-"
	}
	return url
}

func writeMovies(out io.Writer, movies []catalog.Movie, empty string) {
	if len(movies) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	rows := make([][]string, 0, len(movies))
	for i, movie := range movies {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			movie.Title,
			strconv.Itoa(movie.Year),
			formatRating(movie.Rating),
			posterLabel(movie.PosterURL),
		})
	}
	fmt.Fprintln(out, renderTable(movieHeaders, rows, movieAligns))
	fmt.Fprintf(out, "%d %s\n", len(movies), plural(len(movies), "movie", "movies"))
}

func describeMovie(movie catalog.Movie) string {
	return fmt.Sprintf("%s (%d), rated %s", movie.Title, movie.Year, formatRating(movie.Rating))
}

func writeStats(out io.Writer, stats catalog.Stats) {
	rows := [][]string{
		{"Movies", strconv.Itoa(stats.Count)},
		{"Average rating", strconv.FormatFloat(stats.Average, 'f', 2, 64)},
		{"Median rating", strconv.FormatFloat(stats.Median, 'f', 2, 64)},
		{"Best", titles(stats.Best)},
		{"Worst", titles(stats.Worst)},
	}
	fmt.Fprintln(out, renderTable([]string{"Statistic", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
}

func titles(movies []catalog.Movie) string {
	parts := make([]string, len(movies))
	for i, movie := range movies {
		parts[i] = fmt.Sprintf("%s (%s)", movie.Title, formatRating(movie.Rating))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
