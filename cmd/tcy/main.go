// Command tcy rewrites a manuscript for vertical display. With a file
// argument any supported format (.html, .md, .txt, .csv, .docx, .pdf)
// is converted first; without one, HTML is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lostandfound/tcy"
	"github.com/lostandfound/tcy/internal/parser"
)

func main() {
	digit := flag.Int("digit", 2, "longest digit run converted to tate-chu-yoko (0 disables)")
	orientation := flag.Bool("orientation", true, "pin rotation-sensitive symbols sideways/upright")
	output := flag.String("o", "", "output file (default stdout)")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	var log *slog.Logger
	if *verbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	html, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "tcy:", err)
		os.Exit(1)
	}

	engine := tcy.New(tcy.Config{
		TCYDigit:            *digit,
		AutoTextOrientation: *orientation,
	}, log)
	out := engine.Transform(html)

	if *output == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "tcy:", err)
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, html, err := parser.Convert(f, args[0])
	if err != nil {
		return "", err
	}
	return html, nil
}
