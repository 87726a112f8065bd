// Command nbprint renders a YAML or JSON value as notebook markup.
//
// Sequences are rendered as arrays, so a nested list becomes a LaTeX matrix:
//
//	echo '[[1, 2], ["a", true]]' | nbprint -format markdown
//
// Scalars are written as literal text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/nbprint"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("nbprint: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nbprint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	filePath := fs.String("file", "", "Path to a YAML or JSON value (default stdin)")
	format := fs.String("format", "markdown", "Output format: markdown, html")
	configPath := fs.String("config", "", "Path to a YAML config file")
	quote := fs.Bool("quote", true, "Quote string elements")
	tt := fs.Bool("tt", true, "Set string elements in typewriter face")
	bare := fs.Bool("tex", false, "Print the bare LaTeX matrix without math delimiters")
	outFile := fs.String("out", "", "Write output to file instead of stdout")
	verbose := fs.Bool("v", false, "Log progress to stderr")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage:
  nbprint [flags] < value.yaml
  nbprint -file matrix.json -format html -out cell.html

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintf(stdout, "nbprint %s\n", version)
		return err
	}

	logger := log.New(io.Discard, "nbprint: ", 0)
	if *verbose {
		logger.SetOutput(stderr)
	}

	f, err := nbprint.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfg := nbprint.DefaultConfig()
	if *configPath != "" {
		cf, err := os.Open(*configPath)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		defer cf.Close()
		if cfg, err = nbprint.LoadConfig(cf); err != nil {
			return err
		}
		logger.Printf("loaded config %s: %+v", *configPath, cfg)
	}
	// Flags override the config file only when given explicitly.
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "quote":
			cfg.QuoteStrings = *quote
		case "tt":
			cfg.StringsInTypefont = *tt
		}
	})

	in := stdin
	if *filePath != "" {
		file, err := os.Open(*filePath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()
		in = file
	}
	var value any
	if err := yaml.NewDecoder(in).Decode(&value); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing input: %w", err)
	}
	logger.Printf("decoded %T", value)

	opt := nbprint.WithConfig(cfg)
	if *outFile == "" {
		return render(stdout, f, value, *bare, opt)
	}
	of, err := os.Create(*outFile)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := render(of, f, value, *bare, opt); err != nil {
		of.Close()
		return err
	}
	if err := of.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// render writes value to out. Sequences are formatted as arrays; with bare
// set, the matrix is written without math delimiters.
func render(out io.Writer, f nbprint.Format, value any, bare bool, opt nbprint.Option) error {
	if bare {
		tex, err := nbprint.ArrayTeX(value, opt)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, tex)
		return err
	}
	if _, ok := value.([]any); ok {
		a, err := nbprint.FromValue(value)
		if err != nil {
			return err
		}
		return nbprint.Write(out, f, a, opt)
	}
	return nbprint.Write(out, f, value, opt)
}
