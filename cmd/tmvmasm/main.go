// Command tmvmasm assembles source into a flat ROM image (spec.md §6.4).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tmbytecode/tmvm/asm"
)

const version = "0.1.0"

func main() {
	var inputFile, outputFile string
	var lexOnly, showVersion bool

	flag.StringVar(&inputFile, "i", "", "input source file")
	flag.StringVar(&inputFile, "input-file", "", "input source file")
	flag.StringVar(&outputFile, "o", "", "output binary file")
	flag.StringVar(&outputFile, "output-file", "", "output binary file")
	flag.BoolVar(&lexOnly, "l", false, "print the token stream and exit")
	flag.BoolVar(&lexOnly, "lex-only", false, "print the token stream and exit")
	flag.BoolVar(&showVersion, "v", false, "print version and exit")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tmvmasm -i input.asm -o output.bin\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println("tmvmasm", version)
		os.Exit(0)
	}

	if inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}
	if outputFile == "" && !lexOnly {
		fmt.Fprintln(os.Stderr, "error: -o/--output-file is required unless -l/--lex-only is set")
		os.Exit(1)
	}

	src, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if lexOnly {
		if err := printTokens(inputFile, string(src)); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := assemble(inputFile, string(src), outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printTokens(filename, src string) error {
	lex := asm.NewLexer(filename, src)
	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %q\n", tok.Pos, tok.Kind, tok.Text)
		if tok.Kind == asm.TokEOF {
			return nil
		}
	}
}

func assemble(filename, src, outputFile string) error {
	lex := asm.NewLexer(filename, src)
	p := asm.NewParser(lex)
	root, err := p.ParseProgram()
	if err != nil {
		return err
	}

	b := asm.NewBuilder()
	if err := b.Build(root); err != nil {
		return err
	}
	for _, w := range b.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return b.SaveBinary(outputFile)
}
