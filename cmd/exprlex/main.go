package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xiam/exprlex/lexer"
)

const sample = `my_variable = 3 + 4 * (5 - 2)`

var (
	flagSkipWhitespace = flag.Bool("skip-ws", false, "drop whitespace tokens from the output")
	flagDump           = flag.Bool("dump", false, "dump tokens with their positions")
)

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	buf, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	if len(buf) == 0 {
		return sample, nil
	}
	return string(buf), nil
}

func run(w io.Writer, in string, skipWhitespace bool, dump bool) error {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return err
	}

	if skipWhitespace {
		tokens = lexer.WithoutWhitespace(tokens)
	}

	if dump {
		spew.Fdump(w, tokens)
		return nil
	}

	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("exprlex: ")

	flag.Parse()

	in, err := readInput(flag.Args(), os.Stdin)
	if err != nil {
		log.Fatal("read input: ", err)
	}

	if err := run(os.Stdout, in, *flagSkipWhitespace, *flagDump); err != nil {
		var invalid *lexer.InvalidCharacterError
		if errors.As(err, &invalid) {
			line, col := invalid.Pos()
			log.Fatalf("lexer.Tokenize: %v (line %d, column %d)", err, line, col)
		}
		log.Fatal("lexer.Tokenize: ", err)
	}
}
