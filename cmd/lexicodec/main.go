// lexicodec is a small CLI around the codec package: it round-trips JSON
// values through a Codec so the wire format can be inspected from a
// terminal.
//
// Usage:
//
//	lexicodec encode [--paired-objects] [file]   Read JSON, print encoded bytes (Go-quoted)
//	lexicodec decode [--paired-objects] [file]   Read Go-quoted encoded bytes, print JSON
//	lexicodec compare [--paired-objects] a.json b.json   Print -1, 0, or 1
//
// If no file is given, encode and decode read from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/ccorcos/lexicodec"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	flags := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	paired := flags.Bool("paired-objects", false, "use the legacy paired object form")
	if err := flags.Parse(os.Args[2:]); err != nil {
		fatal("parse flags: %v", err)
	}

	var opts []lexicodec.Option
	if *paired {
		opts = append(opts, lexicodec.WithPairedObjectForm())
	}
	codec := lexicodec.NewJSONCodec(opts...)

	switch cmd {
	case "encode":
		runEncode(codec, flags.Args())
	case "decode":
		runDecode(codec, flags.Args())
	case "compare":
		runCompare(codec, flags.Args())
	case "version":
		fmt.Println("lexicodec 0.1.0")
	default:
		printUsage()
		os.Exit(1)
	}
}

func runEncode(codec *lexicodec.Codec, args []string) {
	data, err := readInput(args)
	if err != nil {
		fatal("read input: %v", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		fatal("parse JSON: %v", err)
	}

	enc, err := codec.Encode(value)
	if err != nil {
		slog.Error("encode failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("%q\n", enc)
}

func runDecode(codec *lexicodec.Codec, args []string) {
	data, err := readInput(args)
	if err != nil {
		fatal("read input: %v", err)
	}

	raw, err := strconv.Unquote(trimNewline(string(data)))
	if err != nil {
		fatal("input must be a Go-quoted byte string: %v", err)
	}

	value, err := codec.Decode([]byte(raw))
	if err != nil {
		slog.Error("decode failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fatal("marshal JSON: %v", err)
	}
	fmt.Println(string(out))
}

func runCompare(codec *lexicodec.Codec, args []string) {
	if len(args) != 2 {
		fatal("compare requires exactly two files")
	}

	a, err := readJSONFile(args[0])
	if err != nil {
		fatal("read %s: %v", args[0], err)
	}
	b, err := readJSONFile(args[1])
	if err != nil {
		fatal("read %s: %v", args[1], err)
	}

	result, err := codec.Compare(a, b)
	if err != nil {
		slog.Error("compare failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func readJSONFile(path string) (lexicodec.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: lexicodec <encode|decode|compare|version> [--paired-objects] [args]")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "lexicodec: "+format+"\n", args...)
	os.Exit(1)
}
