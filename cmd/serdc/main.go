// Command serdc reads and writes RDF syntax, the thin CLI collaborator
// spec.md treats as external to the core library.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/knakk/serd"
)

var (
	inputSyntax  string
	outputSyntax string
	asciiOutput  bool
	lax          bool
	fullURIs     bool
	bnodePrefix  string
	chopPrefix   string
	rootURI      string
	quiet        bool
	baseURI      string
)

func main() {
	_ = godotenv.Load() // local dev defaults; missing .env is not an error

	root := &cobra.Command{
		Use:   "serdc [OPTIONS] INPUT [BASE_URI]",
		Short: "Read and write RDF syntax",
		Long:  "Read and write RDF syntax. Use - for INPUT to read from standard input.",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  run,
	}

	flags := root.Flags()
	flags.StringVarP(&inputSyntax, "input-syntax", "i", "turtle", "input syntax: turtle/ntriples/nquads/trig")
	flags.StringVarP(&outputSyntax, "output-syntax", "o", "ntriples", "output syntax: turtle/ntriples/nquads/trig")
	flags.BoolVarP(&asciiOutput, "ascii", "a", false, "write ASCII output if possible")
	flags.BoolVarP(&lax, "lax", "l", false, "lax (non-strict) parsing")
	flags.BoolVarP(&fullURIs, "full-uris", "f", false, "keep full URIs in output (don't qualify)")
	flags.StringVarP(&bnodePrefix, "bnode-prefix", "p", "", "add PREFIX to generated blank node IDs")
	flags.StringVarP(&chopPrefix, "chop-prefix", "c", "", "chop PREFIX from matching blank node IDs on output")
	flags.StringVarP(&rootURI, "root", "r", "", "keep relative URIs within ROOT_URI")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress all log output except data")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "serdc:", err)
		os.Exit(1)
	}
}

func parseSyntax(name string) (serd.Syntax, error) {
	switch name {
	case "turtle":
		return serd.Turtle, nil
	case "ntriples":
		return serd.NTriples, nil
	case "nquads":
		return serd.NQuads, nil
	case "trig":
		return serd.TriG, nil
	default:
		return 0, fmt.Errorf("unknown syntax %q", name)
	}
}

func logFunc() serd.LogFunc {
	if quiet {
		return nil
	}
	return func(domain string, level serd.LogLevel, fields serd.LogFields, message string) {
		if level <= serd.LogErr {
			glog.Errorf("%s: %d:%d: %s", domain, fields.Line, fields.Column, message)
			return
		}
		glog.Warningf("%s: %d:%d: %s", domain, fields.Line, fields.Column, message)
	}
}

func run(cmd *cobra.Command, args []string) error {
	in, err := parseSyntax(inputSyntax)
	if err != nil {
		return err
	}
	out, err := parseSyntax(outputSyntax)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		baseURI = args[1]
	}

	var r *os.File
	if args[0] == "-" {
		r = os.Stdin
	} else {
		r, err = os.Open(args[0])
		if err != nil {
			return err
		}
		defer r.Close()
	}

	env := serd.NewEnvironment()
	if baseURI != "" {
		if err := env.SetBase(serd.NewIRI(baseURI)); err != nil {
			return err
		}
	}

	sink := serd.NewByteSink(os.Stdout, 4096)
	w := serd.NewWriter(sink, env, serd.WriterOptions{
		Syntax:     out,
		Root:       iriOrNil(rootURI),
		ChopPrefix: chopPrefix,
		ASCIIOnly:  asciiOutput,
		Qualify:    !fullURIs,
		Relativize: !fullURIs,
	})

	readErr := serd.ReadAll(r, w, env, serd.ReaderOptions{
		Syntax:      in,
		Strict:      !lax,
		BlankPrefix: bnodePrefix,
		Log:         logFunc(),
	})
	if finishErr := w.Finish(); readErr == nil {
		readErr = finishErr
	}
	return readErr
}

func iriOrNil(s string) *serd.Node {
	if s == "" {
		return nil
	}
	return serd.NewIRI(s)
}
