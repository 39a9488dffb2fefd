package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/automaton"
	"github.com/npillmayer/thompson/regex"
	"github.com/npillmayer/thompson/regex/scanner"
	"github.com/npillmayer/thompson/regex/scanner/lexmach"
	"github.com/npillmayer/thompson/regex/scanner/plexer"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("N.REPL"), where users may enter regular
// expressions. N.REPL will convert every expression to an epsilon-NFA and print
// the automaton. Lines starting with ':' are commands:
//
//	:dot <file>   write the last automaton to file in GraphViz DOT format
//	:tree         display the last automaton as a tree
//	:quit         exit N.REPL
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	strict := flag.Bool("strict", false, "Reject characters outside the expression alphabet")
	prec := flag.Bool("precedence", false, "Apply operators by precedence: '*' over '.' over '|'")
	dotf := flag.String("dot", "", "Export automaton of initial expression to DOT file")
	scanf := flag.String("scanner", "rune", "Scanner for expressions [rune|lexmachine|participle]")
	skipws := flag.Bool("skipws", false, "Skip white space when scanning, even in strict mode")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to NREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	tracing.Select("thompson.regex").SetTraceLevel(traceLevel(*tlevel))
	//
	opts := []regex.Option{regex.Strict(*strict), regex.Precedence(*prec)}
	factory, err := tokenizerFactory(*scanf, *skipws)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	opts = append(opts, regex.WithTokenizer(factory))
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	intp := &Intp{opts: opts}
	if input != "" {
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
		if *dotf != "" {
			if err := intp.exportDot(*dotf); err != nil {
				os.Exit(2)
			}
		}
	}
	//
	// set up REPL
	repl, err := readline.New("nrepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// tokenizerFactory selects a scanner by name. With skipws set, white space is
// dropped by the scanner instead of being passed to the converter.
func tokenizerFactory(name string, skipws bool) (regex.TokenizerFactory, error) {
	switch strings.ToLower(name) {
	case "", "rune":
		return func(expr string) (scanner.Tokenizer, error) {
			return scanner.RuneTokenizer("regex", strings.NewReader(expr), scanner.SkipWhitespace(skipws)), nil
		}, nil
	case "lexmachine", "lm":
		LM, err := lexmach.NewLMAdapter(lexmach.SkipWhitespace(skipws))
		if err != nil {
			return nil, fmt.Errorf("cannot create lexmachine scanner: %w", err)
		}
		return func(expr string) (scanner.Tokenizer, error) {
			return LM.Scanner(expr)
		}, nil
	case "participle":
		return func(expr string) (scanner.Tokenizer, error) {
			return plexer.Tokenizer(expr, plexer.SkipWhitespace(skipws))
		}, nil
	}
	return nil, fmt.Errorf("unknown scanner %q", name)
}

// Intp is our interpreter object
type Intp struct {
	lastInput string
	nfa       *automaton.NFA
	opts      []regex.Option
	repl      *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	lines := bufio.NewScanner(f)
	lineno := 1
	for lines.Scan() {
		line := lines.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var errNoAutomaton = errors.New("no automaton yet, please enter an expression first")

// Eval executes a command or converts an expression, given on a line by itself.
// It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.execute(strings.Fields(line))
	}
	tracer().Infof("-------------------------- Convert -------------------------------")
	nfa, err := regex.Convert(line, intp.opts...)
	if err != nil {
		pterm.Error.Println(err.Error())
		var exprErr *regex.ExpressionError
		if errors.As(err, &exprErr) {
			pterm.Println(line)
			pterm.Println(marker(line, exprErr.Span))
		}
		return false, err
	}
	intp.lastInput, intp.nfa = line, nfa
	tracer().Infof("-------------------------- Output --------------------------------")
	pterm.Info.Printf("%d states for %q\n", nfa.Size(), line)
	pterm.Println(nfa.String())
	return false, nil
}

func (intp *Intp) execute(args []string) (bool, error) {
	switch cmd := args[0]; cmd {
	case ":quit", ":q":
		return true, nil
	case ":dot":
		if len(args) != 2 {
			err := fmt.Errorf("usage: :dot <file>")
			pterm.Error.Println(err.Error())
			return false, err
		}
		return false, intp.exportDot(args[1])
	case ":tree":
		if intp.nfa == nil {
			pterm.Error.Println(errNoAutomaton.Error())
			return false, errNoAutomaton
		}
		pterm.Println(intp.lastInput)
		root := pterm.NewTreeFromLeveledList(leveledStates(intp.nfa))
		pterm.DefaultTree.WithRoot(root).Render()
		return false, nil
	default:
		err := fmt.Errorf("unknown command %s", cmd)
		pterm.Error.Println(err.Error())
		return false, err
	}
}

func (intp *Intp) exportDot(filename string) error {
	if intp.nfa == nil {
		pterm.Error.Println(errNoAutomaton.Error())
		return errNoAutomaton
	}
	f, err := os.Create(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	defer f.Close()
	if err = intp.nfa.ToGraphViz(f); err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Printf("automaton written to %s\n", filename)
	return nil
}

// marker underlines the runes of expr covered by span. Empty spans are marked
// by a single caret.
func marker(expr string, span thompson.Span) string {
	if int(span.To()) > len(expr) {
		return ""
	}
	pad := strings.Repeat(" ", utf8.RuneCountInString(expr[:span.From()]))
	if span.Len() == 0 {
		return pad + "^"
	}
	return pad + strings.Repeat("^", utf8.RuneCountInString(expr[span.From():span.To()]))
}

// leveledStates lists the states of an automaton with their transitions
// one level below.
func leveledStates(nfa *automaton.NFA) pterm.LeveledList {
	ll := pterm.LeveledList{}
	start, _ := nfa.Start()
	nfa.Each(func(name string, trans *automaton.Transitions) {
		label := name
		if name == start {
			label = "→ " + label
		}
		if nfa.IsFinal(name) {
			label += " (final)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
		for _, sym := range trans.Symbols() {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%s %s", sym, trans.Destinations(sym)),
			})
		}
	})
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
