package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/tools/container/intsets"

	"github.com/npillmayer/lilt/ll"
	"github.com/npillmayer/lilt/ll/ll1"
	"github.com/npillmayer/lilt/ll/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

func tracer() tracing.Trace {
	return tracing.Select("lilt.ll")
}

// We provide a simple expression grammar as a default for parsing
// experiments. Terminals are single characters, 'i' stands in for
// identifiers.
//
//  E ➞ T X
//  X ➞ + T X  |  ε
//  T ➞ F Y
//  Y ➞ * F Y  |  ε
//  F ➞ ( E )  |  i
//
const defaultGrammar = `
E -> TX
X -> +TX |
T -> FY
Y -> *FY |
F -> (E) | i
`

// main() starts an interactive CLI ("LL.REPL"), where users may enter
// sentences of a grammar. LL.REPL parses the input with a table-driven
// LL(1) parser and prints the resulting parse tree. It is intended as a
// sandbox for experiments during grammar development: users may load a
// grammar from a file, inspect FIRST- and FOLLOW-sets of its non-terminals
// and check whether the grammar is LL(1) at all.
//
// Please refer to packages "ll" and "ll1".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LL.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar, analysis and parse table
	g, err := loadGrammar(*gfile)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(1)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	g.Dump()                                    // only visible in debug mode
	intp, err := makeIntp(g)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		intp.parseAndPrint(input)
	}
	//
	// set up REPL and start receiving commands / sentences
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
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

func loadGrammar(filename string) (*ll.Grammar, error) {
	if filename == "" {
		return ll.ReadGrammar("Expr", defaultGrammar)
	}
	input, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open grammar file: %v", err)
	}
	return ll.ReadGrammar(filename, string(input))
}

// Intp is our interpreter object
type Intp struct {
	GA     *ll.LLAnalysis
	lgen   *ll.TableGenerator
	parser *ll1.Parser
	repl   *readline.Instance
}

func makeIntp(g *ll.Grammar) (*Intp, error) {
	ga := ll.Analysis(g)
	lgen := ll.NewTableGenerator(ga)
	lgen.CreateTable()
	intp := &Intp{GA: ga, lgen: lgen}
	if lgen.HasConflicts {
		pterm.Error.Println("grammar is not LL(1):")
		pterm.Error.Println(lgen.Conflict().String())
		return intp, nil // still useful for inspecting FIRST/FOLLOW
	}
	intp.parser = ll1.NewParser(g, lgen.Table())
	return intp, nil
}

// REPL starts interactive mode. Lines starting with ':' are commands,
// everything else is handed to the parser as input to parse.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(strings.Fields(line[1:])); quit {
				break
			}
			continue
		}
		intp.parseAndPrint(line)
	}
	println("Good bye!")
}

// Execute runs a single REPL command.
func (intp *Intp) Execute(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "quit", "q":
		return true
	case "grammar", "g":
		intp.printGrammar()
	case "first":
		intp.printSet(args[1:], intp.GA.First)
	case "follow":
		intp.printSet(args[1:], intp.GA.Follow)
	case "table", "t":
		intp.printTable()
	case "hash":
		pterm.Info.Println(intp.GA.Grammar().Hash())
	case "html":
		intp.exportHTML(args[1:])
	default:
		pterm.Error.Printf("unknown command :%s\n", args[0])
		pterm.Info.Println("commands are :grammar :first N :follow N :table :hash :html <file> :quit")
	}
	return false
}

func (intp *Intp) printGrammar() {
	g := intp.GA.Grammar()
	for i := 0; i < g.Size(); i++ {
		pterm.Info.Println(g.Rule(i).String())
	}
}

func (intp *Intp) printSet(args []string, set func(*ll.Symbol) *intsets.Sparse) {
	if len(args) != 1 {
		pterm.Error.Println("need exactly one non-terminal argument")
		return
	}
	g := intp.GA.Grammar()
	sym := g.SymbolNamed(args[0])
	if sym == nil || sym.IsTerminal() {
		pterm.Error.Printf("%q is not a non-terminal of %s\n", args[0], g.Name)
		return
	}
	var names []string
	for _, tokval := range set(sym).AppendTo(nil) {
		names = append(names, setMemberName(g, tokval))
	}
	pterm.Info.Printf("{ %s }\n", strings.Join(names, " "))
}

func setMemberName(g *ll.Grammar, tokval int) string {
	switch tokval {
	case ll.EpsilonType:
		return g.Epsilon().Name
	case ll.EOFType:
		return g.EOF().Name
	}
	if t := g.Terminal(tokval); t != nil {
		return t.Name
	}
	return fmt.Sprintf("%d", tokval)
}

func (intp *Intp) printTable() {
	table := intp.lgen.Table()
	if table == nil {
		pterm.Error.Println("grammar is not LL(1), no parse table")
		return
	}
	g := intp.GA.Grammar()
	g.EachNonTerminal(func(A *ll.Symbol) interface{} {
		for _, t := range table.Columns() {
			if r := table.RuleFor(A, t.TokenType()); r != nil {
				pterm.Info.Printf("M[%s,%s] = %s\n", A.Name, t.Name, r)
			}
		}
		return nil
	})
}

func (intp *Intp) exportHTML(args []string) {
	if len(args) != 1 {
		pterm.Error.Println("need a target file argument")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer f.Close()
	ll.TableAsHTML(intp.lgen, f)
	pterm.Info.Printf("parse table written to %s\n", args[0])
}

// parseAndPrint parses a single line of input and renders the resulting
// parse tree on the terminal.
func (intp *Intp) parseAndPrint(input string) {
	if intp.parser == nil {
		pterm.Error.Println("grammar is not LL(1), cannot parse")
		return
	}
	tokens := scanner.Runes(strings.NewReader(input))
	tree, err := intp.parser.Parse(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	root := pterm.NewTreeFromLeveledList(leveledTree(tree, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(node *ll1.ParseTree, list pterm.LeveledList, level int) pterm.LeveledList {
	text := node.Symbol.Name
	if node.Token != nil {
		text = fmt.Sprintf("%s %q", text, node.Token.Lexeme())
	}
	list = append(list, pterm.LeveledListItem{
		Level: level,
		Text:  text,
	})
	for _, ch := range node.Children {
		list = leveledTree(ch, list, level+1)
	}
	return list
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
