/*
Command htmlstyle normalizes the styling of an HTML 4 document.

Deprecated presentational markup and inline style attributes are converted
into CSS declarations. The result is printed as a table and may be written
to an output file. With flag -repl, htmlstyle enters an interactive loop for
inspecting the normalized document with XPath queries.

	htmlstyle -resources ./images:./assets -o out.html -script init.js report.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/htmlstyle/backend/htmlout"
	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/htmlstyle/core/locate/resources"
	"github.com/npillmayer/htmlstyle/engine/dom/html4"
	"github.com/npillmayer/htmlstyle/engine/dom/style"
	"github.com/npillmayer/htmlstyle/engine/dom/styledtree"
	"github.com/npillmayer/htmlstyle/engine/dom/styledtree/xpathadapter"
	inhtml "github.com/npillmayer/htmlstyle/input/html"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/net/html"
)

// tracer traces with key 'htmlstyle.html'
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.html")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	respath := flag.String("resources", "", "Resource search path, separated by "+string(os.PathListSeparator))
	base := flag.String("base", "", "Base directory for relative references (default: directory of input)")
	outfile := flag.String("o", "", "Output HTML file")
	encoding := flag.String("encoding", "", "Character set of output (default: UTF-8)")
	scriptfile := flag.String("script", "", "File with client-initialize JavaScript")
	interactive := flag.Bool("repl", false, "Enter interactive XPath mode")
	flag.Parse()
	if flag.NArg() != 1 {
		pterm.Error.Println("usage: htmlstyle [flags] <input.html>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	// set up configuration and logging
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.htmlstyle.html":      *tlevel,
		"trace.htmlstyle.style":     *tlevel,
		"trace.htmlstyle.resources": *tlevel,
		"trace.htmlstyle.output":    *tlevel,
		"resource-path":             *respath,
		"output-encoding":           *encoding,
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to htmlstyle") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)

	// read and normalize the document
	root, styles, err := normalize(conf, input, *base)
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	report(root, styles)

	if *outfile != "" {
		opts := htmlout.OptionsFromConfig(conf)
		if *scriptfile != "" {
			js, err := os.ReadFile(*scriptfile)
			if err != nil {
				core.UserError(core.WrapError(err, core.EMISSING, "cannot read script %s", *scriptfile))
				os.Exit(4)
			}
			opts.ClientInitialize = string(js)
		}
		if err := htmlout.RenderFile(*outfile, root, styles, opts); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		pterm.Success.Printfln("Output written to %s", *outfile)
	}

	if *interactive {
		repl, err := readline.New("xpath > ")
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(5)
		}
		defer repl.Close()
		intp := &Intp{repl: repl, root: root, styles: styles}
		pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func normalize(conf testconfig.Conf, input, base string) (*html.Node, styledtree.Table, error) {
	root, err := inhtml.ParseFile(input)
	if err != nil {
		return nil, nil, err
	}
	if base == "" {
		base = filepath.Dir(input)
	}
	ctx := resources.Context{resources.BaseKey: base}
	locator := resources.NewFileLocator(conf)
	styles := styledtree.NewTable()
	html4.NewProcessor(locator, style.NewCSSEngine()).Normalize(root, styles, ctx)
	return root, styles, nil
}

// report prints the styled elements of a document as a table.
func report(root *html.Node, styles styledtree.Table) {
	data := pterm.TableData{{"Element", "Style", "Width", "Height"}}
	var walk func(*html.Node, string)
	walk = func(n *html.Node, path string) {
		if n.Type == html.ElementNode {
			path = path + "/" + n.Data
			if row, ok := styleRow(n, path, styles); ok {
				data = append(data, row)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, path)
		}
	}
	walk(root, "")
	if len(data) == 1 {
		pterm.Info.Println("No styled elements")
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot print table: %v", err)
	}
}

func styleRow(n *html.Node, label string, styles styledtree.Table) ([]string, bool) {
	sp, ok := styles.Lookup(n)
	if !ok {
		return nil, false
	}
	if sp.Style().Len() == 0 && sp.Width().IsNone() && sp.Height().IsNone() {
		return nil, false
	}
	return []string{label, sp.Style().String(), dimension(sp.Width()), dimension(sp.Height())}, true
}

func dimension(d interface{ IsNone() bool }) string {
	if d.IsNone() {
		return "-"
	}
	return fmt.Sprintf("%v", d)
}

// --- Interactive mode ------------------------------------------------------

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	root   *html.Node
	styles styledtree.Table
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
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	case "help":
		help()
		return false
	}
	result, err := xpathadapter.Evaluate(intp.root, line)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return false
	}
	switch r := result.(type) {
	case []*html.Node:
		intp.printNodes(r)
	default:
		pterm.Printfln("= %v", r)
	}
	return false
}

func (intp *Intp) printNodes(nodes []*html.Node) {
	if len(nodes) == 0 {
		pterm.Info.Println("No elements selected")
		return
	}
	data := pterm.TableData{{"#", "Element", "Style", "Width", "Height"}}
	for i, n := range nodes {
		row := []string{fmt.Sprintf("%d", i+1), n.Data, "", "-", "-"}
		if sp, ok := intp.styles.Lookup(n); ok {
			row[2] = sp.Style().String()
			row[3] = dimension(sp.Width())
			row[4] = dimension(sp.Height())
		}
		data = append(data, row)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot print table: %v", err)
	}
}

func help() {
	pterm.Info.Println("XPath queries")
	pterm.Println(`
	Enter an XPath expression to evaluate it against the normalized document.
	Selected elements are listed with their normalized style, e.g.

	    //p[@class='note']
	    //table//td[1]
	    count(//div)

	Quit with 'quit' or <ctrl>D.
	`)
}
