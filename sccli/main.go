package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sizechart"
	"github.com/npillmayer/sizechart/chart"
	"github.com/npillmayer/sizechart/style"
	"github.com/pterm/pterm"
)

// tracer traces with key 'sizechart'
func tracer() tracing.Trace {
	return tracing.Select("sizechart")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.sizechart":         "Info",
		"trace.sizechart.measure": "Error",
		"trace.sizechart.chart":   "Error",
		"trace.sizechart.style":   "Error",
		"trace.sizechart.batch":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	descfile := flag.String("desc", "", "File with a product description to load")
	logo := flag.String("logo", "", "Logo image file or URL")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)      // will set the correct level later
	pterm.Info.Println("Welcome to Size Chart CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("sc > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, style: testconfig.Conf{}, logo: *logo, title: "Product"}
	//
	// load description to start with
	if *descfile != "" {
		if err := intp.loadDescription(*descfile); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	title string          // product title
	desc  string          // product description
	style testconfig.Conf // style overrides set by the user
	logo  string
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( product=%q desc=%d chars style=%d overrides )",
		intp.title, len(intp.desc), len(intp.style))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
	val  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-codes QUIT and DESC will not have arguments
	QUIT int = iota
	DESC
	// op-codes below may have arguments
	HELP
	LOAD
	TITLE
	EXTRACT
	FACTS
	SET
	STYLE
	RENDER
)

var opMap = map[string]int{
	"quit":    QUIT,
	"desc":    DESC,
	"help":    HELP,
	"load":    LOAD,
	"title":   TITLE,
	"extract": EXTRACT,
	"facts":   FACTS,
	"set":     SET,
	"style":   STYLE,
	"render":  RENDER,
}

var opNames = []string{
	"quit",
	"desc",
	"help",
	"load",
	"title",
	"extract",
	"facts",
	"set",
	"style",
	"render",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
		command.op[i].val = ""
	}
}

// parseCommand splits a line into steps. Every step is an op-code with
// optional arguments, separated by colons, e.g. "set:mainColor:#336699" or
// "render:chart.png".
func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 3)
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code <= DESC {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].val = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: '%s'", opNames[code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	DESC:    descOp,
	HELP:    helpOp,
	LOAD:    loadOp,
	TITLE:   titleOp,
	EXTRACT: extractOp,
	FACTS:   factsOp,
	SET:     setOp,
	STYLE:   styleOp,
	RENDER:  renderOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// descOp reads a multi-line description, ending with a line holding a
// single ".".
func descOp(intp *Intp, op *Op) (error, bool) {
	pterm.Info.Println("Enter description, end with a line containing a single '.'")
	intp.repl.SetPrompt("... ")
	defer intp.repl.SetPrompt("sc > ")
	var lines []string
	for {
		line, err := intp.repl.Readline()
		if err != nil || strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	intp.desc = strings.Join(lines, "\n")
	tracer().Infof("description has %d lines", len(lines))
	return nil, false
}

func loadOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	return intp.loadDescription(op.arg), false
}

func titleOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	intp.title = strings.ReplaceAll(op.arg, "_", " ")
	return nil, false
}

func (intp *Intp) loadDescription(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	intp.desc = string(data)
	tracer().Infof("loaded description from %s, %d chars", path, len(intp.desc))
	return nil
}

// --- Style ------------------------------------------------------------

func setOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	if !style.IsKey(op.arg) {
		return fmt.Errorf("unknown style parameter %q, try 'help:style'", op.arg), false
	}
	key := "style." + op.arg
	if op.val == "" {
		delete(intp.style, key)
		tracer().Infof("%s reset to default", op.arg)
		return nil, false
	}
	if style.IsNumeric(op.arg) {
		n, err := strconv.Atoi(op.val)
		if err != nil {
			return fmt.Errorf("%s needs an integer value: %v", op.arg, err), false
		}
		intp.style[key] = n
	} else {
		intp.style[key] = strings.ReplaceAll(op.val, "_", " ")
	}
	if _, err := intp.styleConfig(); err != nil {
		delete(intp.style, key)
		return err, false
	}
	return nil, false
}

func (intp *Intp) styleConfig() (style.Config, error) {
	st := style.Default().Merge(style.FromConfiguration(intp.style, "style"))
	if err := st.Validate(); err != nil {
		return st, err
	}
	_, err := st.Palette()
	return st, err
}

// --- Extraction and rendering -------------------------------------------

var errNoArg = errors.New("command needs an argument")
var errNoDesc = errors.New("no description set, use 'desc' or 'load:<file>'")

func (intp *Intp) product() sizechart.Product {
	return sizechart.Product{Title: intp.title, DescriptionHTML: intp.desc}
}

func extractOp(intp *Intp, op *Op) (error, bool) {
	if intp.desc == "" {
		return errNoDesc, false
	}
	synth, err := sizechart.New(sizechart.Options{})
	if err != nil {
		return err, false
	}
	printTable(synth.Extract(intp.product()))
	return nil, false
}

func factsOp(intp *Intp, op *Op) (error, bool) {
	if intp.desc == "" {
		return errNoDesc, false
	}
	printFacts(chart.ProductDetails(intp.desc))
	return nil, false
}

func renderOp(intp *Intp, op *Op) (error, bool) {
	if intp.desc == "" {
		return errNoDesc, false
	}
	out := op.arg
	if out == "" {
		out = "size-chart.png"
	}
	st, err := intp.styleConfig()
	if err != nil {
		return err, false
	}
	synth, err := sizechart.New(sizechart.Options{
		Chart: chart.Options{Style: st, Logo: intp.logo},
	})
	if err != nil {
		return err, false
	}
	c, err := synth.Synthesize(intp.product())
	if err != nil {
		return err, false
	}
	if err := os.WriteFile(out, c.PNG, 0o644); err != nil {
		return err, false
	}
	pterm.Info.Printf("%s chart written to %s (%d bytes)\n", c.Type, out, len(c.PNG))
	return nil, false
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
