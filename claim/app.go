package claim

import (
	"errors"
	"fmt"
	"os"
	"slices"

	claimio "github.com/dzonerzy/go-claim/io"
)

// ErrHelpShown signals a graceful exit after help output.
var ErrHelpShown = errors.New("help shown")

// App is the thin command-line front end around a Parser. The engine
// returns error values; the App decides presentation (error print, usage
// print) and process termination.
type App struct {
	name        string
	description string
	version     string

	parser      *Parser
	ioManager   *claimio.IOManager
	log         *claimio.Logger
	exitCodes   *ExitCodeManager
	helpEnabled bool
}

// NewApp creates a front end with the given name and description.
func NewApp(name, description string) *App {
	io := claimio.New()
	return &App{
		name:        name,
		description: description,
		parser:      NewParser(),
		ioManager:   io,
		log:         claimio.NewLogger(io),
		exitCodes:   newExitCodeManager(),
		helpEnabled: true,
	}
}

// Version sets the application version shown in the usage prelude.
func (a *App) Version(version string) *App {
	a.version = version
	return a
}

// DisableHelp turns off the built-in --help/-h handling.
func (a *App) DisableHelp() *App {
	a.helpEnabled = false
	return a
}

// Handle appends handlers to the app's parser and returns the app for
// chaining.
func (a *App) Handle(handlers ...Handler) *App {
	a.parser.Handle(handlers...)
	return a
}

// Include appends another parser's handlers.
func (a *App) Include(other *Parser) *App {
	a.parser.Include(other)
	return a
}

// Epilogue sets trailing usage text.
func (a *App) Epilogue(text string) *App {
	a.parser.Epilogue(text)
	return a
}

// Parser returns the app's underlying parser.
func (a *App) Parser() *Parser {
	return a.parser
}

// IO returns the app's IO manager for stream and color configuration.
func (a *App) IO() *claimio.IOManager {
	return a.ioManager
}

// Logger returns the app's logger.
func (a *App) Logger() *claimio.Logger {
	return a.log
}

// ExitCodes returns the app's exit-code manager for customization.
func (a *App) ExitCodes() *ExitCodeManager {
	return a.exitCodes
}

// Usage returns the rendered help text.
func (a *App) Usage() string {
	if a.parser.prelude == "" {
		prelude := a.description
		if a.version != "" {
			prelude = fmt.Sprintf("%s %s - %s", a.name, a.version, a.description)
		}
		a.parser.Prelude(prelude)
	}
	return renderUsage(a.name, a.parser, a.ioManager)
}

// Run parses the process's invocation arguments.
func (a *App) Run() (*Result, error) {
	return a.RunWithArgs(os.Args[1:])
}

// RunWithArgs parses the given arguments. Help requests print usage and
// return ErrHelpShown; parse failures are logged (with suggestion, when one
// exists) followed by the usage text on misusage errors.
func (a *App) RunWithArgs(args []string) (*Result, error) {
	if a.helpEnabled && a.helpRequested(args) {
		fmt.Fprint(a.ioManager.Out(), a.Usage())
		return nil, ErrHelpShown
	}

	res, err := a.parser.Parse(args)
	if err != nil {
		a.reportError(err)
		return nil, err
	}
	return res, nil
}

// RunAndGetExitCode runs the app and maps the outcome to an exit code.
func (a *App) RunAndGetExitCode() int {
	_, err := a.Run()
	if errors.Is(err, ErrHelpShown) {
		return a.exitCodes.defaults.Success
	}
	return a.exitCodes.Resolve(err)
}

// RunAndExit runs the app and terminates the process.
func (a *App) RunAndExit() {
	os.Exit(a.RunAndGetExitCode())
}

// helpRequested checks the normalized token stream for a help activator, so
// "-vh" and "--help=x" shapes behave the same as during a real scan.
func (a *App) helpRequested(args []string) bool {
	normalized := ExpandFlags(args)
	return slices.Contains(normalized, "--help") || slices.Contains(normalized, "-h")
}

// reportError prints a parse failure and, for misusage categories, the
// usage text.
func (a *App) reportError(err error) {
	a.log.Errorf("%v", err)

	var me *MatchError
	if !errors.As(err, &me) {
		return
	}
	if me.Suggestion != "" {
		fmt.Fprintf(a.ioManager.Err(), "  %s\n", me.Suggestion)
	}
	switch me.Type {
	case ErrorTypeTrailingInput, ErrorTypeStall, ErrorTypeMissingRequired, ErrorTypeNoAlternative:
		fmt.Fprint(a.ioManager.Err(), "\n"+a.Usage())
	case ErrorTypeRepeatedActivator, ErrorTypeLiteralMismatch, ErrorTypeValidation:
		// Message alone is enough; the argument shape was understood.
	}
}
