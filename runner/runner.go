package runner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/tpgainz/companies-house/config"
)

const (
	RunModeLookup = iota + 1
	RunModeAWSLambda
)

var (
	ErrInvalidRunMode = errors.New("invalid run mode")
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

// Config is the command line configuration layered over the loaded
// application config.
type Config struct {
	Request   Request
	InputFile string
	JSON      bool
	RunMode   int
	App       *config.Config
}

// ParseConfig parses args (without the program name) on top of app.
func ParseConfig(app *config.Config, args []string) (*Config, error) {
	cfg := Config{App: app}

	var awsLambda bool

	fs := flag.NewFlagSet("companies-house", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Request.Resource, "resource", ResourceCompany, "resource to look up: "+strings.Join(resources, "|"))
	fs.StringVar(&cfg.Request.CompanyNumber, "company", "", "company number (e.g. '00000006')")
	fs.StringVar(&cfg.Request.OfficerNumber, "officer", "", "officer number, for appointments")
	fs.StringVar(&cfg.Request.AppointmentID, "appointment", "", "company appointment id, for officer and appointments")
	fs.StringVar(&cfg.Request.ChargeID, "charge", "", "charge id, for charge")
	fs.IntVar(&cfg.Request.PageSize, "page-size", 0, "items per page [default: 10000]")
	fs.BoolVar(&cfg.Request.RegisterView, "register-view", false, "list officers from the statutory register (requires -register-type)")
	fs.StringVar(&cfg.Request.RegisterType, "register-type", "", "officer register: directors|secretaries|llp-members [default: directors]")
	fs.StringVar(&cfg.Request.OrderBy, "order-by", "", "officer order: appointed_on|resigned_on|surname [default: appointed_on]")
	fs.BoolVar(&cfg.Request.Active, "active", false, "only list active appointments")
	fs.StringVar(&cfg.InputFile, "input", "", "path to a file with one identifier per line [default: empty]")
	fs.BoolVar(&cfg.JSON, "json", false, "print results as JSON instead of a table")
	fs.BoolVar(&awsLambda, "aws-lambda", false, "run as an AWS Lambda function")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if awsLambda {
		cfg.RunMode = RunModeAWSLambda
		return &cfg, nil
	}

	cfg.RunMode = RunModeLookup

	if !slices.Contains(resources, cfg.Request.Resource) {
		return nil, fmt.Errorf("unknown resource %q (want one of %s)", cfg.Request.Resource, strings.Join(resources, ", "))
	}

	if cfg.InputFile == "" && cfg.Request.Resource != ResourceValidateKey &&
		cfg.Request.CompanyNumber == "" && cfg.Request.OfficerNumber == "" {
		return nil, errors.New("either -company, -officer or -input must be provided")
	}

	return &cfg, nil
}

func wrapText(text string, width int) []string {
	var lines []string

	currentLine := ""
	currentWidth := 0

	for _, r := range text {
		runeWidth := runewidth.RuneWidth(r)
		if currentWidth+runeWidth > width {
			lines = append(lines, currentLine)
			currentLine = string(r)
			currentWidth = runeWidth
		} else {
			currentLine += string(r)
			currentWidth += runeWidth
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// TerminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

func banner(messages []string, width int) string {
	if width <= 0 {
		width = TerminalWidth(80)
	}

	if width < 20 {
		width = 20
	}

	contentWidth := width - 4

	var wrappedLines []string
	for _, message := range messages {
		wrappedLines = append(wrappedLines, wrapText(message, contentWidth)...)
	}

	var builder strings.Builder

	builder.WriteString("╔" + strings.Repeat("═", width-2) + "╗\n")

	for _, line := range wrappedLines {
		paddingRight := max(contentWidth-runewidth.StringWidth(line), 0)

		builder.WriteString(fmt.Sprintf("║ %s%s ║\n", line, strings.Repeat(" ", paddingRight)))
	}

	builder.WriteString("╚" + strings.Repeat("═", width-2) + "╝\n")

	return builder.String()
}

// Banner prints the tool banner to stderr, keeping stdout clean for results.
func Banner() {
	message1 := "🏛 Companies House lookup"
	message2 := "Data from the UK Companies House public API: company-information.service.gov.uk"

	fmt.Fprintln(os.Stderr, banner([]string{message1, message2}, 0))
}
