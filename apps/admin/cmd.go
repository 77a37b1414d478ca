package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/dashboard"
)

var (
	// mockable
	isTerminalFunc = term.IsTerminal
	readLineFunc   = func() (string, error) { return bufio.NewReader(os.Stdin).ReadString('\n') }

	errHelp = errors.New("help provided")
)

// Record kinds accepted by `delete`
const (
	kindCourse   = "course"
	kindStudent  = "student"
	kindActivity = "activity"
)

type commandLine struct {
	app     *dashboard.App
	mailSvc core.EmailService
	out     io.Writer
	now     func() time.Time
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  reports                                  - print the report charts data and the top students")
	fmt.Fprintln(cli.out, "  summary                                  - print the general counters")
	fmt.Fprintln(cli.out, "  delete -kind course|student|activity -id ID [-yes] - delete a record after confirmation")
	fmt.Fprintln(cli.out, "  digest -to EMAIL[,EMAIL...] [-attach=false] - email the report digest")
	fmt.Fprintln(cli.out, "  export [-tipo KIND] [-curso ID] [-dir DIR] - download a report export")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	deleteCmd := flag.NewFlagSet("delete", flag.ContinueOnError)
	deleteKind := deleteCmd.String("kind", "", "The kind of record: course, student or activity.")
	deleteID := deleteCmd.Int("id", 0, "The record id.")
	deleteYes := deleteCmd.Bool("yes", false, "Do not prompt for confirmation.")

	digestCmd := flag.NewFlagSet("digest", flag.ContinueOnError)
	digestTo := digestCmd.String("to", "", "Comma separated list of recipients.")
	digestAttach := digestCmd.Bool("attach", true, "Attach the full report export.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportKind := exportCmd.String("tipo", "", "estudiantes (default), cursos, actividades or reporte_completo.")
	exportCourse := exportCmd.Int("curso", 0, "Only export the records of this course.")
	exportDir := exportCmd.String("dir", ".", "Where to write the file.")

	for _, fs := range []*flag.FlagSet{deleteCmd, digestCmd, exportCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "reports":
		return cli.reports(ctx)
	case "summary":
		return cli.summary(ctx)
	case "delete":
		if err := deleteCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *deleteKind == "" || *deleteID <= 0 {
			deleteCmd.Usage()
			return errHelp
		}
		var c academic.Confirmer = cli
		if *deleteYes {
			c = academic.ConfirmFunc(func(string) bool { return true })
		}
		return cli.delete(ctx, *deleteKind, *deleteID, c)
	case "digest":
		if err := digestCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *digestTo == "" {
			digestCmd.Usage()
			return errHelp
		}
		to, err := mail.ParseAddressList(*digestTo)
		if err != nil {
			return err
		}
		return cli.digest(ctx, to, *digestAttach)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.export(ctx, *exportKind, *exportCourse, *exportDir)
	default:
		cli.printUsage()
		return errHelp
	}
}

// Confirm asks on the terminal. Without a terminal nothing is confirmed.
func (cli *commandLine) Confirm(prompt string) bool {
	if !isTerminalFunc(int(os.Stdin.Fd())) {
		return false
	}
	fmt.Fprintf(cli.out, "%s [s/N]: ", prompt)
	answer, err := readLineFunc()
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}
