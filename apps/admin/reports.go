package main

import (
	"bytes"
	"context"
	"fmt"
	"net/mail"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/academia/dashboard/core/report"
)

func (cli *commandLine) reports(ctx context.Context) error {
	b, cached, err := cli.app.Aggregator.Bundle(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Reportes (%s, cache: %t)\n\n", b.FetchedAt.Format("2006-01-02 15:04:05"), cached)

	fmt.Fprintln(w, "Estudiantes por curso")
	for _, e := range b.Enrollment {
		fmt.Fprintf(w, "  %s\t%d\n", e.Course, e.Count)
	}
	fmt.Fprintln(w, "\nRendimiento")
	for _, o := range b.Outcomes {
		fmt.Fprintf(w, "  %s\t%d\n", o.Outcome, o.Count)
	}
	fmt.Fprintln(w, "\nPromedio por curso")
	for _, c := range b.CourseStats {
		avg := "-"
		if f, ok := c.Average.Float(); ok {
			avg = fmt.Sprintf("%.2f", f)
		}
		fmt.Fprintf(w, "  %s (%s)\t%d\t%s\n", c.Name, c.Code, c.Students, avg)
	}
	fmt.Fprintln(w, "\nMejores estudiantes")
	rows := report.RankRows(b.TopStudents)
	if len(rows) == 0 {
		fmt.Fprintf(w, "  %s\n", report.NoData)
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", r.Rank, r.Student, r.Course, r.Score)
	}
	return w.Flush()
}

func (cli *commandLine) summary(ctx context.Context) error {
	v, err := cli.app.Summary.Fetch(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Cursos activos\t%s\n", v.ActiveCourses)
	fmt.Fprintf(w, "Estudiantes\t%s\n", v.TotalStudents)
	fmt.Fprintf(w, "Actividades\t%s\n", v.TotalActivities)
	fmt.Fprintf(w, "Promedio general\t%s\n", v.OverallAverage)
	return w.Flush()
}

// digest always fetches fresh data and sends one message to all recipients.
// With `attach` the full report export goes along as an attachment.
func (cli *commandLine) digest(ctx context.Context, to []*mail.Address, attach bool) error {
	b, err := cli.app.Aggregator.Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching reports")
	}
	s, err := cli.app.Summary.Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching summary")
	}

	recipients := make([]mail.Address, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, *addr)
	}
	msg := report.NewDigest(b, s, cli.now()).Message(recipients...)
	if attach && cli.app.Exporter != nil {
		exp, err := cli.app.Exporter.Export(ctx, report.ExportRequest{Kind: report.ExportFull})
		if err != nil {
			return errors.Wrap(err, "exporting full report")
		}
		if err := msg.Attach(bytes.NewReader(exp.Body), exp.Filename, exp.ContentType); err != nil {
			return errors.Wrap(err, "attaching full report")
		}
	}
	cli.mailSvc.SendMessages(msg)
	fmt.Fprintf(cli.out, "digest sent to %d recipient(s)\n", len(recipients))
	return nil
}
