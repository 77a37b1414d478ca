package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/report"
)

func (cli *commandLine) delete(ctx context.Context, kind string, id int, c academic.Confirmer) error {
	var (
		err error
		msg string
	)
	switch kind {
	case kindCourse:
		err, msg = cli.app.Courses.Delete(ctx, id, c), academic.MsgCourseDeleted
	case kindStudent:
		err, msg = cli.app.Students.Delete(ctx, id, c), academic.MsgStudentDeleted
	case kindActivity:
		err, msg = cli.app.Activities.Delete(ctx, id, c), academic.MsgActivityDeleted
	default:
		return errors.Errorf("%q: unknown kind", kind)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, msg)
	return nil
}

func (cli *commandLine) export(ctx context.Context, kind string, courseID int, dir string) error {
	req := report.ExportRequest{Kind: kind, CourseID: null.NewInt(courseID, courseID > 0)}
	req.Clean()

	exp, err := cli.app.Exporter.Export(ctx, req)
	if err != nil {
		return errors.Wrap(err, "exporting "+req.Kind)
	}
	fp := filepath.Join(dir, filepath.Base(exp.Filename))
	if err = os.WriteFile(fp, exp.Body, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (%d bytes)\n", fp, len(exp.Body))
	return nil
}
