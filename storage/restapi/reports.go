package restapi

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/sendgrid/rest"

	"github.com/academia/dashboard/core/report"
)

var (
	_ report.Gateway  = (*Client)(nil)
	_ report.Exporter = (*Client)(nil)
)

func (c *Client) report(ctx context.Context, action string, dst interface{}) error {
	query := map[string]string{"action": action}
	return c.do(ctx, ResourceReports, rest.Get, resourcePath(ResourceReports), query, nil, dst)
}

func (c *Client) Enrollment(ctx context.Context) ([]report.EnrollmentCount, error) {
	var data []report.EnrollmentCount
	err := c.report(ctx, report.ActionEnrollment, &data)
	return data, err
}

func (c *Client) Outcomes(ctx context.Context) ([]report.OutcomeCount, error) {
	var data []report.OutcomeCount
	err := c.report(ctx, report.ActionOutcomes, &data)
	return data, err
}

func (c *Client) CourseStats(ctx context.Context) ([]report.CourseStats, error) {
	var data []report.CourseStats
	err := c.report(ctx, report.ActionCourseStats, &data)
	return data, err
}

func (c *Client) TopStudents(ctx context.Context) ([]report.TopStudent, error) {
	var data []report.TopStudent
	err := c.report(ctx, report.ActionTopStudents, &data)
	return data, err
}

func (c *Client) Summary(ctx context.Context) (report.Summary, error) {
	var data report.Summary
	err := c.report(ctx, report.ActionGeneral, &data)
	return data, err
}

func (c *Client) PendingActivities(ctx context.Context) ([]report.PendingActivities, error) {
	var data []report.PendingActivities
	err := c.report(ctx, report.ActionPendingActivities, &data)
	return data, err
}

func (c *Client) MonthlyAverages(ctx context.Context) ([]report.MonthlyAverage, error) {
	var data []report.MonthlyAverage
	err := c.report(ctx, report.ActionMonthlyAverages, &data)
	return data, err
}

// Export downloads a spreadsheet. The file name comes from the backend's Content-Disposition header.
func (c *Client) Export(ctx context.Context, req report.ExportRequest) (report.Export, error) {
	query := map[string]string{"tipo": req.Kind}
	if req.CourseID.Valid {
		query["id_curso"] = itoa(req.CourseID.Int)
	}
	res, err := c.send(ctx, ResourceExport, rest.Get, resourcePath(ResourceExport), query, nil)
	if err != nil {
		return report.Export{}, err
	}

	exp := report.Export{
		Filename:    fmt.Sprintf("reporte_%s_%s.xlsx", req.Kind, time.Now().Format("20060102_150405")),
		ContentType: header(res, "Content-Type"),
		Body:        []byte(res.Body),
	}
	if _, params, err := mime.ParseMediaType(header(res, "Content-Disposition")); err == nil && params["filename"] != "" {
		exp.Filename = params["filename"]
	}
	return exp, nil
}

func header(res *rest.Response, key string) string {
	for k, v := range res.Headers {
		if len(v) > 0 && http.CanonicalHeaderKey(k) == key {
			return v[0]
		}
	}
	return ""
}
