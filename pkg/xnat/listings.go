package xnat

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// fsDataType is the XNAT datatype of FreeSurfer assessors.
const fsDataType = "fs:fsData"

// Session is one imaging session in a project.
type Session struct {
	ID      string
	Label   string
	Subject string
	Project string
	Date    string
	Type    string // xsiType, e.g. xnat:mrSessionData
	URI     string
}

// Assessor is one FreeSurfer run attached to a session.
type Assessor struct {
	ID         string
	Label      string
	URI        string
	ProcStatus string // e.g. COMPLETE, JOB_FAILED
	QCStatus   string // e.g. Passed, Needs QA
}

// Sessions lists the imaging sessions of a project, sorted by label.
func (c *Client) Sessions(ctx context.Context, project string) ([]Session, error) {
	columns := "ID,label,subject_label,project,date,xsiType,URI"
	uri := fmt.Sprintf("/data/archive/projects/%s/experiments?columns=%s",
		url.PathEscape(project), columns)

	rows, err := c.getResultSet(ctx, uri)
	if err != nil {
		return nil, err
	}

	var sessions []Session
	rows.ForEach(func(_, row gjson.Result) bool {
		sessions = append(sessions, Session{
			ID:      row.Get("ID").String(),
			Label:   row.Get("label").String(),
			Subject: row.Get("subject_label").String(),
			Project: row.Get("project").String(),
			Date:    row.Get("date").String(),
			Type:    row.Get("xsiType").String(),
			URI:     row.Get("URI").String(),
		})
		return true
	})

	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Label < sessions[j].Label })
	return sessions, nil
}

// Assessors lists the FreeSurfer assessors of a session with their
// processing and QC status, sorted by label. XNAT lowercases the datatype
// in response keys, so fs:fsData columns come back under fs:fsdata/.
func (c *Client) Assessors(ctx context.Context, project, subject, session string) ([]Assessor, error) {
	columns := strings.Join([]string{
		"ID", "label", "URI", "xsiType", "project",
		fsDataType + "/procstatus",
		fsDataType + "/validation/status",
	}, ",")
	uri := fmt.Sprintf("/data/archive/projects/%s/subjects/%s/experiments/%s/assessors?columns=%s&xsiType=%s",
		url.PathEscape(project), url.PathEscape(subject), url.PathEscape(session), columns, url.QueryEscape(fsDataType))

	rows, err := c.getResultSet(ctx, uri)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(fsDataType)
	var assessors []Assessor
	rows.ForEach(func(_, row gjson.Result) bool {
		assessors = append(assessors, Assessor{
			ID:         row.Get("ID").String(),
			Label:      row.Get("label").String(),
			URI:        row.Get("URI").String(),
			ProcStatus: row.Get(lower + "/procstatus").String(),
			QCStatus:   row.Get(lower + "/validation/status").String(),
		})
		return true
	})

	sort.Slice(assessors, func(i, j int) bool { return assessors[i].Label < assessors[j].Label })
	return assessors, nil
}
