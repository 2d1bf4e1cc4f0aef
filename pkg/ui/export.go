package ui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/types"
)

// Report is the machine-readable shape of a session result.
type Report struct {
	RunID          string        `json:"run_id" yaml:"run_id"`
	DryRun         bool          `json:"dry_run" yaml:"dry_run"`
	ElapsedSeconds float64       `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Processed      int           `json:"processed" yaml:"processed"`
	Succeeded      int           `json:"succeeded" yaml:"succeeded"`
	Failed         int           `json:"failed" yaml:"failed"`
	Folders        []FolderCount `json:"folders" yaml:"folders"`
	Errors         []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewReport converts a session result into its exportable form.
func NewReport(result *types.SessionResult) Report {
	return Report{
		RunID:          result.RunID,
		DryRun:         result.DryRun,
		ElapsedSeconds: result.Elapsed.Seconds(),
		Processed:      result.Processed(),
		Succeeded:      result.Succeeded(),
		Failed:         len(result.Errors),
		Folders:        SortedCounts(result.Stats),
		Errors:         result.Errors,
	}
}

// MarshalReport serializes the report in the format implied by the path's
// extension: .json, .yaml/.yml or .xml.
func MarshalReport(result *types.SessionResult, path string) ([]byte, error) {
	report := NewReport(result)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrReportWrite, "failed to encode JSON report")
		}
		return append(out, '\n'), nil
	case ".yaml", ".yml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrReportWrite, "failed to encode YAML report")
		}
		return out, nil
	case ".xml":
		return marshalXML(report)
	}
	return nil, errors.Newf(errors.ErrReportWrite,
		"unsupported report format %q (want .json, .yaml or .xml)", filepath.Ext(path))
}

// WriteReport exports the session summary to path.
func WriteReport(fsys types.FS, path string, result *types.SessionResult) error {
	out, err := MarshalReport(result, path)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(path, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "failed to write report %s", path)
	}
	return nil
}

func marshalXML(report Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("run_id", report.RunID)
	root.CreateAttr("dry_run", strconv.FormatBool(report.DryRun))
	root.CreateAttr("elapsed_seconds", fmt.Sprintf("%.3f", report.ElapsedSeconds))

	totals := root.CreateElement("totals")
	totals.CreateAttr("processed", strconv.Itoa(report.Processed))
	totals.CreateAttr("succeeded", strconv.Itoa(report.Succeeded))
	totals.CreateAttr("failed", strconv.Itoa(report.Failed))

	folders := root.CreateElement("folders")
	for _, fc := range report.Folders {
		el := folders.CreateElement("folder")
		el.CreateAttr("name", fc.Folder)
		el.CreateAttr("count", strconv.Itoa(fc.Count))
	}

	if len(report.Errors) > 0 {
		errs := root.CreateElement("errors")
		for _, msg := range report.Errors {
			errs.CreateElement("error").SetText(msg)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReportWrite, "failed to encode XML report")
	}
	return []byte(out), nil
}
