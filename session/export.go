package session

import (
	"fmt"

	"github.com/Ramesh-HM-001/aimeetingnotes/errors"
)

// Export is a downloadable text blob backed by a scoped resource. Release
// must be called once the download has been triggered.
type Export struct {
	Filename string
	Content  []byte
	resource *Resource
}

func (e *Export) URL() string {
	return e.resource.URL()
}

func (e *Export) Release() {
	e.resource.Revoke()
}

// ExportMain builds the main-summary download. Fails when there is no
// summary to export.
func (c *Controller) ExportMain() (*Export, error) {
	const op = "Controller.ExportMain"

	if c.state.Result.Summary == "" {
		return nil, errors.InvalidInput(op, nil, "No summary available to export")
	}
	return c.buildExport("main_summary.txt", "Main", c.state.Language, c.state.Result.Summary), nil
}

// ExportFocused builds the focused-summary download. The focused summary is
// always English regardless of the selected language.
func (c *Controller) ExportFocused() (*Export, error) {
	const op = "Controller.ExportFocused"

	if c.state.Result.FocusedSummary == "" {
		return nil, errors.InvalidInput(op, nil, "No focused summary available to export")
	}
	return c.buildExport("focused_summary.txt", "Focused", "English", c.state.Result.FocusedSummary), nil
}

func (c *Controller) buildExport(filename, kind, language, text string) *Export {
	return &Export{
		Filename: filename,
		Content:  []byte(fmt.Sprintf("%s Summary (%s)\n\n%s", kind, language, text)),
		resource: c.pool.Acquire(filename),
	}
}
