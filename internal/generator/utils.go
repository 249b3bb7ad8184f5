package generator

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/templates"
)

// fileData is the template data shared by the header and source templates.
type fileData struct {
	ElementType string
	Name        string
	Size        int
	SizeType    string
}

// renderTemplate executes the named template into w. Failures of w are
// reported wrapping errs.ErrWrite.
func renderTemplate(w io.Writer, tmplName string, data interface{}, funcMap template.FuncMap) error {
	t, err := templates.Parse(tmplName, funcMap)
	if err != nil {
		return err
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}
	return nil
}

// executeTemplate loads a template, parses it with the provided funcMap, and executes it to the output path.
// The file is closed on every path; open and close failures wrap errs.ErrIO.
func executeTemplate(tmplName string, outputPath string, data interface{}, funcMap template.FuncMap) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not create %s: %w: %w", outputPath, errs.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w: %w", outputPath, errs.ErrIO, cerr)
		}
	}()

	return renderTemplate(f, tmplName, data, funcMap)
}
