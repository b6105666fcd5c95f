package docgen

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/solprov/tankdesign/pkg/errors"
)

// markdown is the shared converter. Tables carry the compliance matrices
// and nozzle schedules; task lists carry the checklists.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// ToHTML converts generated markdown to an HTML fragment.
func ToHTML(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(md, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "convert markdown")
	}
	return buf.Bytes(), nil
}
