package report

import (
	"fmt"
	"strings"

	"github.com/nao1215/rstfy/internal/model"
)

// GeneratedNotice is the line that marks the section as generated output.
const GeneratedNotice = "このセクションは rstfy plugin により自動生成されています．"

// bannerPadding is added to the title's display width to get the rule length.
const bannerPadding = 4

// Banner returns the reStructuredText section title for title: a rule of
// "=" whose length is DisplayWidth(title)+4, the title, and the same rule.
func Banner(title string) string {
	r := strings.Repeat("=", DisplayWidth(title)+bannerPadding)
	return r + "\n" + title + "\n" + r + "\n"
}

// Metadata returns the generator notice and the invoking user and host.
func Metadata(user, host string) string {
	return fmt.Sprintf("\n%s\n(run by %s@%s)\n\n", GeneratedNotice, user, host)
}

// ComposeDocument concatenates the banner, metadata and table.
func ComposeDocument(title, user, host string, rows []model.MetricRow) string {
	return Banner(title) + Metadata(user, host) + RenderTable(rows)
}
