package summarizer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	docxFont     = "Times New Roman"
	docxFontSize = 13
)

var (
	reDocxHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reDocxBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// renderDocx writes the markdown summary as a minimally styled docx
// document. Inline markdown emphasis is stripped rather than styled; the
// docx copy exists for sharing, the markdown file stays canonical.
func renderDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(docxFont).Size(16).Bold(true)

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "---" {
			continue
		}

		if m := reDocxHeading.FindStringSubmatch(line); m != nil {
			size := docxHeadingSize(len(m[1]))
			doc.AddParagraph("").AddText(stripInlineMarkdown(m[2])).Font(docxFont).Size(size).Bold(true)
			continue
		}

		text := line
		if m := reDocxBullet.FindStringSubmatch(line); m != nil {
			text = "• " + m[1]
		}
		doc.AddParagraph("").AddText(stripInlineMarkdown(text)).Font(docxFont).Size(docxFontSize)
	}

	return doc.SaveTo(outputPath)
}

func docxHeadingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	default:
		return 14
	}
}

func stripInlineMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
