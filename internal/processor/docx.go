package processor

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// textToDocx renders the plain-text artifact as a styled docx, one
// paragraph per blank-line-separated block.
func textToDocx(title, text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(block).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
