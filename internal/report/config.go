package report

import "time"

// Config specifies the report metadata and layout options.
type Config struct {
	// Title is the report title on the cover page.
	Title string

	// Subtitle appears below the title.
	Subtitle string

	// Author appears on the cover page and in the PDF metadata.
	Author string

	// ImagePath is the beam configuration image embedded in the
	// introduction. Skipped when the file does not exist.
	ImagePath string

	// DataSource names the input workbook in the introduction prose.
	DataSource string

	// Date appears on the title page and stamps the PDF metadata.
	// A fixed date keeps identical inputs producing identical bytes.
	Date time.Time

	// Margin is the page margin in mm.
	Margin float64
}

// DefaultConfig returns the fixed report layout of the batch pipeline.
func DefaultConfig() Config {
	return Config{
		Title:      "Beam Analysis Report",
		Subtitle:   "Simply Supported Beam",
		Author:     "beamreport",
		DataSource: "Force.xlsx",
		Date:       defaultDate,
		Margin:     25.4, // 1 in
	}
}
