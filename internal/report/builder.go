// Package report assembles the PDF engineering report: title page,
// introduction with the beam image, the recreated data table and the
// shear force and bending moment diagrams.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/structeng/beamreport/internal/diagram"
	"github.com/structeng/beamreport/internal/forcedata"
	"github.com/structeng/beamreport/internal/statics"
)

const (
	fontFamily = "Helvetica"

	plotWidthMM  = 160
	plotHeightMM = 100

	// Tables longer than this are thinned to every other station.
	maxFullTableRows = 15
)

// Default metadata date so identical inputs produce identical bytes.
var defaultDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Section describes one numbered report section and its start page,
// as listed on the contents page.
type Section struct {
	Number int
	Title  string
	Page   int
}

// Document is a finished report ready to be written out.
type Document struct {
	pdf *fpdf.Fpdf
	toc []Section
}

// Build lays out the full report for one beam analysis. The layout runs
// twice: the first pass establishes the pagination, the second fills the
// contents page with the recorded section start pages. Every section
// starts on its own page, so both passes paginate identically.
func Build(table *forcedata.Table, d *statics.Diagram, cfg Config) (*Document, error) {
	if cfg.Date.IsZero() {
		cfg.Date = defaultDate
	}

	first, err := layout(table, d, cfg, nil)
	if err != nil {
		return nil, err
	}
	return layout(table, d, cfg, first.toc)
}

func layout(table *forcedata.Table, d *statics.Diagram, cfg Config, entries []Section) (*Document, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(cfg.Title, true)
	pdf.SetAuthor(cfg.Author, true)
	pdf.SetSubject("Shear force and bending moment analysis", true)
	pdf.SetCreator("beamreport", true)
	pdf.SetCreationDate(cfg.Date)
	pdf.SetModificationDate(cfg.Date)
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(true, cfg.Margin)

	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(-18)
		pdf.SetFont(fontFamily, "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	b := &builder{pdf: pdf, cfg: cfg, table: table, diagram: d}
	b.titlePage()
	b.contents(entries)
	b.introduction()
	b.analysisData()
	if err := b.diagrams(); err != nil {
		return nil, err
	}
	b.conclusion()

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("assemble report: %w", err)
	}
	return &Document{pdf: pdf, toc: b.toc}, nil
}

// PageCount returns the number of pages laid out.
func (doc *Document) PageCount() int {
	return doc.pdf.PageCount()
}

// Sections returns the numbered sections in report order with their
// start pages.
func (doc *Document) Sections() []Section {
	return doc.toc
}

// Output writes the PDF to w.
func (doc *Document) Output(w io.Writer) error {
	return doc.pdf.Output(w)
}

// WriteFile writes the PDF to path, creating the directory if needed.
func (doc *Document) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := doc.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type builder struct {
	pdf     *fpdf.Fpdf
	cfg     Config
	table   *forcedata.Table
	diagram *statics.Diagram

	section int
	toc     []Section
}

func (b *builder) titlePage() {
	pdf := b.pdf
	pdf.AddPage()

	pdf.SetY(90)
	pdf.SetFont(fontFamily, "B", 26)
	pdf.CellFormat(0, 14, b.cfg.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 18)
	pdf.CellFormat(0, 10, b.cfg.Subtitle, "", 1, "C", false, 0, "")

	pdf.Ln(6)
	w, _ := pdf.GetPageSize()
	pdf.SetLineWidth(0.6)
	pdf.Line(w/2-40, pdf.GetY(), w/2+40, pdf.GetY())
	pdf.Ln(10)

	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(0, 8, b.cfg.Author, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, b.cfg.Date.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "I", 10)
	pdf.CellFormat(0, 8, "Shear Force and Bending Moment Analysis", "", 1, "C", false, 0, "")
}

// contents lays out the contents page. On the first layout pass entries
// is nil and only the heading is drawn; the page count is the same
// either way.
func (b *builder) contents(entries []Section) {
	pdf := b.pdf
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "Contents", "", 1, "L", false, 0, "")
	pdf.SetLineWidth(0.3)
	pdf.Line(b.cfg.Margin, pdf.GetY(), 210-b.cfg.Margin, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont(fontFamily, "", 12)
	for _, e := range entries {
		pdf.CellFormat(130, 8, fmt.Sprintf("%d  %s", e.Number, e.Title), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("%d", e.Page), "", 1, "R", false, 0, "")
	}
}

func (b *builder) sectionHeading(text string) {
	b.section++
	b.toc = append(b.toc, Section{Number: b.section, Title: text, Page: b.pdf.PageNo()})
	pdf := b.pdf
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%d  %s", b.section, text), "", 1, "L", false, 0, "")
	pdf.SetLineWidth(0.3)
	pdf.Line(b.cfg.Margin, pdf.GetY(), 210-b.cfg.Margin, pdf.GetY())
	pdf.Ln(4)
	pdf.SetFont(fontFamily, "", 11)
}

func (b *builder) subHeading(text string) {
	pdf := b.pdf
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "", 11)
}

func (b *builder) paragraph(text string) {
	b.pdf.MultiCell(0, 6, text, "", "L", false)
	b.pdf.Ln(3)
}

func (b *builder) property(label, value string) {
	pdf := b.pdf
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (b *builder) introduction() {
	pdf := b.pdf
	pdf.AddPage()
	b.sectionHeading("Introduction")

	b.paragraph("This report presents the structural analysis of a simply supported beam. " +
		"The beam consists of a pinned support on the left end and a roller support on the " +
		"right end, allowing for horizontal movement while providing vertical support.")
	b.paragraph("The analysis includes the complete shear force distribution and bending " +
		"moment distribution along the length of the beam, computed from the applied " +
		"force records by static equilibrium.")
	b.paragraph(fmt.Sprintf("Data Source: force records imported from %s (sheet %q).",
		b.cfg.DataSource, b.table.Sheet))

	if b.cfg.ImagePath != "" {
		if _, err := os.Stat(b.cfg.ImagePath); err == nil {
			pdf.Ln(2)
			x := (210 - 120) / 2.0
			pdf.ImageOptions(b.cfg.ImagePath, x, pdf.GetY(), 120, 0, true,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.Ln(2)
			pdf.SetFont(fontFamily, "I", 10)
			pdf.CellFormat(0, 6, "Figure 1: Simply Supported Beam Configuration", "", 1, "C", false, 0, "")
			pdf.SetFont(fontFamily, "", 11)
			pdf.Ln(2)
		}
	}

	beam := b.diagram.Beam
	ra, rb := beam.Reactions()
	pdf.Ln(2)
	b.subHeading("Beam Properties")
	b.property("Span:", fmt.Sprintf("%.2f m", beam.Span))
	b.property("Applied force records:", fmt.Sprintf("%d", len(b.table.Loads)))
	b.property("Total applied load:", fmt.Sprintf("%.2f kN", beam.TotalLoad()))
	b.property("Reaction at left support:", fmt.Sprintf("%.2f kN", ra))
	b.property("Reaction at right support:", fmt.Sprintf("%.2f kN", rb))
	b.property("Analysis stations:", fmt.Sprintf("%d", len(b.diagram.Samples)))
}

// tableRows thins the station list the way the report table is meant to
// read: every station when short, every other station when long, with
// jump duplicates collapsed.
func (b *builder) tableRows() []statics.Sample {
	var rows []statics.Sample
	for i, s := range b.diagram.Samples {
		if i > 0 && s.X == b.diagram.Samples[i-1].X {
			continue
		}
		rows = append(rows, s)
	}
	if len(rows) <= maxFullTableRows {
		return rows
	}
	thinned := rows[:0:0]
	for i := 0; i < len(rows); i += 2 {
		thinned = append(thinned, rows[i])
	}
	return thinned
}

func (b *builder) analysisData() {
	pdf := b.pdf
	pdf.AddPage()
	b.sectionHeading("Analysis Data")

	b.paragraph("The following table shows the calculated shear force and bending moment " +
		"values at various positions along the beam:")

	colW := []float64{45, 55, 60}
	tableW := colW[0] + colW[1] + colW[2]
	left := (210 - tableW) / 2

	pdf.SetX(left)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	headers := []string{"Position (m)", "Shear Force (kN)", "Bending Moment (kN-m)"}
	for i, h := range headers {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, s := range b.tableRows() {
		pdf.SetX(left)
		pdf.CellFormat(colW[0], 6, fmt.Sprintf("%.2f", s.X), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 6, fmt.Sprintf("%.2f", s.V), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 6, fmt.Sprintf("%.2f", s.M), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(5)

	maxM, maxMX := b.diagram.MaxMoment()
	b.subHeading("Key Analysis Results")
	b.property("Maximum shear force:", fmt.Sprintf("%.2f kN", b.diagram.MaxShear()))
	b.property("Maximum bending moment:", fmt.Sprintf("%.2f kN-m", maxM))
	b.property("Location of maximum moment:", fmt.Sprintf("%.2f m from left support", maxMX))
}

// placePlot renders the plot to an in-memory PNG and embeds it centred
// on the current page.
func (b *builder) placePlot(name string, p *plot.Plot) error {
	var buf bytes.Buffer
	if err := diagram.WritePNG(p, 8*vg.Inch, 5*vg.Inch, &buf); err != nil {
		return fmt.Errorf("render %s plot: %w", name, err)
	}

	pdf := b.pdf
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("embed %s plot: %w", name, err)
	}

	x := (210 - plotWidthMM) / 2.0
	pdf.ImageOptions(name, x, pdf.GetY(), plotWidthMM, plotHeightMM, true,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(4)
	return nil
}

func (b *builder) diagrams() error {
	pdf := b.pdf

	lo, hi := b.diagram.ShearRange()
	maxM, maxMX := b.diagram.MaxMoment()

	sfd, err := diagram.NewSFD(b.diagram)
	if err != nil {
		return fmt.Errorf("render SFD: %w", err)
	}
	bmd, err := diagram.NewBMD(b.diagram)
	if err != nil {
		return fmt.Errorf("render BMD: %w", err)
	}

	pdf.AddPage()
	b.sectionHeading("Structural Analysis Diagrams")

	b.subHeading("Shear Force Diagram (SFD)")
	b.paragraph("The shear force diagram shows the variation of shear force along the " +
		"length of the beam. Shear force represents the internal force acting " +
		"perpendicular to the beam axis.")
	if err := b.placePlot("sfd", sfd); err != nil {
		return err
	}
	b.paragraph(fmt.Sprintf("The shear force varies from %.2f kN to %.2f kN along the beam.", lo, hi))

	pdf.AddPage()
	b.subHeading("Bending Moment Diagram (BMD)")
	b.paragraph("The bending moment diagram shows the variation of bending moment along " +
		"the length of the beam. Bending moment represents the internal moment that " +
		"causes the beam to bend.")
	if err := b.placePlot("bmd", bmd); err != nil {
		return err
	}
	b.paragraph(fmt.Sprintf("The maximum bending moment is %.2f kN-m, occurring at %.2f m "+
		"from the left support.", maxM, maxMX))

	return nil
}

func (b *builder) conclusion() {
	pdf := b.pdf
	pdf.AddPage()
	b.sectionHeading("Conclusion")

	b.paragraph("The structural analysis of the simply supported beam has been completed. " +
		"The shear force and bending moment diagrams provide essential information for:")
	for _, item := range []string{
		"Determining critical sections for design",
		"Calculating required beam dimensions",
		"Selecting appropriate materials",
		"Ensuring structural safety and stability",
	} {
		pdf.SetX(b.cfg.Margin + 6)
		pdf.CellFormat(0, 6, "- "+item, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
	b.paragraph("These results form the foundation for detailed structural design and verification.")
}
