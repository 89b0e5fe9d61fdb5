package analysis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sbchaos/cake/pkg/image"
	"github.com/sbchaos/cake/pkg/ofs"
	"github.com/sbchaos/cake/pkg/style"
)

// Report is the full efficiency analysis of one image: its score, the
// byte accounting behind it, the reconstructed filesystem, and every
// package manager's findings. It is what gets written to "<id>_report.json"
// and what the CLI's "-t"/"-p"/default printers read from.
type Report struct {
	Score       uint64           `json:"score"`
	WastedSpace uint64           `json:"wasted_space"`
	TotalSpace  uint64           `json:"total_space"`
	Ofs         *ofs.OverlayFs   `json:"ofs"`
	Image       *image.Image     `json:"image"`
	Managers    []ManagerReport  `json:"managers"`
	DupFiles    []Info           `json:"dup_files"`
}

// CreateReport scores img's overlay filesystem against the waste found
// by the duplicate-file analysis and every package manager. A zero-byte
// filesystem scores 100.
func CreateReport(o *ofs.OverlayFs, img *image.Image, managers []ManagerReport) *Report {
	eff := NewEfficiency(o)
	waste := eff.WastedBytes()

	var pkgWaste uint64
	for _, m := range managers {
		pkgWaste += m.WasteSize
	}

	size := o.Size()
	score := uint64(100)
	if size > 0 {
		score = ((size - (waste + pkgWaste)) * 100) / size
	}

	return &Report{
		Score:       score,
		WastedSpace: waste + pkgWaste,
		TotalSpace:  size,
		Ofs:         o,
		Image:       img,
		Managers:    managers,
		DupFiles:    eff.Duplicates(),
	}
}

// SaveAsJSON writes the report to "<id>_report.json".
func (r *Report) SaveAsJSON() error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(r.Image.ReportPath(), data, 0o644)
}

// LoadReport reads and parses a previously saved report for img. A
// malformed or missing file is reported as an error; callers treat it as
// "no cached report" and fall through to the next ingestion option.
func LoadReport(img *image.Image) (*Report, error) {
	data, err := os.ReadFile(img.ReportPath())
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ShowReport prints the full human-readable report: score, size summary,
// the inefficient-files table, then every package manager's section.
func (r *Report) ShowReport() {
	fmt.Println()
	fmt.Println(style.Bold("Analysis Report:"))
	fmt.Printf("  Efficiency score: %s %%\n", r.colorScore())
	fmt.Printf("  Total size: %s\n", ofs.SizeHuman(r.TotalSpace))
	fmt.Printf("  Wasted Space: %s\n", ofs.SizeHuman(r.WastedSpace))

	fmt.Println()
	fmt.Println(style.Bold("Inefficient Files:"))
	fmt.Println("Count  Wasted Space  File Path")
	for _, i := range r.DupFiles {
		fmt.Printf("%5d  %12s  %s\n", i.Count, ofs.SizeHuman(i.WastedSize), i.Path)
	}

	fmt.Println()
	fmt.Println(style.Bold("Packages:"))
	for _, m := range r.Managers {
		m.ShowReport()
	}
}

// ShowPackages prints only the package listing, skipping the efficiency
// summary and duplicate-file table.
func (r *Report) ShowPackages() {
	fmt.Println()
	fmt.Println(style.Bold("Packages:"))
	for _, m := range r.Managers {
		m.ShowPackages()
	}
}

func (r *Report) colorScore() string {
	scoreStr := fmt.Sprintf("%d", r.Score)
	switch {
	case r.Score > 90:
		return style.Green(scoreStr)
	case r.Score > 70:
		return style.Yellow(scoreStr)
	default:
		return style.Red(scoreStr)
	}
}
