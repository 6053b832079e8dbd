// internal/report/text.go
package report

import (
	"fmt"
	"io"
	"strings"

	"gffkit/internal/annoinfo"
	"gffkit/internal/cleaner"
)

func init() { Register(FormatText, writeText) }

func writeText(w io.Writer, payload any) error {
	switch p := payload.(type) {
	case Detection:
		return textDetection(w, p)
	case Reformat:
		return textReformat(w, p)
	case Hierarchy:
		return textHierarchy(w, p)
	case Inventory:
		return textInventory(w, p)
	case annoinfo.DiffReport:
		return textDiff(w, p)
	case cleaner.Info:
		return textGenomeInfo(w, p)
	case cleaner.Summary:
		return textCleanSummary(w, p)
	default:
		return fmt.Errorf("no text renderer for %T", payload)
	}
}

func printable(s string) string {
	switch s {
	case "\t":
		return "<tab>"
	case " ":
		return "<space>"
	}
	return s
}

func printableAll(list []string) string {
	if len(list) == 0 {
		return "none"
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = printable(s)
	}
	return strings.Join(out, ", ")
}

func textDetection(w io.Writer, p Detection) error {
	fmt.Fprintln(w, "====== Attribute Format Detection Summary ======")
	fmt.Fprintf(w, "Sampled records        : %d\n", p.Report.Sampled)
	fmt.Fprintf(w, "Format                 : %s\n", p.Dialect.Format)
	fmt.Fprintf(w, "Detected separator(s)  : %s\n", printableAll(p.Report.Separators))
	fmt.Fprintf(w, "Detected assigner(s)   : %s\n", printableAll(p.Report.Assigners))
	fmt.Fprintf(w, "Resolved separator     : %s\n", printable(p.Dialect.Separator))
	fmt.Fprintf(w, "Resolved assigner      : %s\n", printable(p.Dialect.Assigner))
	fmt.Fprintf(w, "Quoting                : %v\n", p.Report.Quoting)
	fmt.Fprintf(w, "Subformats observed    : %s\n", printableAll(p.Report.Subformats))
	fmt.Fprintf(w, "Lines, unknown format  : %d\n", p.Report.UnknownSeparators+p.Report.UnknownAssigners)
	if len(p.Report.Examples) > 0 {
		fmt.Fprintln(w, "Examples of unknown lines:")
		for _, ex := range p.Report.Examples {
			fmt.Fprintf(w, "  %s\n", ex)
		}
	}
	for _, warn := range p.Warnings {
		fmt.Fprintf(w, "!!! %s\n", warn)
	}
	_, err := fmt.Fprintln(w, "================================================")
	return err
}

func textReformat(w io.Writer, p Reformat) error {
	fmt.Fprintf(w, "Source dialect : %s (separator %s, assigner %s)\n",
		p.Dialect.Format, printable(p.Dialect.Separator), printable(p.Dialect.Assigner))
	fmt.Fprintf(w, "Target format  : %s\n", p.Target)
	fmt.Fprintf(w, "Lines written  : %d\n", p.Summary.Lines)
	fmt.Fprintf(w, "Lines dropped  : %d (fewer than 9 columns)\n", p.Summary.Dropped)
	if p.Summary.OutputPath != "" {
		fmt.Fprintf(w, ">>> Reformatted file written: %s\n", p.Summary.OutputPath)
	}
	return nil
}

func textHierarchy(w io.Writer, p Hierarchy) error {
	fmt.Fprintf(w, "==== %s Gene Hierarchy Summary ====\n", p.Biotype)
	fmt.Fprintf(w, "%-35s: %d\n", "Total genes", p.Summary.Total)
	fmt.Fprintf(w, "%-35s: %d\n", "Genes missing transcripts", p.Summary.MissingTranscripts)
	fmt.Fprintf(w, "%-35s: %d\n", "Genes missing CDS", p.Summary.MissingCDS)
	fmt.Fprintf(w, "%-35s: %d\n", "Genes with complete hierarchy", p.Summary.Complete)
	if p.SkippedNoID > 0 {
		fmt.Fprintf(w, "%-35s: %d\n", "Genes skipped (no ID attribute)", p.SkippedNoID)
	}
	if p.Emitted != nil {
		fmt.Fprintf(w, "%-35s: %d\n", "Genes written", p.Emitted.Genes)
		fmt.Fprintf(w, "%-35s: %d\n", "mRNA/transcripts written", p.Emitted.Transcripts)
		fmt.Fprintf(w, "%-35s: %d\n", "CDS written", p.Emitted.CDS)
		fmt.Fprintf(w, "%-35s: %s\n", "Output file", p.Emitted.OutputPath)
	}
	return nil
}

func textInventory(w io.Writer, p Inventory) error {
	fmt.Fprintf(w, "File: %s\n", p.Path)
	fmt.Fprintf(w, "Sources       : %s\n", strings.Join(p.Sources, ", "))
	fmt.Fprintf(w, "Feature types : %s\n", strings.Join(p.FeatureTypes, ", "))
	for src, fts := range p.BySource {
		fmt.Fprintf(w, "  %s: %s\n", src, strings.Join(fts, ", "))
	}
	if p.AttributeFor != "" {
		fmt.Fprintf(w, "Attribute keys for %q: %s\n", p.AttributeFor, strings.Join(p.AttributeKeys, ", "))
	}
	if len(p.Peek) > 0 {
		fmt.Fprintln(w, "First lines:")
		for _, l := range p.Peek {
			fmt.Fprintf(w, "  %s\n", l)
		}
	}
	return nil
}

func textDiff(w io.Writer, p annoinfo.DiffReport) error {
	fmt.Fprintf(w, "Common feature types in all files: %s\n", strings.Join(p.CommonFeatureTypes, ", "))
	for _, label := range p.Labels {
		if u, ok := p.UniqueFeatureTypes[label]; ok {
			fmt.Fprintf(w, "!!! Only %s has: %s\n", label, strings.Join(u, ", "))
		}
	}
	for _, fd := range p.Attributes {
		fmt.Fprintf(w, "\nFeature type: %s\n", fd.FeatureType)
		fmt.Fprintf(w, "  Common attributes (%d): %s\n", len(fd.Common), strings.Join(fd.Common, ", "))
		for _, label := range p.Labels {
			if u, ok := fd.Unique[label]; ok {
				fmt.Fprintf(w, "  !!! Attributes only in %s: %s\n", label, strings.Join(u, ", "))
			}
		}
	}
	return nil
}

func textGenomeInfo(w io.Writer, p cleaner.Info) error {
	fmt.Fprintf(w, "Lines with a genome attribute : %d\n", p.Count)
	fmt.Fprintf(w, "Feature types carrying it     : %s\n", strings.Join(p.FeatureTypes, ", "))
	fmt.Fprintf(w, "Values found                  : %s\n", strings.Join(p.Values, ", "))
	return nil
}

func textCleanSummary(w io.Writer, p cleaner.Summary) error {
	fmt.Fprintf(w, "Excluded seq IDs : %s\n", strings.Join(p.ExcludedSeqIDs, ", "))
	fmt.Fprintf(w, "Lines written    : %d\n", p.LinesWritten)
	fmt.Fprintf(w, ">>> Cleaned file written: %s\n", p.OutputPath)
	return nil
}
