// Package export renders tabular data for download. The gateway's CSV
// export has a fixed, multi-section literal format (see core.RenderCSV)
// that a generic single-table Dataset can't produce, so Dataset only feeds
// the PDF renderer here.
package export

// Dataset defines tabular export content: an ordered header row and the
// records keyed by header.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}
