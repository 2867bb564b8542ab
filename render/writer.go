package render

import (
	"io"

	"github.com/clusty-go/clusty/format"
	"github.com/clusty-go/clusty/numtext"
)

// WriteRows writes rows as an "object","cluster" table through a numtext.TableWriter
// using sep as the column separator.
func WriteRows(w io.Writer, sep format.Separator, rows []Row) error {
	tw := numtext.NewTableWriter(w, byte(sep))
	defer tw.Close()

	if err := tw.WriteHeader("object", "cluster"); err != nil {
		return err
	}

	var scratch [20]byte

	for _, r := range rows {
		cluster := numtext.AppendInt(scratch[:0], int64(r.Cluster))
		if err := tw.WriteRow([]byte(r.Name), cluster); err != nil {
			return err
		}
	}

	return tw.Close()
}

// WriteRepresentatives writes rows as an "object","representative" table.
func WriteRepresentatives(w io.Writer, sep format.Separator, rows []RepRow) error {
	tw := numtext.NewTableWriter(w, byte(sep))
	defer tw.Close()

	if err := tw.WriteHeader("object", "representative"); err != nil {
		return err
	}

	for _, r := range rows {
		if err := tw.WriteRow([]byte(r.Name), []byte(r.Representative)); err != nil {
			return err
		}
	}

	return tw.Close()
}
