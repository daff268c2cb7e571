package export

import (
	"context"
	"fmt"
	"os"

	"github.com/japaniel/vok2vok/pkg/convert"
	"github.com/japaniel/vok2vok/pkg/db"
	"github.com/japaniel/vok2vok/pkg/vok2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WriteVok5 writes book to a new sqlite file at path following the
// destination policy. The file is closed on every path and removed again if
// writing fails.
func WriteVok5(ctx context.Context, path string, book db.Book, overwrite bool) (err error) {
	if err := Prepare(path, overwrite); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	conn, err := db.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := db.WriteBook(ctx, conn, book); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Vok5 converts vok2 files (and their box sidecars) to vok5 databases.
type Vok5 struct {
	Ext        string
	BoxExt     string
	DefaultBox int
	// Logger receives debug row counts read back from each written file. nil disables it.
	Logger *zap.Logger
}

// Output returns the vok5 path for source.
func (v Vok5) Output(source string) string {
	return vok2.ReplaceExt(source, v.Ext)
}

// Convert runs the full transformation for source and writes output.
func (v Vok5) Convert(ctx context.Context, source, output string, overwrite bool) error {
	doc, err := vok2.ReadFile(source)
	if err != nil {
		return err
	}
	boxes, err := vok2.LoadBoxes(source, v.BoxExt, v.DefaultBox)
	if err != nil {
		return err
	}
	book, err := convert.Convert(doc, boxes)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	if err := WriteVok5(ctx, output, book, overwrite); err != nil {
		return err
	}

	if v.Logger != nil && v.Logger.Core().Enabled(zapcore.DebugLevel) {
		v.logRowCounts(ctx, output, boxes.Broadcast())
	}
	return nil
}

func (v Vok5) logRowCounts(ctx context.Context, path string, defaultBoxes bool) {
	conn, err := db.Open(ctx, path)
	if err != nil {
		v.Logger.Debug("reopen vok5 file", zap.String("output", path), zap.Error(err))
		return
	}
	defer conn.Close()

	book, err := db.ReadBook(ctx, conn)
	if err != nil {
		v.Logger.Debug("read back vok5 file", zap.String("output", path), zap.Error(err))
		return
	}
	stats, err := db.ReadStatistics(ctx, conn)
	if err != nil {
		v.Logger.Debug("read back vok5 statistics", zap.String("output", path), zap.Error(err))
		return
	}
	v.Logger.Debug("vok5 file written",
		zap.String("output", path),
		zap.Int("lessons", len(book.Lessons)),
		zap.Int("settings", len(book.Settings)),
		zap.Int("vocabulary", len(book.Vocabulary)),
		zap.Int("statistics", len(stats)),
		zap.Bool("default_boxes", defaultBoxes),
	)
}
