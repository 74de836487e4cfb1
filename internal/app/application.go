// Package app wires the capture reader, category decoders and exporters
// into the decode pipeline behind the command line.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"goasterix/internal/asterix"
	"goasterix/internal/capture"
	"goasterix/internal/cat021"
	"goasterix/internal/cat048"
	"goasterix/internal/export"
)

// Application represents the main application
type Application struct {
	config Config
	logger *logrus.Logger
}

// NewApplication creates a new application instance
func NewApplication(config Config, logger *logrus.Logger) *Application {
	return &Application{
		config: config,
		logger: logger,
	}
}

// Run executes the pipeline once: frame the capture file, decode records
// across workers, sort by time, flatten with the QNH correction, filter
// and write the configured outputs.
func (app *Application) Run(ctx context.Context) error {
	start := time.Now()

	app.logger.WithFields(logrus.Fields{
		"version": Version,
		"input":   app.config.InputFile,
		"workers": app.workers(),
	}).Info("Starting ASTERIX capture decode")

	reader, err := capture.NewReader(app.config.InputFile, app.logger)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	records := reader.ReadAll()
	app.logger.WithFields(logrus.Fields{
		"records": len(records),
		"bytes":   reader.Size(),
	}).Info("Framed capture file")

	if err := app.decode(ctx, records); err != nil {
		return err
	}
	sortRecords(records)

	if app.config.Inspect > 0 {
		app.Inspect(os.Stdout, records, app.config.Inspect)
	}

	rows := app.flatten(records)
	total := len(rows)
	rows = app.config.Filters.Apply(rows)

	if err := app.writeOutputs(rows); err != nil {
		return err
	}

	stats := export.Summarize(rows)
	app.logger.WithFields(logrus.Fields{
		"rows":      stats.Total,
		"filtered":  total - stats.Total,
		"aircraft":  stats.UniqueAircraft,
		"airborne":  stats.Airborne,
		"on_ground": stats.OnGround,
		"elapsed":   time.Since(start).Round(time.Millisecond).String(),
	}).Info("Processing complete")

	return nil
}

func (app *Application) workers() int {
	if app.config.Workers < 1 {
		return 1
	}
	return app.config.Workers
}

// decode fills rec.Items for every record, fanning contiguous chunks out
// over the workers. Each worker owns its own decoder pair, so record
// order and per-record results do not depend on the worker count.
func (app *Application) decode(ctx context.Context, records []*asterix.Record) error {
	if len(records) == 0 {
		return nil
	}
	workers := app.workers()
	if workers > len(records) {
		workers = len(records)
	}
	chunk := (len(records) + workers - 1) / workers

	grp, ctx := errgroup.WithContext(ctx)
	for begin := 0; begin < len(records); begin += chunk {
		end := begin + chunk
		if end > len(records) {
			end = len(records)
		}
		part := records[begin:end]
		grp.Go(func() error {
			c048 := cat048.NewDecoder(app.logger)
			c021 := cat021.NewDecoder(app.logger)
			for _, rec := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				switch rec.Category {
				case asterix.Cat048:
					c048.Decode(rec)
				case asterix.Cat021:
					c021.Decode(rec)
				}
			}
			return nil
		})
	}
	return grp.Wait()
}

// sortKey orders records by decoded time of day, then aircraft address.
type sortKey struct {
	hasTime bool
	time    float64
	addr    string
}

func recordKey(rec *asterix.Record) sortKey {
	var k sortKey
	for _, item := range rec.Items {
		switch v := item.Value.(type) {
		case cat048.TimeOfDay:
			k.time = v.TotalSeconds
			k.hasTime = true
		case cat021.TimeOfDay:
			// Reception-of-position time wins over the other time items.
			if !k.hasTime || item.Type == asterix.Cat021TimeReceptionPosition {
				k.time = v.TotalSeconds
				k.hasTime = true
			}
		case cat048.AircraftAddress:
			k.addr = v.Hex
		case cat021.TargetAddress:
			k.addr = v.Hex
		}
	}
	return k
}

func (k sortKey) less(o sortKey) bool {
	if k.hasTime != o.hasTime {
		return !k.hasTime
	}
	if k.time != o.time {
		return k.time < o.time
	}
	return k.addr < o.addr
}

// sortRecords orders records by (time, address), keeping file order for
// ties. Timeless records sort first. The QNH correction during flattening
// relies on this order.
func sortRecords(records []*asterix.Record) {
	keys := make(map[*asterix.Record]sortKey, len(records))
	for _, rec := range records {
		keys[rec] = recordKey(rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return keys[records[i]].less(keys[records[j]])
	})
}

func (app *Application) flatten(records []*asterix.Record) []*export.Row {
	flattener := export.NewFlattener(app.logger)
	rows := make([]*export.Row, 0, len(records))
	for _, rec := range records {
		if row := flattener.Flatten(rec); row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

func (app *Application) writeOutputs(rows []*export.Row) error {
	if app.config.CSVBase != "" {
		for _, cat := range []asterix.Category{asterix.Cat048, asterix.Cat021} {
			if err := app.writeCSV(cat, rows); err != nil {
				return err
			}
		}
	}

	if app.config.SQLitePath != "" {
		db, err := export.OpenDB(app.config.SQLitePath, app.logger)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.Store(rows); err != nil {
			return err
		}
		app.logger.WithFields(logrus.Fields{
			"path": app.config.SQLitePath,
			"rows": len(rows),
		}).Info("Wrote SQLite database")
	}

	return nil
}

// writeCSV writes one per-category CSV file. Categories without rows
// produce no file.
func (app *Application) writeCSV(cat asterix.Category, rows []*export.Row) error {
	n := 0
	for _, r := range rows {
		if r.Category == cat {
			n++
		}
	}
	if n == 0 {
		return nil
	}

	path := csvPath(app.config.CSVBase, cat)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteCSV(f, cat, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	app.logger.WithFields(logrus.Fields{
		"path": path,
		"rows": n,
	}).Info("Wrote CSV file")
	return nil
}

// csvPath derives the per-category output path: base "out.csv" becomes
// "out_cat048.csv" and "out_cat021.csv".
func csvPath(base string, cat asterix.Category) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".csv"
	}
	return fmt.Sprintf("%s_%s%s", stem, strings.ToLower(cat.String()), ext)
}
