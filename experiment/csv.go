// Package experiment - CSV persistence of records.
package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed column set. Elapsed is serialized as integer
// nanoseconds and Cost with full float64 precision, so WriteCSV followed by
// ReadCSV reproduces the records exactly.
var csvHeader = []string{
	"run_id", "name", "algorithm", "repeat",
	"vertices", "edges", "degree_bound", "seed",
	"cost", "tree_edges", "feasible", "elapsed_ns",
}

// WriteCSV writes the header and one row per record, in slice order.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		row := []string{
			r.RunID,
			r.Name,
			r.Algorithm,
			strconv.Itoa(r.Repeat),
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			strconv.Itoa(r.DegreeBound),
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatFloat(r.Cost, 'g', -1, 64),
			strconv.Itoa(r.TreeEdges),
			strconv.FormatBool(r.Feasible),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV back into records.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("experiment: empty CSV")
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, perr := parseRow(row)
		if perr != nil {
			return nil, fmt.Errorf("experiment: CSV row %d: %w", i+2, perr)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (Record, error) {
	repeat, err := strconv.Atoi(row[3])
	if err != nil {
		return Record{}, err
	}
	vertices, err := strconv.Atoi(row[4])
	if err != nil {
		return Record{}, err
	}
	edges, err := strconv.Atoi(row[5])
	if err != nil {
		return Record{}, err
	}
	bound, err := strconv.Atoi(row[6])
	if err != nil {
		return Record{}, err
	}
	seed, err := strconv.ParseInt(row[7], 10, 64)
	if err != nil {
		return Record{}, err
	}
	cost, err := strconv.ParseFloat(row[8], 64)
	if err != nil {
		return Record{}, err
	}
	treeEdges, err := strconv.Atoi(row[9])
	if err != nil {
		return Record{}, err
	}
	feasible, err := strconv.ParseBool(row[10])
	if err != nil {
		return Record{}, err
	}
	elapsedNS, err := strconv.ParseInt(row[11], 10, 64)
	if err != nil {
		return Record{}, err
	}

	return Record{
		RunID:       row[0],
		Name:        row[1],
		Algorithm:   row[2],
		Repeat:      repeat,
		Vertices:    vertices,
		Edges:       edges,
		DegreeBound: bound,
		Seed:        seed,
		Cost:        cost,
		TreeEdges:   treeEdges,
		Feasible:    feasible,
		Elapsed:     time.Duration(elapsedNS),
	}, nil
}
