package store

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/models"
)

const fileURIScheme = "file://"

// exportFileStorage is the local filesystem implementation of
// [ExportStorage]. Entity datasets are read from the file source URIs and
// results are written to dir, one file per job named after the job ID.
type exportFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewExportStorage creates dir if needed and returns an [ExportStorage]
// writing into it.
func NewExportStorage(dir string, logger *logger.Logger) (ExportStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewExportStorage").Str("dir", dir).Msg("error creating export directory")
		return nil, fmt.Errorf("error creating export directory: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving export directory: %w", err)
	}

	return &exportFileStorage{dir: absDir, logger: logger}, nil
}

// PathFromURI strips the file:// scheme from uri.
func PathFromURI(uri string) string {
	return strings.TrimPrefix(uri, fileURIScheme)
}

func (e *exportFileStorage) ReadEntityRows(ctx context.Context, source models.FileSource) ([]models.EntityRow, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.EntityRow, 0)
	for _, uri := range source.FileURIs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileRows, err := readEntityFile(PathFromURI(uri), source.DataFormat)
		if err != nil {
			log.Err(err).Str("func", "exportFileStorage.ReadEntityRows").Str("uri", uri).Msg("failed to read entity dataset")
			return nil, fmt.Errorf("error reading %s: %w", uri, err)
		}
		rows = append(rows, fileRows...)
	}

	return rows, nil
}

func readEntityFile(path string, format models.DataFormat) ([]models.EntityRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case models.DataFormatJSONLines, "":
		return readEntityJSONLines(f)
	case models.DataFormatCSV:
		return readEntityCSV(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// maxEntityLineSize caps a single JSON line of an entity dataset.
const maxEntityLineSize = 16 << 20

// readEntityJSONLines reads one flat JSON object of entity fields per line.
// Numbers are kept as json.Number so entity keys keep their textual form.
func readEntityJSONLines(r io.Reader) ([]models.EntityRow, error) {
	rows := make([]models.EntityRow, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntityLineSize)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(text))
		dec.UseNumber()

		fields := make(map[string]any)
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, models.EntityRow{Fields: fields})
	}

	return rows, scanner.Err()
}

// readEntityCSV reads a header line of entity names followed by value lines.
func readEntityCSV(r io.Reader) ([]models.EntityRow, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.EntityRow{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := make([]models.EntityRow, 0)
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, readErr
		}

		fields := make(map[string]any, len(header))
		for i, name := range header {
			fields[name] = record[i]
		}
		rows = append(rows, models.EntityRow{Fields: fields})
	}

	return rows, nil
}

func (e *exportFileStorage) WriteResults(ctx context.Context, jobID string, format models.DataFormat, rows []models.FieldValues) (string, error) {
	log := logger.FromContext(ctx)

	var ext string
	switch format {
	case models.DataFormatJSONLines, "":
		ext = ".jsonl"
	case models.DataFormatCSV:
		ext = ".csv"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}

	path := filepath.Join(e.dir, jobID+ext)
	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "exportFileStorage.WriteResults").Str("path", path).Msg("failed to create export file")
		return "", fmt.Errorf("error creating export file: %w", err)
	}

	if ext == ".csv" {
		err = writeResultsCSV(f, rows)
	} else {
		err = writeResultsJSONLines(f, rows)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "exportFileStorage.WriteResults").Str("path", path).Msg("failed to write export file")
		os.Remove(path)
		return "", fmt.Errorf("error writing export file: %w", err)
	}

	return fileURIScheme + path, nil
}

func writeResultsJSONLines(w io.Writer, rows []models.FieldValues) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeResultsCSV writes one column per field name (sorted), followed by a
// "<field>__status" column per field.
func writeResultsCSV(w io.Writer, rows []models.FieldValues) error {
	columnSet := make(map[string]struct{})
	for _, row := range rows {
		for name := range row.Fields {
			columnSet[name] = struct{}{}
		}
		for name := range row.Statuses {
			columnSet[name] = struct{}{}
		}
	}

	columns := make([]string, 0, len(columnSet))
	for name := range columnSet {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	header := make([]string, 0, len(columns)*2)
	header = append(header, columns...)
	for _, name := range columns {
		header = append(header, name+"__status")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		for _, name := range columns {
			record = append(record, formatCSVValue(row.Fields[name]))
		}
		for _, name := range columns {
			record = append(record, string(row.Statuses[name]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCSVValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
