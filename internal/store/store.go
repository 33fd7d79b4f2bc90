// Package store persists completed runs: a metadata.json describing the
// configuration and diagnostics, and a solution.csv holding the dense
// space-time field one time step per row.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/pde"
)

type Store struct {
	baseDir string
	counter int
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Config    *config.Simulation `json:"config"`
	Sigma     float64            `json:"sigma"`
	Stable    bool               `json:"stable"`
	Steps     int                `json:"steps"`
	Points    int                `json:"points"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) Save(cfg *config.Simulation, sigma float64, stable bool, metricVals map[string]float64, times []float64, field *pde.Field) (string, error) {
	s.counter++
	runID := fmt.Sprintf("%s_%d_%d", cfg.Equation, time.Now().Unix(), s.counter)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Config:    cfg,
		Sigma:     sigma,
		Stable:    stable,
		Steps:     field.Rows(),
		Points:    field.Cols(),
		Metrics:   metricVals,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "solution.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := make([]string, 0, field.Cols()+1)
	header = append(header, "time")
	for j := 0; j < field.Cols(); j++ {
		header = append(header, fmt.Sprintf("u%d", j))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := make([]string, field.Cols()+1)
	for i := 0; i < field.Rows(); i++ {
		row[0] = strconv.FormatFloat(times[i], 'g', -1, 64)
		for j, v := range field.Row(i) {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSolution reads a stored solution back as times plus a dense
// field.
func (s *Store) LoadSolution(runID string) ([]float64, *pde.Field, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "solution.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("run %s has no solution rows", runID)
	}

	rows := len(records) - 1
	cols := len(records[0]) - 1
	times := make([]float64, rows)
	field := pde.NewField(rows, cols)

	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) != cols+1 {
			return nil, nil, fmt.Errorf("run %s: ragged row %d", runID, i)
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, err
		}
		times[i-1] = t
		row := field.Row(i - 1)
		for j := 1; j < len(rec); j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, nil, err
			}
			row[j-1] = v
		}
	}
	return times, field, nil
}
