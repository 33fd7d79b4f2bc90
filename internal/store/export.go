package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/pde"
)

type ExportData struct {
	Config  *config.Simulation `json:"config"`
	Sigma   float64            `json:"sigma"`
	XValues []float64          `json:"x_values"`
	TValues []float64          `json:"t_values"`
	U       [][]float64        `json:"u"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// ExportJSON writes the full solution plus coordinate axes as a single
// JSON document, the shape downstream plotting tools expect.
func ExportJSON(w io.Writer, cfg *config.Simulation, sigma float64, x, t []float64, field *pde.Field, metricVals map[string]float64) error {
	data := ExportData{
		Config:  cfg,
		Sigma:   sigma,
		XValues: x,
		TValues: t,
		U:       make([][]float64, field.Rows()),
		Metrics: metricVals,
	}
	for i := range data.U {
		data.U[i] = field.Row(i)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile is ExportJSON to a path.
func ExportJSONFile(path string, cfg *config.Simulation, sigma float64, x, t []float64, field *pde.Field, metricVals map[string]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, cfg, sigma, x, t, field, metricVals)
}
