// Package storage records run metadata and the per-frame scalar histories
// (energy, pressure) for later plotting and spectrum analysis. Particle
// trajectories are never written.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Law           string    `json:"law"`
	Timestamp     time.Time `json:"timestamp"`
	Seed          int64     `json:"seed"`
	Dt            float64   `json:"dt"`
	StepsPerFrame int       `json:"steps_per_frame"`
	Particles     int       `json:"particles"`
	Frames        int       `json:"frames"`
	FinalKinetic  float64   `json:"final_kinetic"`
	FinalPotential float64  `json:"final_potential"`
	AvgPressure   float64   `json:"avg_pressure"`
}

// FrameRecord is one row of the scalar history.
type FrameRecord struct {
	Frame     int
	Kinetic   float64
	Potential float64
	Pressure  float64
}

// Save writes metadata.json plus history.csv for a finished run and
// returns the run ID.
func (s *Store) Save(meta RunMetadata, history []FrameRecord) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Law, time.Now().Unix())
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	histFile, err := os.Create(filepath.Join(runDir, "history.csv"))
	if err != nil {
		return "", err
	}
	defer histFile.Close()

	w := csv.NewWriter(histFile)
	if err := w.Write([]string{"frame", "kinetic", "potential", "pressure"}); err != nil {
		return "", err
	}
	for _, rec := range history {
		row := []string{
			strconv.Itoa(rec.Frame),
			strconv.FormatFloat(rec.Kinetic, 'g', -1, 64),
			strconv.FormatFloat(rec.Potential, 'g', -1, 64),
			strconv.FormatFloat(rec.Pressure, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return meta.ID, w.Error()
}

// List returns the metadata of all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

// LoadHistory reads back a run's scalar history.
func (s *Store) LoadHistory(runID string) ([]FrameRecord, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "history.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	history := make([]FrameRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("malformed history row: %v", row)
		}
		frame, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		kin, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		pot, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		prs, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, err
		}
		history = append(history, FrameRecord{Frame: frame, Kinetic: kin, Potential: pot, Pressure: prs})
	}
	return history, nil
}

// RecordFrame captures the engine's current frame scalars.
func RecordFrame(frame int, st *engine.State) FrameRecord {
	e := st.Energy()
	return FrameRecord{
		Frame:     frame,
		Kinetic:   e.Kinetic,
		Potential: e.Potential,
		Pressure:  st.AvgPressure(),
	}
}
