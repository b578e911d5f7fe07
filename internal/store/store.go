package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/temcouple/internal/coupling"
)

// Store persists analysis runs under a data directory, one directory
// per run with metadata.json and inductance.csv.
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
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	C11 float64 `json:"c11"`
	C12 float64 `json:"c12"`
	C22 float64 `json:"c22"`

	EpsR float64 `json:"eps_r"`
	MuR  float64 `json:"mu_r"`

	L11 float64 `json:"l11"`
	L22 float64 `json:"l22"`
	M   float64 `json:"m"`
	K   float64 `json:"k"`

	Interpretation string `json:"interpretation"`
	Anomalous      bool   `json:"anomalous"`
}

func (s *Store) Save(c11, c12, c22, epsR, muR float64, result *coupling.Result) (string, error) {
	runID := fmt.Sprintf("coupling_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      time.Now(),
		C11:            c11,
		C12:            c12,
		C22:            c22,
		EpsR:           epsR,
		MuR:            muR,
		L11:            result.L11,
		L22:            result.L22,
		M:              result.M,
		K:              result.K,
		Interpretation: result.Interpretation,
		Anomalous:      result.Anomalous,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "inductance.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	n := result.L.Dims()
	header := make([]string, n)
	for j := 0; j < n; j++ {
		header[j] = fmt.Sprintf("l%d", j)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < n; i++ {
		row := make([]string, n)
		for j := 0; j < n; j++ {
			row[j] = strconv.FormatFloat(result.L.At(i, j), 'e', 12, 64)
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadInductance reads the stored inductance matrix back from CSV.
func (s *Store) LoadInductance(runID string) (*coupling.Matrix, error) {
	csvPath := filepath.Join(s.baseDir, runID, "inductance.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("store: no matrix data in %s", runID)
	}

	n := len(records) - 1
	m := coupling.NewMatrix(n)
	for i := 1; i <= n; i++ {
		if len(records[i]) != n {
			return nil, fmt.Errorf("store: ragged matrix row in %s", runID)
		}
		for j := 0; j < n; j++ {
			v, err := strconv.ParseFloat(records[i][j], 64)
			if err != nil {
				return nil, err
			}
			m.Set(i-1, j, v)
		}
	}

	return m, nil
}
