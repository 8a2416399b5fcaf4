package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/quadgen/internal/array"
	"github.com/san-kum/quadgen/internal/quad"
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

// RuleMetadata describes how a stored rule was produced. Family is a kind
// name for classical rules, otherwise the generator ("custom",
// "vandermonde", "newton-cotes", "clenshaw-curtis").
type RuleMetadata struct {
	ID        string             `json:"id"`
	Family    string             `json:"family"`
	A         float64            `json:"a"`
	B         float64            `json:"b"`
	Order     int                `json:"order"`
	Solver    string             `json:"solver,omitempty"`
	Interval  []float64          `json:"interval,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

type ruleJSON struct {
	RuleMetadata
	X []float64 `json:"x"`
	W []float64 `json:"w"`
}

// Save writes metadata.json, rule.csv and rule.bin into a fresh run
// directory and returns its id.
func (s *Store) Save(meta RuleMetadata, rule quad.Rule) (string, error) {
	if len(rule.X) != len(rule.W) {
		return "", quad.Invalid("rule", [2]int{len(rule.X), len(rule.W)}, "x and w lengths differ")
	}

	now := time.Now()
	meta.ID = fmt.Sprintf("%s_n%d_%d", meta.Family, rule.Order(), now.UnixNano())
	meta.Order = rule.Order()
	meta.Timestamp = now
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeMetadata(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, "rule.csv"), rule); err != nil {
		return "", err
	}
	if err := writeBinary(filepath.Join(runDir, "rule.bin"), rule); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"id":     meta.ID,
		"family": meta.Family,
		"order":  meta.Order,
	}).Debug("rule saved")
	return meta.ID, nil
}

func writeMetadata(path string, meta RuleMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeCSV(path string, rule quad.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, rule)
}

// WriteCSV writes "i,x,w" rows with round-trip precision.
func WriteCSV(out io.Writer, rule quad.Rule) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"i", "x", "w"}); err != nil {
		return err
	}
	for i := range rule.X {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(rule.X[i], 'g', -1, 64),
			strconv.FormatFloat(rule.W[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeBinary(path string, rule quad.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := array.From(rule.X).DumpBinary(f); err != nil {
		return err
	}
	return array.From(rule.W).DumpBinary(f)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RuleMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RuleMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RuleMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			logrus.WithError(err).WithField("dir", entry.Name()).Debug("skipping run")
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(id string) (*RuleMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RuleMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadRule reads rule.csv.
func (s *Store) LoadRule(id string) (quad.Rule, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "rule.csv"))
	if err != nil {
		return quad.Rule{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return quad.Rule{}, err
	}
	if len(records) < 1 {
		return quad.Rule{}, fmt.Errorf("storage: %s/rule.csv has no header", id)
	}

	rule := quad.NewRule(len(records) - 1)
	for i, record := range records[1:] {
		if len(record) != 3 {
			return quad.Rule{}, fmt.Errorf("storage: %s/rule.csv line %d: want 3 fields, got %d", id, i+2, len(record))
		}
		if rule.X[i], err = strconv.ParseFloat(record[1], 64); err != nil {
			return quad.Rule{}, fmt.Errorf("storage: %s/rule.csv line %d: %w", id, i+2, err)
		}
		if rule.W[i], err = strconv.ParseFloat(record[2], 64); err != nil {
			return quad.Rule{}, fmt.Errorf("storage: %s/rule.csv line %d: %w", id, i+2, err)
		}
	}
	return rule, nil
}

// LoadRuleBinary reads rule.bin: the node container followed by the weight
// container, each in array binary form.
func (s *Store) LoadRuleBinary(id string) (quad.Rule, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "rule.bin"))
	if err != nil {
		return quad.Rule{}, err
	}
	defer f.Close()

	x, w := array.New[float64](0), array.New[float64](0)
	if err := x.ReadBinary(f); err != nil {
		return quad.Rule{}, fmt.Errorf("storage: %s/rule.bin nodes: %w", id, err)
	}
	if err := w.ReadBinary(f); err != nil {
		return quad.Rule{}, fmt.Errorf("storage: %s/rule.bin weights: %w", id, err)
	}
	if x.Len() != w.Len() {
		return quad.Rule{}, fmt.Errorf("storage: %s/rule.bin: %d nodes but %d weights", id, x.Len(), w.Len())
	}
	return quad.Rule{X: x.Data(), W: w.Data()}, nil
}

// ExportJSON writes metadata and rule as one indented document.
func ExportJSON(out io.Writer, meta RuleMetadata, rule quad.Rule) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ruleJSON{RuleMetadata: meta, X: rule.X, W: rule.W})
}

// ImportJSON reads a document written by ExportJSON.
func ImportJSON(in io.Reader) (RuleMetadata, quad.Rule, error) {
	var doc ruleJSON
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return RuleMetadata{}, quad.Rule{}, err
	}
	if len(doc.X) != len(doc.W) {
		return RuleMetadata{}, quad.Rule{}, fmt.Errorf("storage: %d nodes but %d weights", len(doc.X), len(doc.W))
	}
	return doc.RuleMetadata, quad.Rule{X: doc.X, W: doc.W}, nil
}
