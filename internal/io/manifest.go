package io

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gonum/matrix/mat64"
	"gopkg.in/yaml.v3"

	dfc "github.com/suejin73/dynamic-functional-connectivity"
)

// ErrUnsupportedFormat is returned for time-series files whose extension
// is neither .npy nor .csv.
var ErrUnsupportedFormat = errors.New("io: unsupported time-series format")

const (
	// LayoutROIMajor marks files stored ROI-by-timepoint.
	LayoutROIMajor = "roi-major"

	// LayoutTimeMajor marks files stored timepoint-by-ROI.
	LayoutTimeMajor = "time-major"
)

// Subject is one cohort member in a manifest.
type Subject struct {
	ID     string `yaml:"id"`
	Path   string `yaml:"path"`
	Layout string `yaml:"layout,omitempty"`
}

// Manifest describes a cohort on disk: one time-series file per subject
// plus the computation defaults. Relative subject paths are resolved
// against the manifest's directory.
type Manifest struct {
	Name     string    `yaml:"name"`
	Window   int       `yaml:"window,omitempty"`
	Workers  int       `yaml:"workers,omitempty"`
	Layout   string    `yaml:"layout,omitempty"`
	Subjects []Subject `yaml:"subjects"`

	dir string
}

// LoadManifest reads and validates a YAML cohort manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if len(m.Subjects) == 0 {
		return nil, fmt.Errorf("manifest %s: no subjects", path)
	}

	if m.Layout == "" {
		m.Layout = LayoutROIMajor
	}
	if err := checkLayout(m.Layout); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	for i := range m.Subjects {
		s := &m.Subjects[i]
		if s.Path == "" {
			return nil, fmt.Errorf("manifest %s: subject %d has no path", path, i)
		}
		if s.ID == "" {
			s.ID = strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
		}
		if s.Layout == "" {
			s.Layout = m.Layout
		}
		if err := checkLayout(s.Layout); err != nil {
			return nil, fmt.Errorf("manifest %s: subject %s: %w", path, s.ID, err)
		}
	}

	m.dir = filepath.Dir(path)

	return &m, nil
}

func checkLayout(layout string) error {
	if layout != LayoutROIMajor && layout != LayoutTimeMajor {
		return fmt.Errorf("unknown layout %q", layout)
	}

	return nil
}

// LoadCohort loads every subject's time series, normalized to the
// ROI-by-timepoint orientation, using the given number of concurrent
// loaders. It returns the cohort and the subject IDs in manifest order.
func (m *Manifest) LoadCohort(workers int) (*dfc.Cohort, []string, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(m.Subjects) {
		workers = len(m.Subjects)
	}

	series := make([]*mat64.Dense, len(m.Subjects))
	errs := make([]error, len(m.Subjects))

	{ // Load subject files concurrently
		order := make(chan int, workers)
		var wg sync.WaitGroup

		wg.Add(len(m.Subjects))

		for i := 0; i < workers; i++ {
			go m.loadWorker(series, errs, order, &wg)
		}

		for s := 0; s < len(m.Subjects); s++ {
			order <- s
		}

		wg.Wait()
		close(order)
	}

	for s, err := range errs {
		if err != nil {
			return nil, nil, fmt.Errorf("subject %s: %w", m.Subjects[s].ID, err)
		}
	}

	ids := make([]string, len(m.Subjects))
	for s := range m.Subjects {
		ids[s] = m.Subjects[s].ID
	}

	cohort, err := dfc.NewCohortFromMatrices(series)
	if err != nil {
		return nil, nil, err
	}

	return cohort, ids, nil
}

func (m *Manifest) loadWorker(series []*mat64.Dense, errs []error, order <-chan int, wg *sync.WaitGroup) {
	for {
		s, ok := <-order
		if ok {
			series[s], errs[s] = m.LoadSubject(s)

			wg.Done()
		} else {
			break
		}
	}

	return
}

// LoadSubject loads the i-th subject's series, normalized to the
// ROI-by-timepoint orientation.
func (m *Manifest) LoadSubject(i int) (*mat64.Dense, error) {
	return m.loadSubject(m.Subjects[i])
}

func (m *Manifest) loadSubject(s Subject) (*mat64.Dense, error) {
	path := s.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.dir, path)
	}

	var (
		ts  *mat64.Dense
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".npy":
		ts, err = NpytoMat64(path)
	case ".csv":
		ts, err = CSVtoMat64(path)
	default:
		err = fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	if s.Layout == LayoutTimeMajor {
		ts = transpose(ts)
	}

	return ts, nil
}

func transpose(m *mat64.Dense) *mat64.Dense {
	rows, cols := m.Dims()
	out := mat64.NewDense(cols, rows, nil)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}

	return out
}
