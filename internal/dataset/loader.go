package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/periodic/pkg/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures Load.
type Options struct {
	ElementsPath string
	GroupsPath   string
	// RequireGroups makes a missing groups file an error instead of a warning.
	RequireGroups bool
	Logger        *slog.Logger
}

// Load reads both datasets from disk. The two files are parsed concurrently.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		elements []core.Element
		columns  []string
		groups   []core.Group
	)

	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		elements, columns, err = LoadElementsFile(opts.ElementsPath, logger)
		return err
	})
	if opts.GroupsPath != "" {
		eg.Go(func() error {
			var err error
			groups, err = LoadGroupsFile(opts.GroupsPath)
			if errors.Is(err, fs.ErrNotExist) && !opts.RequireGroups {
				logger.Warn("group dataset not found, continuing without groups", slog.String("path", opts.GroupsPath))
				return nil
			}
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []core.Group{}
	}

	logger.Debug("dataset loaded",
		slog.String("elements_path", opts.ElementsPath),
		slog.Int("elements", len(elements)),
		slog.Int("columns", len(columns)),
		slog.String("groups_path", opts.GroupsPath),
		slog.Int("groups", len(groups)),
	)

	return &Dataset{
		Elements:     elements,
		Groups:       groups,
		Columns:      columns,
		ElementsPath: opts.ElementsPath,
		GroupsPath:   opts.GroupsPath,
	}, nil
}

// LoadElementsFile opens path and parses it with LoadElements.
func LoadElementsFile(path string, logger *slog.Logger) ([]core.Element, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open element dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	elements, columns, err := LoadElements(f, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return elements, columns, nil
}

// LoadElements parses a CSV element dataset. The header row names the
// fields; each data row becomes one Element with every value kept as text.
// Rows shorter than the header are padded with empty values and longer rows
// are truncated, so all records share the header's columns.
func LoadElements(r io.Reader, logger *slog.Logger) ([]core.Element, []string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("element dataset is empty: missing header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = string(bytes.TrimPrefix([]byte(h), utf8BOM))
		}
		columns[i] = strings.TrimSpace(h)
	}

	elements := make([]core.Element, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		if len(row) != len(columns) {
			line, _ := reader.FieldPos(0)
			logger.Warn("row width differs from header",
				slog.Int("line", line),
				slog.Int("fields", len(row)),
				slog.Int("columns", len(columns)),
			)
			if len(row) > len(columns) {
				row = row[:len(columns)]
			}
		}

		elements = append(elements, core.NewElement(columns, row))
	}

	return elements, columns, nil
}

// groupRecord is the on-disk shape of one group.
type groupRecord struct {
	Name     string         `mapstructure:"cs"`
	Elements []string       `mapstructure:"elements"`
	Extra    map[string]any `mapstructure:",remain"`
}

// LoadGroupsFile opens path and parses it with LoadGroups.
func LoadGroupsFile(path string) ([]core.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group dataset: %w", err)
	}

	groups, err := LoadGroups(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// LoadGroups parses a group dataset: a sequence of objects, each with a "cs"
// display name and an "elements" list of symbols. JSON and YAML are both
// accepted since JSON documents are valid YAML.
func LoadGroups(r io.Reader) ([]core.Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read group dataset: %w", err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &raw); err != nil {
		return nil, fmt.Errorf("invalid group dataset: %w", err)
	}

	groups := make([]core.Group, 0, len(raw))
	for i, item := range raw {
		var rec groupRecord
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &rec,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(item); err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("group %d: missing display name (cs)", i)
		}

		g := core.NewGroup(rec.Name, rec.Elements)
		for k, v := range rec.Extra {
			if s, ok := v.(string); ok {
				g.Names[k] = s
			}
		}
		groups = append(groups, g)
	}

	return groups, nil
}
