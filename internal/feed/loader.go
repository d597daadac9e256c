// Package feed reads the item and container definition files. Names are
// returned in Unicode NFC form.
//
// Both files are comma separated with a header row:
//
//	name,weight
//	name,empty_weight,capacity
package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/LootContainers_Go/internal/catalog"
	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/domain"
	"github.com/osse101/LootContainers_Go/internal/logger"
	"github.com/osse101/LootContainers_Go/internal/metrics"
)

// ItemRecord is one row of the items feed
type ItemRecord struct {
	Name   string `validate:"required"`
	Weight int    `validate:"gte=0"`
}

// ContainerRecord is one row of the containers feed
type ContainerRecord struct {
	Name        string `validate:"required"`
	EmptyWeight int    `validate:"gte=0"`
	Capacity    int    `validate:"gte=0"`
}

// Loader reads feed files
type Loader interface {
	LoadItems(path string) ([]ItemRecord, error)
	LoadContainers(path string) ([]ContainerRecord, error)
}

type csvLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &csvLoader{validate: validator.New()}
}

// LoadItems reads an items feed file
func (l *csvLoader) LoadItems(path string) ([]ItemRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFeedFailed, path, err)
	}
	defer f.Close()
	return l.ReadItems(path, f)
}

// LoadContainers reads a containers feed file
func (l *csvLoader) LoadContainers(path string) ([]ContainerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFeedFailed, path, err)
	}
	defer f.Close()
	return l.ReadContainers(path, f)
}

// ReadItems parses an items feed. source names the input in errors.
func (l *csvLoader) ReadItems(source string, r io.Reader) ([]ItemRecord, error) {
	var records []ItemRecord
	err := readRows(source, r, ItemColumns, func(line int, row []string) error {
		weight, err := parseInt(source, line, "weight", row[1])
		if err != nil {
			return err
		}
		rec := ItemRecord{Name: norm.NFC.String(row[0]), Weight: weight}
		if err := l.check(source, line, rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

// ReadContainers parses a containers feed. source names the input in errors.
func (l *csvLoader) ReadContainers(source string, r io.Reader) ([]ContainerRecord, error) {
	var records []ContainerRecord
	err := readRows(source, r, ContainerColumns, func(line int, row []string) error {
		emptyWeight, err := parseInt(source, line, "empty_weight", row[1])
		if err != nil {
			return err
		}
		capacity, err := parseInt(source, line, "capacity", row[2])
		if err != nil {
			return err
		}
		rec := ContainerRecord{Name: norm.NFC.String(row[0]), EmptyWeight: emptyWeight, Capacity: capacity}
		if err := l.check(source, line, rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

func (l *csvLoader) check(source string, line int, rec any) error {
	err := l.validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf(ErrFmtInvalidRecord, domain.ErrInvalidInput, source, line, strings.Join(msgs, ", "))
}

// readRows skips the header row and hands each data row to fn with the
// line number it started on.
func readRows(source string, r io.Reader, columns int, fn func(line int, row []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columns

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf(ErrMsgReadHeader, source, errors.New(ErrMsgEmptyFeedSource))
		}
		return fmt.Errorf(ErrMsgReadHeader, source, err)
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf(ErrMsgReadRowFailed, source, err)
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

func parseInt(source string, line int, column, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf(ErrFmtBadNumber, domain.ErrInvalidInput, source, line, column, value)
	}
	return n, nil
}

// PopulateCatalog registers every item record in feed order.
func PopulateCatalog(ctx context.Context, cat *catalog.Catalog, records []ItemRecord) error {
	for _, rec := range records {
		if _, err := cat.Register(rec.Name, rec.Weight); err != nil {
			return fmt.Errorf(ErrMsgRegisterItem, rec.Name, err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgItemsLoaded, "count", len(records))
	return nil
}

// PopulateRegistry creates a standard container per record and registers it.
// Records whose name is already taken are skipped; the count of accepted
// containers is returned.
func PopulateRegistry(ctx context.Context, reg *container.Registry, items container.ItemFinder, records []ContainerRecord) int {
	log := logger.FromContext(ctx)

	accepted := 0
	for _, rec := range records {
		c := container.NewStandard(rec.Name, rec.EmptyWeight, rec.Capacity, items)
		if !reg.Register(c) {
			log.Warn(LogMsgDuplicateContainer, "container", rec.Name)
			continue
		}
		metrics.RecordContainerRegistered(metrics.KindStandard)
		accepted++
	}
	log.Info(LogMsgContainersLoaded, "count", accepted, "skipped", len(records)-accepted)
	return accepted
}
