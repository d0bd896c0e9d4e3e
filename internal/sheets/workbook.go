package sheets

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is a 2-D labeled cell grid addressed by 0-based (row, col).
type Sheet interface {
	SetCell(row, col int, value any) error
}

// Workbook owns the sheets of one spreadsheet file. It is written once and closed once.
//
//go:generate mockgen -source=workbook.go -destination=./mocks/workbook_mock.go -package=mocks
type Workbook interface {
	// Sheet returns the named sheet, creating it on first use. The first sheet created
	// takes the place of the default one.
	Sheet(name string) (Sheet, error)
	WriteTo(w io.Writer) (int64, error)
	Close() error
}

// WorkbookFactory opens a new, empty workbook.
type WorkbookFactory func() Workbook

// FileExtension is the extension of the files NewWorkbook produces.
const FileExtension = ".xlsx"

type excelWorkbook struct {
	file         *excelize.File
	defaultSheet string
	renamed      bool
}

// NewWorkbook creates an Office Open XML workbook backed by excelize.
func NewWorkbook() Workbook {
	file := excelize.NewFile()
	return &excelWorkbook{file: file, defaultSheet: file.GetSheetName(0)}
}

func (b *excelWorkbook) Sheet(name string) (Sheet, error) {
	index, err := b.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if index != -1 {
		return &excelSheet{file: b.file, name: name}, nil
	}

	if !b.renamed {
		if err := b.file.SetSheetName(b.defaultSheet, name); err != nil {
			return nil, fmt.Errorf("failed to rename default sheet to %q: %w", name, err)
		}
		b.renamed = true
		return &excelSheet{file: b.file, name: name}, nil
	}

	if _, err := b.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return &excelSheet{file: b.file, name: name}, nil
}

// WriteTo encodes the workbook and copies it to w. excelize's own WriteTo reports zero
// bytes when it streams directly, so the encoding goes through a buffer.
func (b *excelWorkbook) WriteTo(w io.Writer) (int64, error) {
	buf, err := b.file.WriteToBuffer()
	if err != nil {
		return 0, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.WriteTo(w)
}

func (b *excelWorkbook) Close() error {
	return b.file.Close()
}

type excelSheet struct {
	file *excelize.File
	name string
}

func (s *excelSheet) SetCell(row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("invalid cell (%d, %d): %w", row, col, err)
	}
	return s.file.SetCellValue(s.name, cell, value)
}
