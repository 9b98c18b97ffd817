package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/saihein2480/au-connect/internal/repository"
)

var (
	ErrExportNoContacts   = errors.New("no contacts to export")
	ErrExportGenerateFail = errors.New("failed to generate excel file")
)

// ExportService turns the contact directory into an .xlsx download. The
// buffer comes back to the handler, which sets the response headers and
// streams it out.
type ExportService interface {
	ExportContacts(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportContacts renders every contact as one spreadsheet row, in the same
// newest-first order the directory page shows.
func (s *exportService) ExportContacts(ctx context.Context) (*bytes.Buffer, string, error) {
	contacts, err := s.repo.Contact.List(ctx)
	if err != nil {
		s.logger.Error("list contacts for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(contacts) == 0 {
		return nil, "", ErrExportNoContacts
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Contacts"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "D", 20)
	f.SetColWidth(sheetName, "E", "G", 26)
	f.SetColWidth(sheetName, "H", "I", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Name", "Faculty", "Department", "Role", "Email", "Phone", "Facebook", "Line", "Gender"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for i := range contacts {
		c := &contacts[i]
		values := []string{c.Name, c.Faculty, c.Department, c.Role, c.Email, c.Phone, c.Facebook, c.Line, c.Gender}
		for j, v := range values {
			f.SetCellValue(sheetName, cell(colName(j), row), v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("contacts_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
