package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

func TestReadTableCSV(t *testing.T) {
	svc := NewImportService()

	csvData := `Date,Description,Amount,Type
2024-01-15,Groceries,"120,000",Expense
2024-01-16,Salary,2500000,Income`

	records, err := svc.ReadTable("transactions.csv", strings.NewReader(csvData), time.Now())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Groceries", records[0].Description)
	assert.Equal(t, 120000.0, records[0].Amount)
	assert.Equal(t, dto.TransactionType("Expense"), records[0].Type)
	assert.Equal(t, "2024-01-15", records[0].Date.String())
	assert.Equal(t, 2500000.0, records[1].Amount)
}

func TestReadTableCSVHeaderCaseInsensitive(t *testing.T) {
	svc := NewImportService()

	csvData := `date,DESCRIPTION,amount,type,category
2024-02-01,Rent,900000,Expense,Housing`

	records, err := svc.ReadTable("t.csv", strings.NewReader(csvData), time.Now())

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, dto.CategoryHousing, records[0].Category)
}

func TestReadTableCSVMissingColumn(t *testing.T) {
	svc := NewImportService()

	csvData := `Date,Description,Amount
2024-01-15,Groceries,120000`

	_, err := svc.ReadTable("t.csv", strings.NewReader(csvData), time.Now())

	assert.ErrorIs(t, err, dto.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Type")
}

func TestReadTableCSVCoercesBadAmount(t *testing.T) {
	svc := NewImportService()

	csvData := `Date,Description,Amount,Type
2024-01-15,Groceries,not-a-number,Expense
2024-01-16,Salary,500,Income`

	records, err := svc.ReadTable("t.csv", strings.NewReader(csvData), time.Now())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 0.0, records[0].Amount)
	assert.Equal(t, 500.0, records[1].Amount)
}

func TestReadTableCSVPersianCells(t *testing.T) {
	svc := NewImportService()

	csvData := `Date,Description,Amount,Type
1402/06/15,خرید نان,۴۵٬۰۰۰,Expense`

	records, err := svc.ReadTable("t.csv", strings.NewReader(csvData), time.Now())

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 45000.0, records[0].Amount)
	assert.Equal(t, "1402-06-15", records[0].Date.String())
}

func TestReadTableCSVDateFallsBackToToday(t *testing.T) {
	svc := NewImportService()
	today := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	csvData := `Date,Description,Amount,Type
sometime,Groceries,100,Expense`

	records, err := svc.ReadTable("t.csv", strings.NewReader(csvData), today)

	assert.NoError(t, err)
	assert.Equal(t, dto.Date{Year: 2024, Month: 7, Day: 1}, records[0].Date)
}

func TestReadTableSkipsBlankRows(t *testing.T) {
	svc := NewImportService()

	csvData := "Date,Description,Amount,Type\n2024-01-15,Groceries,100,Expense\n,,,\n"

	records, err := svc.ReadTable("t.csv", strings.NewReader(csvData), time.Now())

	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	svc := NewImportService()

	_, err := svc.ReadTable("notes.txt", strings.NewReader("hello"), time.Now())

	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}

func TestReadTableRejectsLegacyXLS(t *testing.T) {
	svc := NewImportService()

	_, err := svc.ReadTable("old-export.xls", strings.NewReader("\xd0\xcf\x11\xe0"), time.Now())

	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}
