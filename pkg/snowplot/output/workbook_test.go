package output

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

func testDataset() *models.DatasetData {
	table := &models.Table{
		Schema: models.Schema{"ymd", "gp", "cellA"},
		Stamps: []string{"2012030100", "2012030200"},
		Dates: []time.Time{
			time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2012, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		Columns: map[string][]float64{
			"gp":    {1, 2},
			"cellA": {0, 150.5},
		},
	}
	doy := models.DayOfYear{BaseYear: 2012, Days: []int{61, 62}}

	mal, _ := models.ParseModelVariant("mal")
	xmd, _ := models.ParseModelVariant("xmd")
	return &models.DatasetData{
		Name:     "snowalgae_2012_test",
		BaseYear: 2012,
		Variants: []models.VariantData{
			{Model: mal, Table: table, DOY: doy},
			{Model: xmd, Table: table, DOY: doy},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snowalgae_2012_test.xlsx")

	if err := WriteWorkbook(path, testDataset()); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "mal" || sheets[1] != "xmd" {
		t.Fatalf("Expected sheets [mal xmd], got %v", sheets)
	}

	rows, err := f.GetRows("mal")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	expectedHeader := []string{"ymd", "doy", "gp", "cellA"}
	for i, h := range expectedHeader {
		if rows[0][i] != h {
			t.Errorf("Header column %d: expected %q, got %q", i+1, h, rows[0][i])
		}
	}
	if rows[1][0] != "2012030100" {
		t.Errorf("Expected stamp 2012030100, got %q", rows[1][0])
	}
	if rows[2][1] != "62" {
		t.Errorf("Expected doy 62, got %q", rows[2][1])
	}
	if rows[2][3] != "150.5" {
		t.Errorf("Expected cellA 150.5, got %q", rows[2][3])
	}

	tables, err := f.GetTables("xmd")
	if err != nil {
		t.Fatalf("GetTables failed: %v", err)
	}
	if len(tables) != 1 || tables[0].Range != "A1:D3" {
		t.Errorf("Expected one table over A1:D3, got %+v", tables)
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := WriteWorkbook(path, &models.DatasetData{Name: "empty"}); err == nil {
		t.Error("Expected error for dataset without variants")
	}
}

func TestDataRange(t *testing.T) {
	tests := []struct {
		rows, cols int
		expected   string
		wantErr    bool
	}{
		{2, 4, "A1:D3", false},
		{8760, 9, "A1:I8761", false},
		{0, 1, "A1:A1", false},
		{1, 0, "", true},
	}

	for _, tt := range tests {
		result, err := dataRange(tt.rows, tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("dataRange(%d, %d) error = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("dataRange(%d, %d) = %q, expected %q", tt.rows, tt.cols, result, tt.expected)
		}
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"mal", "tbl_mal"},
		{"xmd-f", "tbl_xmd_f"},
		{"No.33", "tbl_No.33"},
	}

	for _, tt := range tests {
		if result := tableName(tt.input); result != tt.expected {
			t.Errorf("tableName(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
