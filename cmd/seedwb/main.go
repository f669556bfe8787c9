// seedwb genera un libro de planificación de ejemplo con las cuatro hojas
// requeridas (Stores, SKUs, Calendar, Planning) para probar la importación.
//
// Uso: go run ./cmd/seedwb [ruta/salida.xlsx]
// Por defecto escribe sample_plan.xlsx en el directorio actual.
package main

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

func main() {
	out := "sample_plan.xlsx"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	f := excelize.NewFile()
	defer f.Close()

	writeSheet(f, "Stores", [][]any{
		{"Seq No.", "ID", "Label", "City", "State"},
		{1, "ST035", "San Francisco Bay Trends", "San Francisco", "CA"},
		{2, "ST046", "Phoenix Sunwear", "Phoenix", "AZ"},
		{3, "ST064", "Dallas Ranch Supply", "Dallas", "TX"},
		{4, "ST066", "Atlanta Outfitters", "Atlanta", "GA"},
	})

	writeSheet(f, "SKUs", [][]any{
		{"ID", "Label", "Class", "Department", "Price", "Cost"},
		{"SK00158", "Crew Neck Merino Wool Sweater", "Tops", "Men's Apparel", 114.99, 18.28},
		{"SK00269", "Faux Leather Leggings", "Jewelry", "Footwear", 9.99, 8.45},
		{"SK00300", "Fleece-Lined Parka", "Jewelry", "Unisex Accessories", 199.99, 17.80},
		{"SK00304", "Cotton Polo Shirt", "Tops", "Women's Apparel", "$24.99", "$10.78"},
	})

	writeSheet(f, "Calendar", [][]any{
		{"Seq No.", "Week", "Week Label", "Month", "Month Label"},
		{1, "W01", "Week 01", "M01", "Feb"},
		{2, "W02", "Week 02", "M01", "Feb"},
		{3, "W03", "Week 03", "M01", "Feb"},
		{4, "W04", "Week 04", "M01", "Feb"},
		{5, "W05", "Week 05", "M02", "Mar"},
		{6, "W06", "Week 06", "M02", "Mar"},
	})

	writeSheet(f, "Planning", [][]any{
		{"Store", "SKU", "Week", "Sales Units"},
		{"ST035", "SK00158", "W01", 58},
		{"ST035", "SK00269", "W01", 20},
		{"ST035", "SK00158", "W02", 42},
		{"ST046", "SK00300", "W01", 4},
		{"ST046", "SK00304", "W05", 13},
		{"ST064", "SK00158", "W03", 7},
	})

	// La hoja por defecto de excelize no forma parte del libro requerido.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		fmt.Fprintln(os.Stderr, "eliminar hoja por defecto:", err)
		os.Exit(1)
	}

	if err := f.SaveAs(out); err != nil {
		fmt.Fprintln(os.Stderr, "guardar libro:", err)
		os.Exit(1)
	}
	fmt.Println("libro de ejemplo escrito en", out)
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) {
	if _, err := f.NewSheet(sheet); err != nil {
		fmt.Fprintln(os.Stderr, "crear hoja:", err)
		os.Exit(1)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			fmt.Fprintln(os.Stderr, "escribir fila:", err)
			os.Exit(1)
		}
	}
}
