package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/davidolu/elector-registry/constants"
)

// mkelectors writes a file of fake elector rows for exercising the upload
// pipeline. Output format follows the file extension (csv or xlsx).

var departments = []string{
	"Computer Science",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Chemical Engineering",
	"Biology",
	"Physics",
	"Mathematics",
	"Economics",
	"Business Administration",
}

var firstNames = []string{
	"Adaeze", "Bayo", "Chidi", "Danielle", "Emeka", "Folake", "Grace",
	"Henry", "Ifeoma", "James", "Kemi", "Lanre", "Maria", "Nnamdi",
	"Olumide", "Patricia", "Samuel", "Tunde", "Uche", "Victor",
}

var lastNames = []string{
	"Abubakar", "Balogun", "Chukwu", "Dada", "Eze", "Femi", "Garba",
	"Ibrahim", "Johnson", "Kalu", "Lawal", "Mohammed", "Nwosu", "Okafor",
	"Peters", "Sanni", "Taylor", "Udo", "Williams", "Yusuf",
}

type fakeElector struct {
	email      string
	gender     string
	fullName   string
	department string
	matric     string
}

func generate(n int) []fakeElector {
	out := make([]fakeElector, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		e := fakeElector{
			email:      fmt.Sprintf("%s.%s%d@example.edu", first, last, i),
			gender:     []string{"M", "F"}[rand.Intn(2)],
			fullName:   first + " " + last,
			department: departments[rand.Intn(len(departments))],
			matric:     strconv.Itoa(1000000 + rand.Intn(9000000)),
		}
		out = append(out, e)
	}
	return out
}

func writeCSV(path string, electors []fakeElector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(constants.RequiredColumns); err != nil {
		return err
	}
	for _, e := range electors {
		if err := w.Write([]string{e.email, e.gender, e.fullName, e.department, e.matric}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(path string, electors []fakeElector) error {
	f := excelize.NewFile()
	const sheet = "Electors"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range constants.RequiredColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, e := range electors {
		values := []string{e.email, e.gender, e.fullName, e.department, e.matric}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func main() {
	count := flag.Int("n", 100, "number of elector rows to generate")
	out := flag.String("o", "electors.csv", "output path (.csv or .xlsx)")
	flag.Parse()

	electors := generate(*count)

	var err error
	switch constants.NormalizeExt(filepath.Ext(*out)) {
	case "csv":
		err = writeCSV(*out, electors)
	case "xlsx":
		err = writeXLSX(*out, electors)
	default:
		log.Fatalf("unsupported output extension: %s", *out)
	}
	if err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %d electors to %s", *count, *out)
}
