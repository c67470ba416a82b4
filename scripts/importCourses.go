package main

import (
	"log"
	"os"
	"strings"

	"dc3/config"
	"dc3/database"
	"dc3/models"

	"github.com/xuri/excelize/v2"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	path := "CourseCatalog.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		log.Fatalf("Failed to open workbook %s: %v", path, err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		log.Fatalf("Failed to read sheet %s: %v", sheet, err)
	}

	if len(rows) < 2 {
		log.Fatal("Workbook is empty or has only headers")
	}

	header := rows[0]
	log.Printf("Headers: %v", header)
	log.Printf("Total rows to import: %d", len(rows)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToUpper(strings.TrimSpace(h))] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range rows[1:] {
		if i%500 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		course := models.Course{
			Name:         getField(row, headerIndex, "NOMBRE"),
			Duration:     getField(row, headerIndex, "DURACION"),
			ThematicArea: getField(row, headerIndex, "AREA TEMATICA"),
			IsDeleted:    false,
		}

		// Skip rows without a course name
		if course.Name == "" {
			skipped++
			continue
		}

		// Course names are the match key for course-of-interest lookups
		var existing models.Course
		result := database.Database.Db.Where("name = ? AND is_deleted = ?", course.Name, false).First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %s: %v", course.Name, err)
				continue
			}
			inserted++
		} else {
			existing.Duration = course.Duration
			existing.ThematicArea = course.ThematicArea

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %s: %v", course.Name, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
