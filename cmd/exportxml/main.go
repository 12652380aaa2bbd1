package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"course-fetch/internal/export"
	"course-fetch/internal/store"
)

func main() {
	var (
		manifestPath = flag.String("manifest", filepath.Join("downloads", store.ManifestFile), "manifest of the run to export")
		outPath      = flag.String("out", "LESSON-INVENTORY.xml", "output xml path")
	)
	flag.Parse()

	m, err := store.ReadManifest(*manifestPath)
	if err != nil {
		log.Fatal(err)
	}

	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	if err := export.WriteInventoryXMLFile(*outPath, m); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d lessons from run %s to %s", m.TotalLessons(), m.RunID, *outPath)
}
