package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"course-fetch/internal/config"
	"course-fetch/internal/export"
	"course-fetch/internal/sftpclient"
	"course-fetch/internal/store"
)

func main() {
	var (
		manifestPath = flag.String("manifest", filepath.Join("downloads", store.ManifestFile), "manifest of the run to export")
		outPath      = flag.String("out", "LESSON-INVENTORY.csv", "output csv path")
		uploadSFTP   = flag.Bool("sftp", false, "upload the generated CSV via SFTP")
	)
	flag.Parse()

	cfg := config.Load()

	m, err := store.ReadManifest(*manifestPath)
	if err != nil {
		log.Fatal(err)
	}

	// asegura dir de salida
	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	if err := export.WriteInventoryCSVFile(*outPath, m); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d lessons from run %s to %s", m.TotalLessons(), m.RunID, *outPath)

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		remoteName := filepath.Base(*outPath)
		if err := sftpclient.UploadFile(ctx, upCfg, *outPath, remoteName); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	}
}
