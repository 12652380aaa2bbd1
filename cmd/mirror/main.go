package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"course-fetch/internal/config"
	"course-fetch/internal/sftpclient"
)

func main() {
	var (
		dir = flag.String("dir", "downloads", "local output tree to mirror")
	)
	flag.Parse()

	if fi, err := os.Stat(*dir); err != nil || !fi.IsDir() {
		log.Fatalf("not a directory: %s", *dir)
	}

	cfg := config.Load()

	upCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := sftpclient.UploadTree(ctx, upCfg, *dir); err != nil {
		log.Fatal(err)
	}
	log.Printf("mirrored %s to sftp://%s:%d%s", *dir, upCfg.Host, upCfg.Port, upCfg.RemoteDir)
}
