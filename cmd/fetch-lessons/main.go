package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"course-fetch/internal/config"
	"course-fetch/internal/devutil"
	"course-fetch/internal/fetch"
	"course-fetch/internal/httpx"
	"course-fetch/internal/providers/skilljar"
	"course-fetch/internal/ratelimit"
	"course-fetch/internal/sftpclient"
	"course-fetch/internal/store"
)

func main() {
	var (
		apiKey     = flag.String("api-key", "", "Skilljar API key (falls back to SKILLJAR_API_KEY)")
		courseIDs  = flag.String("course-ids", "", "comma-separated course IDs to download (required)")
		outputDir  = flag.String("output-dir", "", "output directory (falls back to FETCH_OUTPUT_DIR, default downloads)")
		baseURL    = flag.String("base-url", "", "base URL for the Skilljar API")
		maxPages   = flag.Int("max-pages", 0, "max pages to fetch per listing (0 = all)")
		insecure   = flag.Bool("insecure-skip-verify", false, "disable TLS certificate verification (corporate proxies only)")
		uploadSFTP = flag.Bool("sftp", false, "mirror the output tree via SFTP after the run")
	)
	flag.Parse()

	cfg := config.Load()

	key := firstNonEmpty(*apiKey, cfg.APIKey)
	if key == "" {
		log.Fatal("missing API key: pass --api-key or set SKILLJAR_API_KEY")
	}

	ids := splitIDs(*courseIDs)
	if len(ids) == 0 {
		log.Fatal("missing --course-ids")
	}

	skipVerify := *insecure || cfg.InsecureSkipVerify
	if skipVerify {
		log.Print("WARN: TLS certificate verification is DISABLED for this run")
	}

	client := skilljar.New(firstNonEmpty(*baseURL, cfg.BaseURL), key)
	client.HTTP = httpx.NewClient(2*time.Minute, skipVerify)
	client.Limiter = ratelimit.New(cfg.RateLimitRPS)
	client.PageSize = cfg.PageSize

	out := firstNonEmpty(*outputDir, cfg.OutputDir)
	st, err := store.New(out)
	if err != nil {
		log.Fatal(err)
	}

	// timeout general grande
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Hour)
	defer cancel()

	fmt.Printf("Starting download of %d courses into %s...\n", len(ids), out)

	f := fetch.New(skilljar.Provider{C: client, MaxPages: *maxPages}, st)
	m, err := f.Run(ctx, ids)
	if err != nil {
		log.Fatal(err)
	}

	for i, c := range m.Courses {
		fmt.Printf("%d) %v\n", i+1, devutil.Pick(c, "course_id", "error"))
	}
	fmt.Printf("Done: run=%s courses=%d lessons=%d\n", m.RunID, len(m.Courses), m.TotalLessons())

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 30*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadTree(upCtx, upCfg, out); err != nil {
			log.Fatal(err)
		}
		log.Printf("mirrored %s to sftp://%s:%d%s", out, upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}
}

func splitIDs(s string) []string {
	var out []string
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
