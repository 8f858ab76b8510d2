package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"billdesk/internal/document/application"
	"billdesk/internal/observability/metrics"
)

// billdesk renders a business record (invoice, quotation or payment receipt)
// into a PDF. The record UI normally drives the render service directly; this
// command is the same surface for scripts and manual use.
//
// Invoice/quotation records are a single JSON object. Receipt input is a JSON
// object with "payment", "project" and "settings" members.
func main() {
	recordPath := flag.String("record", "", "path to the record JSON file")
	kind := flag.String("kind", "invoice", "record kind: invoice, quotation or receipt")
	preview := flag.Bool("preview", false, "render in memory and write bytes to -out instead of saving")
	outPath := flag.String("out", "", "output path for -preview")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	if *recordPath == "" {
		logger.Fatal("missing -record")
	}

	cfg, err := application.LoadConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}
	metrics.Init(logger)

	svc, err := application.NewRenderService(cfg, logger)
	if err != nil {
		logger.Fatalf("service error: %v", err)
	}

	raw, err := readRecord(*recordPath)
	if err != nil {
		logger.Fatalf("record error: %v", err)
	}

	switch {
	case *kind == "receipt" && *preview:
		data, err := svc.PreviewPaymentReceipt(member(raw, "payment"), member(raw, "project"), member(raw, "settings"))
		if err != nil {
			logger.Fatalf("render failed (kind=receipt): %v", err)
		}
		writePreview(logger, *outPath, data)
	case *kind == "receipt":
		path, err := svc.GeneratePaymentReceipt(member(raw, "payment"), member(raw, "project"), member(raw, "settings"))
		if err != nil {
			logger.Fatalf("render failed (kind=receipt): %v", err)
		}
		logger.Printf("saved %s", path)
	case *preview:
		data, err := svc.PreviewDocument(raw, *kind)
		if err != nil {
			logger.Fatalf("render failed (kind=%s): %v", *kind, err)
		}
		writePreview(logger, *outPath, data)
	default:
		path, err := svc.GenerateDocument(raw, *kind)
		if err != nil {
			logger.Fatalf("render failed (kind=%s): %v", *kind, err)
		}
		logger.Printf("saved %s", path)
	}
}

func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func member(raw map[string]any, key string) map[string]any {
	m, _ := raw[key].(map[string]any)
	return m
}

func writePreview(logger *log.Logger, path string, data []byte) {
	if path == "" {
		logger.Fatalf("missing -out for -preview")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatalf("write error: %v", err)
	}
	logger.Printf("wrote %s (%d bytes)", path, len(data))
}
