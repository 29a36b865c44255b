// Command casedex mirrors case documents into blob storage, extracts
// their text through an OCR service and publishes the recognised lines
// into a search index.
package main

import (
	"fmt"
	"os"

	"github.com/caselight/casedex/internal/adapters/driven/config/file"
	"github.com/caselight/casedex/internal/adapters/driven/ocr/readapi"
	"github.com/caselight/casedex/internal/adapters/driven/source/filesystem"
	"github.com/caselight/casedex/internal/adapters/driven/storage/memory"
	"github.com/caselight/casedex/internal/adapters/driven/storage/sqlite"
	"github.com/caselight/casedex/internal/adapters/driving/cli"
	"github.com/caselight/casedex/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := file.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := file.Load(path)
	if err != nil {
		return err
	}

	ledger, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer ledger.Close()

	blobs := memory.NewBlobStore(cfg.Storage.AccountName, cfg.Storage.ServiceURI)
	index := memory.NewSearchIndex()
	source := filesystem.NewSource(cfg.Source.Root)
	engine := readapi.NewClient(cfg.Ocr.Endpoint, cfg.Ocr.Key)

	links := services.NewLinkIssuer(blobs, services.LinkIssuerConfig{
		Expiry: cfg.Links.Expiry(),
	})
	extractor := services.NewExtractor(links, engine, services.ExtractorConfig{
		PollInterval:    cfg.Ocr.PollInterval(),
		MaxPollAttempts: cfg.Ocr.MaxPollAttempts,
	})
	writer := services.NewIndexer(index)
	reconciler := services.NewReconciler(blobs, ledger)
	ingest := services.NewOrchestrator(source, blobs, reconciler, extractor, writer)

	return cli.Execute(cli.Dependencies{
		Ingest:     ingest,
		Reconciler: reconciler,
		Source:     source,
		Ledger:     ledger,
	})
}
