package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/bunsetsu"
	"github.com/esimov/bunsetsu/format"
	"github.com/esimov/bunsetsu/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┐ ┬ ┬┌┐┌┌─┐┌─┐┌┬┐┌─┐┬ ┬
├┴┐│ │││││└─┐├┤  │ └─┐│ │
└─┘└─┘┘└┘└─┘└─┘ ┴ └─┘└─┘

Machine learned phrase segmentation for Japanese text.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source document, directory or URL")
	destination = flag.String("out", pipeName, "Destination")
	model       = flag.String("model", "", "Phrase model file or URL (default: the embedded Japanese model)")
	outFormat   = flag.String("format", format.Text, "Output format: text, json or tsv")
	separator   = flag.String("sep", "▁", "Phrase separator used in text output")
	nfkc        = flag.Bool("nfkc", true, "Normalize the text to NFKC before scoring")
	cacheSize   = flag.Int("cache", 1024, "Number of segmented lines kept for reuse (0 disables the cache)")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if !utils.Contains(format.Supported(), *outFormat) {
		flag.Usage()
		log.Fatalf("%s%s",
			utils.DecorateText(fmt.Sprintf("\nUnsupported output format %q!", *outFormat), utils.ErrorMessage),
			utils.DefaultColor,
		)
	}

	var cfg bunsetsu.Config
	if len(*model) > 0 {
		cfg.Model = loadModelData(*model)
	}
	eng, err := bunsetsu.New(cfg)
	if err != nil {
		log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Failed to load the phrase model: %v", err), utils.ErrorMessage))
	}

	proc := &bunsetsu.Processor{
		Engine:    eng,
		NFKC:      *nfkc,
		Separator: *separator,
		Format:    *outFormat,
		Pretty:    *destination == pipeName && term.IsTerminal(int(os.Stdout.Fd())),
		CacheSize: *cacheSize,
	}

	proc.Execute(&bunsetsu.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	})
}

// loadModelData reads a model resource from a local path or URL.
func loadModelData(path string) []byte {
	if utils.IsValidUrl(path) {
		f, err := utils.DownloadFile(path)
		if f != nil {
			defer os.Remove(f.Name())
		}
		if err != nil {
			log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Failed to download the phrase model: %v", err), utils.ErrorMessage))
		}
		path = f.Name()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Failed to read the phrase model: %v", err), utils.ErrorMessage))
	}
	return data
}
