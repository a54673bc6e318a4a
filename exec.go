package bunsetsu

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/bunsetsu/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

var (
	// srcFile holds the file being accessed, be it normal file or pipe name.
	srcFile *os.File

	// Common file related variable
	fi os.FileInfo
)

// Ops holds the batch execution options.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int

	// Spinner is the progress indicator shown while a document is being
	// segmented.
	Spinner *utils.Spinner
}

// result holds the relevant information about the segmentation process and the generated document.
type result struct {
	path string
	err  error
}

// Execute segments the source document or directory of documents, writing
// the output in the processor's configured format. The source may be a
// local path, a URL or the pipe name.
func (p *Processor) Execute(op *Ops) {
	var err error
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ BUNSETSU", utils.StatusMessage),
		utils.DecorateText("⇢ segmenting text...", utils.DefaultMessage),
	)
	op.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	// Supported files
	validExtensions := []string{".txt", ".text", ".md"}

	// Check if source path is a local document or URL.
	if utils.IsValidUrl(op.Src) {
		src, err := utils.DownloadFile(op.Src)
		if src != nil {
			defer os.Remove(src.Name())
		}

		if err != nil {
			log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Failed to load the source document: %v", err), utils.ErrorMessage))
		}
		fi, err = src.Stat()
		if err != nil {
			log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Failed to load the source document: %v", err), utils.ErrorMessage))
		}
		srcFile = src
	} else {
		// Check if the source is a pipe name or a regular file.
		if op.Src == op.PipeName {
			fi, err = os.Stdin.Stat()
		} else {
			fi, err = os.Stat(op.Src)
		}
		if err != nil {
			log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Failed to load the source document: %v", err), utils.ErrorMessage))
		}
	}

	now := time.Now()

	switch mode := fi.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup
		// Read destination file or directory.
		_, err := os.Stat(op.Dst)
		if err != nil {
			err = os.Mkdir(op.Dst, 0755)
			if err != nil {
				log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("Unable to get dir stats: %v", err), utils.ErrorMessage))
			}
		}

		// Limit the concurrently running workers to maxWorkers.
		if op.Workers <= 0 {
			op.Workers = runtime.NumCPU()
		}
		op.Workers = utils.Min(op.Workers, maxWorkers)

		// Process the document files from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		paths, errc := walkDir(done, op.Src, validExtensions)

		wg.Add(op.Workers)
		for i := 0; i < op.Workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(p, op.Dst, ch, done, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		for res := range ch {
			if res.err != nil {
				err = res.err
			}
			op.printOpStatus(res.path, err)
		}

		if err = <-errc; err != nil {
			fmt.Fprint(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := filepath.Ext(op.Dst)
		dstExtensions := append(validExtensions, ".json", ".tsv")
		if !isValidExtension(ext, dstExtensions) && op.Dst != op.PipeName {
			log.Fatalf("%s", utils.DecorateText(fmt.Sprintf("%v file type not supported", ext), utils.ErrorMessage))
		}

		err = op.process(p, op.Src, op.Dst)
		op.printOpStatus(op.Dst, err)
	}
	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
}

// consumer reads the path names from the paths channel and calls the segmentation processor against the source document.
func (op *Ops) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan interface{},
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(dest, filepath.Base(src))
		err := op.process(p, src, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process calls the segmenter over the source document and returns the error in case exists.
func (op *Ops) process(p *Processor, in, out string) error {
	// Start the progress indicator.
	op.Spinner.Start()

	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ BUNSETSU", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the document has been segmented successfully ✔", utils.SuccessMessage),
	)

	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ BUNSETSU", utils.StatusMessage),
		utils.DecorateText("segmenting text failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		op.Spinner.StopMsg = errorMsg
		op.Spinner.Stop()
		return err
	}

	// Capture CTRL-C signal and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		op.Spinner.RestoreCursor()
		if f, ok := dst.(*os.File); ok && out != op.PipeName {
			os.Remove(f.Name())
		}
		os.Exit(1)
	}()

	defer func() {
		if f, ok := src.(*os.File); ok {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	defer func() {
		if f, ok := dst.(*os.File); ok && out != op.PipeName {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	err = p.Process(src, dst)
	if err != nil {
		// remove the generated document in case of an error
		if f, ok := dst.(*os.File); ok && out != op.PipeName {
			os.Remove(f.Name())
		}

		op.Spinner.StopMsg = errorMsg
		// Stop the progress indicator.
		op.Spinner.Stop()

		return err
	}
	op.Spinner.StopMsg = successMsg
	// Stop the progress indicator.
	op.Spinner.Stop()

	return nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source path is a local document or URL.
	if utils.IsValidUrl(in) {
		src = srcFile
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == op.PipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			src = os.Stdin
		} else {
			src, err = decodeText(in)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	// The destination may be a pipe name, which covers both a pipe and a
	// plain terminal: segmented text is safe to print directly.
	if out == op.PipeName {
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %v", err)
		}
	}
	return src, dst, nil
}

// printOpStatus displays the relevant information about the segmentation process.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Fatalf("%s%s",
			utils.DecorateText("\nError segmenting the document:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	} else {
		if fname != op.PipeName {
			fmt.Fprintf(os.Stderr, "\nThe segmented document has been saved as: %s %s\n\n",
				utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
				utils.DefaultColor,
			)
		}
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}

			if isValidExtension(filepath.Ext(f.Name()), srcExts) {
				select {
				case <-done:
					return errors.New("directory walk cancelled")
				case pathChan <- path:
				}
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	return utils.Contains(extensions, ext)
}
