/*
Package bunsetsu is a machine learned phrase segmentation library for Japanese text,
which scores every candidate boundary with a pretrained linear model over a sliding
window of characters and their Unicode blocks, and accepts a boundary whenever the
accumulated weight outweighs the model bias.

The package provides a command line interface, supporting various flags for the different
segmentation and output options. To check the supported commands type:

	$ bunsetsu --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"log"

		"github.com/esimov/bunsetsu"
	)

	func main() {
		eng, err := bunsetsu.New(bunsetsu.Config{})
		if err != nil {
			log.Fatal(err)
		}
		p := &bunsetsu.Processor{
			Engine:    eng,
			NFKC:      true,
			Separator: " / ",
		}

		phrases, err := p.Segment("吾輩は猫である。名前はまだ無い。")
		if err != nil {
			log.Fatal(err)
		}
		for _, ph := range phrases {
			fmt.Printf("%d..%d\t%s\n", ph.Start, ph.End, ph.Text)
		}
	}
*/
package bunsetsu
