// Command resize batch-resizes image files to a target height or width.
package main

import (
	"fmt"
	"io"
	"os"

	imageresizer "github.com/menta2k/image-resizer"
	"github.com/menta2k/image-resizer/internal/fileutil"
	"github.com/menta2k/image-resizer/internal/settings"
)

const help = `Usage: resize 'height' | 'width'  length  files | directory

Batch resizes images to a given height or width.
Resizes any image files in the given directory or files.

Arguments:

    'height' | 'width'     The resize operation to perform.
    length                 The length in pixels to resize to.
    files | directory      The files or directory to resize.

Example:

    resize height 1080 *.png
`

// expectedArgumentCount is the number of argument tokens a valid run needs
const expectedArgumentCount = 3

// resizeFuncs dispatches each operation to its resize routine
var resizeFuncs = map[settings.Operation]func(*imageresizer.Resizer, string, int) error{
	settings.OpHeight: (*imageresizer.Resizer).ResizeToHeight,
	settings.OpWidth:  (*imageresizer.Resizer).ResizeToWidth,
}

func main() {
	fmt.Println()

	args := os.Args[1:]
	if len(args) < expectedArgumentCount {
		fmt.Printf("%s\n", help)
		return
	}

	if err := run(os.Stdout, args); err != nil {
		fmt.Println(err)
		fmt.Println()
		os.Exit(1)
	}
}

// run resizes the images named by args, printing progress to out
func run(out io.Writer, args []string) error {
	s := settings.Parse(args)
	if err := s.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Resizing to %s %d...\n\n", s.Operation, s.Length)

	files, err := fileutil.ReadImageFiles(s.Path)
	if err != nil {
		return err
	}

	resizer := imageresizer.New()
	resize := resizeFuncs[s.Operation]
	for _, file := range files {
		fmt.Fprintln(out, file)
		if err := resize(resizer, file, s.Length); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nDone.\n")
	return nil
}
