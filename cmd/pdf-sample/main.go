// seehuhn.de/go/pdfsample - draw onto existing PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdf-sample draws demonstration content onto the first page of a PDF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/pdfsample/document"
	"seehuhn.de/go/pdfsample/editor"
	"seehuhn.de/go/pdfsample/internal/buildinfo"
	"seehuhn.de/go/pdfsample/internal/profile"
)

var (
	templateArg = flag.String("template", "", "template PDF `file` (default: blank A4 page)")
	outArg      = flag.String("o", "", "output `file`, for a single demo")
	dirArg      = flag.String("dir", ".", "output `directory`")
	jpFontArg   = flag.String("jp-font", "", "Japanese TrueType font `file`")
	thaiFontArg = flag.String("thai-font", "", "Thai TrueType font `file`")
	emojiArg    = flag.String("emoji-font", "", "font `file` for rendering emoji")
	passwdArg   = flag.String("p", "", "template PDF password")
	verbose     = flag.Bool("v", false, "log warnings to stderr")
	listArg     = flag.Bool("list", false, "list the available demos and exit")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")

	fallbackFonts []string
)

func main() {
	flag.Func("fallback-font", "additional font `file` for text shown as images (repeatable)", func(s string) error {
		fallbackFonts = append(fallbackFonts, s)
		return nil
	})
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "pdf-sample - draw demonstration content onto a PDF page\n")
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short("pdf-sample"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  pdf-sample [options] <demo>...\n")
		fmt.Fprintf(out, "  pdf-sample -list\n\n")
		fmt.Fprintf(out, "Arguments:\n")
		fmt.Fprintf(out, "  demo   name of a demo, or \"all\" to run every demo\n\n")
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  pdf-sample lines rect\n")
		fmt.Fprintf(out, "  pdf-sample -template form.pdf -jp-font NotoSansJP-Regular.ttf japanese\n")
	}
	flag.Parse()

	if *listArg {
		listDemos(os.Stdout)
		return
	}
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	demos, err := selectDemos(flag.Args())
	if err != nil {
		return err
	}
	if *outArg != "" && len(demos) > 1 {
		return errors.New("-o can only be used with a single demo")
	}

	opt := &editor.Options{
		Password: *passwdArg,
	}
	if *verbose {
		opt.Log = log.New(os.Stderr, "pdf-sample: ", 0)
	}
	opt.JapaneseFont, err = readOptional(*jpFontArg)
	if err != nil {
		return err
	}
	opt.ThaiFont, err = readOptional(*thaiFontArg)
	if err != nil {
		return err
	}
	opt.EmojiFont, err = readOptional(*emojiArg)
	if err != nil {
		return err
	}
	for _, fname := range fallbackFonts {
		data, err := os.ReadFile(fname)
		if err != nil {
			return err
		}
		opt.FallbackFonts = append(opt.FallbackFonts, data)
	}

	var template []byte
	if *templateArg != "" {
		template, err = os.ReadFile(*templateArg)
		if err != nil {
			return err
		}
		opt.ReadPassword = document.TerminalPassword(*templateArg)
	}

	e, err := editor.New(template, opt)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, demo := range demos {
		fname := *outArg
		if fname == "" {
			fname = filepath.Join(*dirArg, outputName(demo.Name, now))
		}
		err := writeDemo(e, demo, fname)
		if err != nil {
			return fmt.Errorf("%s: %w", demo.Name, err)
		}
		fmt.Printf("%s: %s\n", demo.Title, fname)
	}
	return nil
}

func writeDemo(e *editor.Editor, demo editor.Demo, fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = demo.Run(e, fd)
	err2 := fd.Close()
	if err != nil {
		os.Remove(fname)
		return err
	}
	return err2
}

// selectDemos maps the command line arguments to demos.
func selectDemos(args []string) ([]editor.Demo, error) {
	var res []editor.Demo
	for _, name := range args {
		if name == "all" {
			res = append(res, editor.Demos...)
			continue
		}
		demo, ok := editor.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q (use -list to see all demos)", name)
		}
		res = append(res, demo)
	}
	return res, nil
}

// outputName returns a time stamped file name for the output of a demo.
func outputName(demo string, t time.Time) string {
	return "sample-" + demo + "-" + t.Format("20060102150405") + ".pdf"
}

func readOptional(fname string) ([]byte, error) {
	if fname == "" {
		return nil, nil
	}
	return os.ReadFile(fname)
}

func listDemos(w io.Writer) {
	for _, demo := range editor.Demos {
		fmt.Fprintf(w, "%-18s %s\n", demo.Name, demo.Title)
	}
}
