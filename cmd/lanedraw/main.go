// Command lanedraw renders a scheduled program file to an image or an
// interactive window.
package main

import (
	"flag"
	"log"

	"github.com/lanedraw/lanedraw"
	"github.com/lanedraw/lanedraw/model"
	"github.com/lanedraw/lanedraw/style"

	// Enables the "window" renderer.
	_ "github.com/lanedraw/lanedraw/render/display"
)

func main() {
	programPath := flag.String("program", "", "scheduled program file (YAML)")
	stylePath := flag.String("style", "", "optional style override file (YAML)")
	preset := flag.String("preset", "standard", "base preset: standard, simple, or debugging")
	renderer := flag.String("renderer", "", "renderer name: raster, svg, or window")
	output := flag.String("o", "", "output file path")
	flag.Parse()

	if *programPath == "" {
		log.Fatalf("Usage: %s -program <file.yaml> [-o out.png | -renderer window]", flag.CommandLine.Name())
	}

	program, err := model.LoadProgram(*programPath)
	if err != nil {
		log.Fatal(err)
	}

	var base style.Preset
	switch *preset {
	case "standard":
		base = style.Standard()
	case "simple":
		base = style.Simple()
	case "debugging":
		base = style.Debugging()
	default:
		log.Fatalf("unknown preset %q", *preset)
	}

	opts := []lanedraw.Option{lanedraw.WithStyle(base)}
	if *stylePath != "" {
		overrides, err := style.LoadFile(*stylePath)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, lanedraw.WithOverrides(overrides))
	}
	name := *renderer
	if name == "" {
		if *output != "" {
			name = lanedraw.DefaultRenderer
		} else {
			name = "window"
		}
	}
	opts = append(opts, lanedraw.WithRenderer(name))
	if *output != "" {
		opts = append(opts, lanedraw.WithOutput(*output))
	}

	if _, err := lanedraw.Draw(program, opts...); err != nil {
		log.Fatal(err)
	}
	if *output != "" {
		log.Printf("wrote %s", *output)
	}
}
