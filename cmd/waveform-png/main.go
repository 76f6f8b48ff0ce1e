// Command waveform-png renders one channel of an audio file to a PNG image.
// WAV, AIFF, MP3 and Ogg Vorbis inputs are recognized by file extension.
//
// Usage:
//
//	waveform-png input.wav output.png
//	waveform-png -width 1920 -height 200 -start 10 -end 20 input.wav out.png
//	waveform-png -bins 64,512,4096 -channel 1 -gray input.wav out.png
//
// Bin sizes default to powers of four from 16 samples. Each render picks the
// coarsest bin size that still gives one bin per column.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/tphakala/go-waveform"
)

const (
	// CLI defaults
	defaultWidth    = 1000
	defaultHeight   = 100
	defaultAmp      = 1.0
	minRequiredArgs = 2

	// endOfFile marks an -end that was not set
	endOfFile = -1.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	bins := flag.String("bins", "", "Comma-separated bin sizes in samples (default: powers of 4 from 16)")
	start := flag.Float64("start", 0, "Window start in seconds")
	end := flag.Float64("end", endOfFile, "Window end in seconds (default: end of file)")
	width := flag.Int("width", defaultWidth, "Image width in pixels")
	height := flag.Int("height", defaultHeight, "Image height in pixels")
	channel := flag.Int("channel", 0, "Channel to render (0-based)")
	gray := flag.Bool("gray", false, "Write a grayscale image instead of RGBA")
	amp := flag.Float64("amp", defaultAmp, "Displayed amplitude range is [-amp, amp]")
	parallel := flag.Bool("parallel", true, "Render columns concurrently")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	// Validate arguments before setting up profiling
	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{wav,aiff,mp3,ogg} output.png\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s input.wav wave.png                        # Whole file, 1000x100\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -start 60 -end 90 -width 1920 in.wav z.png # 30 second window\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -gray -amp 0.5 quiet.wav quiet.png         # Zoom into quiet audio\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	opts := renderOptions{
		start:    *start,
		end:      *end,
		width:    *width,
		height:   *height,
		channel:  *channel,
		gray:     *gray,
		amp:      *amp,
		parallel: *parallel,
		verbose:  *verbose,
	}
	var err error
	if opts.binSizes, err = parseBinSizes(*bins); err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Image: %dx%d, channel %d", opts.width, opts.height, opts.channel)
		if *parallel {
			log.Printf("Parallel: enabled (concurrent column rendering)")
		} else {
			log.Printf("Parallel: disabled (sequential rendering)")
		}
	}

	begin := time.Now()
	stats, err := renderFile(inputPath, outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(begin)

	// Print summary
	fmt.Printf("Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d samples\n", stats.sampleRate, stats.channels, stats.samples)
	fmt.Printf("  Window: %v, bin size %d\n", stats.window, stats.binSize)
	fmt.Printf("  Image: %dx%d in %.2fms\n", opts.width, opts.height, float64(elapsed.Microseconds())/1000)

	return nil
}

type renderStats struct {
	sampleRate int
	channels   int
	samples    int
	binSize    int
	window     waveform.TimeRange
}

func renderFile(inputPath, outputPath string, opts renderOptions) (*renderStats, error) {
	// 1. Decode and convert the selected channel
	input, err := loadChannel(inputPath, opts.channel, opts.verbose)
	if err != nil {
		return nil, err
	}
	samples := input.samples

	// 2. Build the multi-resolution index
	renderer, err := newRenderer(samples, opts)
	if err != nil {
		return nil, err
	}

	// 3. Render the window
	window := opts.window(samples.Duration())
	binSize, err := renderer.SelectBinSize(window, opts.width)
	if err != nil {
		return nil, fmt.Errorf("failed to select bin size: %w", err)
	}
	if opts.verbose {
		log.Printf("Window %v: bin size %d", window, binSize)
	}

	img, err := renderer.RenderImage(window, opts.width, opts.height)
	if err != nil {
		return nil, fmt.Errorf("failed to render waveform: %w", err)
	}

	// 4. Encode
	if err := writePNG(outputPath, img); err != nil {
		return nil, err
	}

	return &renderStats{
		sampleRate: input.rate,
		channels:   input.channels,
		samples:    len(samples.Data),
		binSize:    binSize,
		window:     window,
	}, nil
}
