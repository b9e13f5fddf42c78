// Command georaster inspects the supported pixel-format table, checks two
// raster grids for compatibility, and allocates demo buffers.
package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/georaster"
)

var rootCmd = &cobra.Command{
	Use:     "georaster",
	Version: georaster.Version,
	Short:   "Raster grid compatibility and typed buffer allocation",
	Long: `georaster answers two questions from raster mosaicking pipelines:
whether two datasets describe the same spatial grid, and what typed,
format-tagged buffer a given pixel encoding and channel count needs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Print the supported (encoding, channels) format table",
	RunE: func(cmd *cobra.Command, args []string) error {
		encodings := []georaster.PixelEncoding{
			georaster.Byte, georaster.UInt16, georaster.Int16,
			georaster.UInt32, georaster.Int32,
			georaster.Float32, georaster.Float64,
		}

		fmt.Printf("%-9s %-9s %-13s %-8s %s\n", "encoding", "channels", "format", "bytes/px", "webgpu")
		for _, enc := range encodings {
			for channels := 1; channels <= 4; channels++ {
				f, ok := georaster.FormatFor(enc, channels)
				if !ok {
					continue
				}
				gpu := "-"
				if tf, ok := georaster.GPUFormat(f); ok {
					gpu = fmt.Sprintf("%v", tf)
				}
				fmt.Printf("%-9s %-9d %-13s %-8d %s\n",
					enc, channels, f, f.BytesPerPixel(), gpu)
			}
		}
		return nil
	},
}

var (
	compatASize, compatBSize           string
	compatAProj, compatBProj           string
	compatATransform, compatBTransform string
)

var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Check whether two described raster grids can be combined",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := describeDataset(compatASize, compatAProj, compatATransform)
		if err != nil {
			return fmt.Errorf("dataset a: %w", err)
		}
		b, err := describeDataset(compatBSize, compatBProj, compatBTransform)
		if err != nil {
			return fmt.Errorf("dataset b: %w", err)
		}

		fmt.Printf("projections compatible: %v\n", georaster.ProjectionsCompatible(a, b))
		fmt.Printf("fully compatible:       %v\n", georaster.FullyCompatible(a, b))
		return nil
	},
}

var (
	allocSize     string
	allocChannels int
	allocEncoding string
	allocDefault  string
	allocOut      string
)

var allocCmd = &cobra.Command{
	Use:   "alloc",
	Short: "Allocate a typed buffer and report its layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, h, err := parseSize(allocSize)
		if err != nil {
			return err
		}
		enc, err := parseEncoding(allocEncoding)
		if err != nil {
			return err
		}
		def, err := parseVec4(allocDefault)
		if err != nil {
			return err
		}

		img, ok := georaster.NewImage2D(w, h, allocChannels, enc, def)
		if !ok {
			return fmt.Errorf("unsupported combination: %s with %d channels", enc, allocChannels)
		}

		fmt.Printf("format:   %v\n", img.Format())
		fmt.Printf("elements: %d\n", img.Len())
		fmt.Printf("bytes:    %d\n", len(img.Bytes()))
		if tf, ok := georaster.GPUFormat(img.Format()); ok {
			fmt.Printf("webgpu:   %v\n", tf)
		} else {
			fmt.Println("webgpu:   no direct equivalent")
		}

		if allocOut == "" {
			return nil
		}
		std, ok := georaster.ToImage(img)
		if !ok {
			return fmt.Errorf("%v has no preview representation", img.Format())
		}
		f, err := os.Create(allocOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, std); err != nil {
			return err
		}
		fmt.Printf("preview:  %s\n", allocOut)
		return nil
	},
}

// describeDataset builds an in-memory dataset from the flag values.
// An empty projection means absent; an empty transform means none readable.
func describeDataset(size, proj, transform string) (*georaster.DatasetInfo, error) {
	w, h, err := parseSize(size)
	if err != nil {
		return nil, err
	}
	d := &georaster.DatasetInfo{Width: w, Height: h}
	if proj != "" {
		d.Projection = proj
		d.HasProjection = true
	}
	if transform != "" {
		gt, err := parseTransform(transform)
		if err != nil {
			return nil, err
		}
		d.Transform = gt
		d.HasTransform = true
	}
	return d, nil
}

func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	if w, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	if h, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

func parseTransform(s string) (georaster.GeoTransform, error) {
	var gt georaster.GeoTransform
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return gt, fmt.Errorf("invalid transform %q, want 6 comma-separated values", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gt, fmt.Errorf("invalid transform coefficient %q", p)
		}
		gt[i] = v
	}
	return gt, nil
}

func parseVec4(s string) (georaster.Vec4, error) {
	var v georaster.Vec4
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return v, fmt.Errorf("invalid default %q, want 4 comma-separated values", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("invalid default component %q", p)
		}
		v[i] = f
	}
	return v, nil
}

func parseEncoding(s string) (georaster.PixelEncoding, error) {
	encodings := map[string]georaster.PixelEncoding{
		"byte":    georaster.Byte,
		"uint16":  georaster.UInt16,
		"int16":   georaster.Int16,
		"uint32":  georaster.UInt32,
		"int32":   georaster.Int32,
		"float32": georaster.Float32,
		"float64": georaster.Float64,
	}
	enc, ok := encodings[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown encoding %q", s)
	}
	return enc, nil
}

func init() {
	compatCmd.Flags().StringVar(&compatASize, "a-size", "256x256", "first raster size as WIDTHxHEIGHT")
	compatCmd.Flags().StringVar(&compatBSize, "b-size", "256x256", "second raster size as WIDTHxHEIGHT")
	compatCmd.Flags().StringVar(&compatAProj, "a-proj", "", "first spatial reference (empty = absent)")
	compatCmd.Flags().StringVar(&compatBProj, "b-proj", "", "second spatial reference (empty = absent)")
	compatCmd.Flags().StringVar(&compatATransform, "a-transform", "", "first geotransform as 6 comma-separated values")
	compatCmd.Flags().StringVar(&compatBTransform, "b-transform", "", "second geotransform as 6 comma-separated values")

	allocCmd.Flags().StringVar(&allocSize, "size", "512x512", "buffer size as WIDTHxHEIGHT")
	allocCmd.Flags().IntVar(&allocChannels, "channels", 1, "channels per pixel (1-4)")
	allocCmd.Flags().StringVar(&allocEncoding, "encoding", "byte", "pixel encoding (byte, uint16, int16, uint32, int32, float32, float64)")
	allocCmd.Flags().StringVar(&allocDefault, "default", "0,0,0,0", "per-channel default values")
	allocCmd.Flags().StringVar(&allocOut, "out", "", "write a PNG preview of the filled buffer")

	rootCmd.AddCommand(formatsCmd, compatCmd, allocCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
