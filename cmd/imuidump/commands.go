package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/imui"
)

type sceneFlags struct {
	width  float32
	height float32
	frames int
	items  int
	tiles  int
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&f.width, "width", 1024, "surface width")
	cmd.Flags().Float32Var(&f.height, "height", 768, "surface height")
	cmd.Flags().IntVarP(&f.frames, "frames", "n", 2, "number of frames to build; the last one is reported")
	cmd.Flags().IntVar(&f.items, "items", 20, "rows in the sidebar list")
	cmd.Flags().IntVar(&f.tiles, "tiles", 8, "tiles in the grid")
}

// runScene builds the scripted frames and returns the last result.
func runScene(opts *rootOptions, sf *sceneFlags) (*imui.Context, frameResult, error) {
	if sf.frames < 1 {
		return nil, frameResult{}, fmt.Errorf("--frames must be at least 1")
	}
	ctx, err := opts.newContext()
	if err != nil {
		return nil, frameResult{}, err
	}
	sc, err := newScene(sf.items, sf.tiles)
	if err != nil {
		_ = ctx.Close()
		return nil, frameResult{}, err
	}
	defer sc.close()

	size := imui.Vec2{X: sf.width, Y: sf.height}
	var res frameResult
	for i := range sf.frames {
		if res, err = sc.run(ctx, size); err != nil {
			_ = ctx.Close()
			return nil, frameResult{}, fmt.Errorf("frame %d: %w", i+1, err)
		}
		opts.logger.Debug("frame built", "frame", i+1, "commands", len(res.draw.Commands), "vertices", res.draw.VertexCount)
	}
	return ctx, res, nil
}

func newDrawCmd(opts *rootOptions) *cobra.Command {
	sf := &sceneFlags{}
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Print the draw commands and statistics of the last frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, res, err := runScene(opts, sf)
			if err != nil {
				return err
			}
			defer ctx.Close()
			fmt.Fprintln(os.Stdout, renderDrawData(res.draw))
			fmt.Fprintln(os.Stdout, renderStats(ctx.Stats()))
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

func newTreeCmd(opts *rootOptions) *cobra.Command {
	sf := &sceneFlags{}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the resolved widget tree of the last frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, res, err := runScene(opts, sf)
			if err != nil {
				return err
			}
			defer ctx.Close()
			fmt.Fprintln(os.Stdout, renderTree(res.main))
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			return toml.NewEncoder(os.Stdout).Encode(cfg)
		},
	}
}
