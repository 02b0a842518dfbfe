package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/motion/layer"
	"github.com/gogpu/motion/scenefile"
)

var infoCmd = &cobra.Command{
	Use:   "info <scene>",
	Short: "Print the layer tree of a scene file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	root, err := loadScene(args[0])
	if err != nil {
		return err
	}
	defer root.Release()

	printTree(cmd.OutOrStdout(), root)
	return nil
}

// loadScene reads and builds the scene at path.
func loadScene(path string) (*layer.Composition, error) {
	doc, err := scenefile.Load(path)
	if err != nil {
		return nil, err
	}
	return scenefile.Build(doc, buildOptions(path)...)
}

// buildOptions resolves font paths next to the scene file and applies the
// configured default shaper.
func buildOptions(path string) []scenefile.BuildOption {
	return []scenefile.BuildOption{
		scenefile.WithShaper(viper.GetString("shaper")),
		scenefile.WithBaseDir(filepath.Dir(path)),
	}
}

// printTree writes one line per layer, children indented below their
// composition and mattes below their owner.
func printTree(w io.Writer, root layer.Node) {
	printNode(w, root, 0, "")
}

func printNode(w io.Writer, n layer.Node, depth int, role string) {
	l := n.(timed)
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s#%d %s %q start=%d duration=%d rate=%g",
		indent, role, n.ID(), n.Kind(), n.Name(), l.StartTime(), l.Duration(), l.FrameRate())
	matte, mode := l.TrackMatte()
	if matte != nil {
		fmt.Fprintf(w, " matte=#%d(%s)", matte.ID(), mode)
	}
	fmt.Fprintln(w)

	if matte != nil {
		printNode(w, matte, depth+1, "matte ")
	}
	if c, ok := n.(*layer.Composition); ok {
		for _, child := range c.Layers() {
			printNode(w, child, depth+1, "")
		}
	}
}

// timed is the part of every layer kind the tree printer reads.
type timed interface {
	StartTime() int64
	Duration() int64
	FrameRate() float64
	TrackMatte() (layer.Node, layer.TrackMatteType)
}
