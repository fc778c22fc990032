// iobench measures file write/read latency against a single target file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/simplefileio/iobench"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "iobench",
		Short: "File I/O latency benchmarks",
	}

	root.AddCommand(onceCommand(), runCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func onceCommand() *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "once [file] [size]",
		Short: "Run every operation once and report seconds",
		Args:  cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			target := iobench.DefaultTargetPath
			size := iobench.DefaultSize
			if len(args) > 0 {
				target = args[0]
			}
			if len(args) > 1 {
				var err error
				size, err = strconv.Atoi(args[1])
				if err != nil || size <= 0 {
					fmt.Fprintf(os.Stderr, "error: invalid size %q\n", args[1])
					os.Exit(1)
				}
			}

			os.Exit(iobench.RunOnce(iobench.OnceConfig{
				TargetPath: target,
				Size:       size,
				Lines:      lines,
				Output:     os.Stdout,
				ErrOutput:  os.Stderr,
			}))
		},
	}

	cmd.Flags().IntVar(&lines, "lines", iobench.DefaultLines, "line count for the line benchmarks")

	return cmd
}

func runCommand() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "run [flags] <suite-files-or-dirs>...",
		Short: "Run median-of-N benchmark suites",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(iobench.Run(iobench.Config{
				TargetPath: target,
				SuitePaths: args,
				Output:     os.Stdout,
				ErrOutput:  os.Stderr,
			}))
		},
	}

	cmd.Flags().StringVar(&target, "file", iobench.DefaultTargetPath, "target file the operations write to and read from")

	return cmd
}
