package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-argser/argser"
	"github.com/shayne/yargs"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Benchmark a command with an int and a bool flag.
// Every library dispatches "run" and parses the same flags.

func BenchmarkSimpleCLI_Argser(b *testing.B) {
	schema := argser.Compile(argser.Definitions{
		"port":    argser.Int(),
		"verbose": argser.Flag().Alias("v"),
	})
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, rest, _ := argser.Command(args, "run")
		res, err := schema.Parse(rest)
		if err != nil || !res.Bool("verbose") {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().IntP("port", "p", 8080, "Server port")
		runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "run",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
						&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

type simpleFlags struct {
	Port    int  `flag:"port" help:"Server port"`
	Verbose bool `flag:"verbose" help:"Verbose output"`
}

func BenchmarkSimpleCLI_Yargs(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, rest, _ := argser.Command(args, "run")
		_, _ = yargs.ParseFlags[simpleFlags](rest)
	}
}

// Benchmark repeated values and positionals after "--"

func BenchmarkRepeated_Argser(b *testing.B) {
	schema := argser.Compile(argser.Definitions{
		"tag": argser.String().Many().Alias("t"),
	})
	args := []string{"--tag", "a", "-t", "b", "--tag=c", "--", "x", "y"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, err := schema.Parse(args)
		if err != nil || res.Count("tag") != 3 {
			b.Fatal(err)
		}
	}
}

func BenchmarkRepeated_Cobra(b *testing.B) {
	args := []string{"--tag", "a", "-t", "b", "--tag=c", "--", "x", "y"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().StringArrayP("tag", "t", nil, "Tags")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkRepeated_Urfave(b *testing.B) {
	args := []string{"bench", "--tag", "a", "-t", "b", "--tag=c", "--", "x", "y"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Tags"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
