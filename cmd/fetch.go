package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nexusfetch/nexusfetch/cmd/config"
	"github.com/nexusfetch/nexusfetch/internals/cmdlog"
	"github.com/nexusfetch/nexusfetch/internals/commands"
	"github.com/nexusfetch/nexusfetch/internals/globals"
	"github.com/nexusfetch/nexusfetch/internals/modinfo"
	"github.com/nexusfetch/nexusfetch/internals/pipeline"
)

func newFetchCmd() *cobra.Command {
	runner := &fetchRunner{
		logger: globals.Logger,
		newPipeline: func(s pipeline.Settings) *pipeline.Pipeline {
			return pipeline.New(s, globals.HTTPClient)
		},
	}

	cmd := commands.New(&cobra.Command{
		Use:   "nexusfetch <apikey> <gamename> <mod_id>",
		Short: "Fetches a Nexus Mods mod into modinfo.ini and screenshot.png",
		Long: `Fetches the metadata of a single mod from the Nexus Mods API, then writes
modinfo.ini and stores the preview image as screenshot.png.`,
		Example: `
  nexusfetch $NEXUS_KEY skyrim 42
  nexusfetch $NEXUS_KEY fallout4 1234 -o ./mods/armor`,
		Args: cobra.ExactArgs(3),
	}, runner)

	cmd.Flags().StringP("output", "o", "", "output directory (default is the current directory)")
	viper.BindPFlag("outputdir", cmd.Flags().Lookup("output"))

	return cmd.Command
}

type fetchRunner struct {
	logger      *cmdlog.Logger
	newPipeline func(pipeline.Settings) *pipeline.Pipeline
}

func (f *fetchRunner) RunE(cmd *cobra.Command, args []string) error {
	in, err := pipeline.ParseInput(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	task := f.logger.NewTask(pipeline.Steps)
	spin := cmdlog.NewMaybeSpinner(f.logger.Out())
	defer spin.Stop()

	reporter := pipeline.ReporterFunc(func(stage pipeline.Stage, msg string) {
		spin.Stop()
		switch stage {
		case pipeline.StageFetch:
			task.Step("🔎", msg+" …")
			spin.Start("")
		case pipeline.StageScreenshot:
			task.Step("🖼 ", msg+" …")
			spin.Start("")
		case pipeline.StageSkipScreenshot:
			task.Step("🖼 ", msg)
		case pipeline.StageWrite:
			task.Step("📝", msg+" …")
		}
	})

	res, err := f.newPipeline(config.Settings()).Run(contextOrBackground(cmd.Context()), in, reporter)
	if err != nil {
		return err
	}
	spin.Stop()

	if !res.Mod.Available && res.Mod.Status != "" {
		f.logger.Warn(fmt.Sprintf("This mod is not available on nexusmods.com (status: %s)", res.Mod.Status))
	}
	if info, err := modinfo.Read(res.ModInfoPath); err == nil {
		f.logger.Info(fmt.Sprintf("%s %s by %s", info.Name, info.Version, info.Author))
	}

	var lines []string
	for _, file := range res.Files() {
		lines = append(lines, fmt.Sprintf("• %s (%s)", file.Path, humanize.Bytes(uint64(file.Size))))
	}
	fmt.Fprintln(f.logger.Out(), commands.SummaryBox(commands.Emoji("✅ ")+"All done! Files created:", lines...))

	return nil
}

// contextOrBackground is used by runners that may be called without cobra
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
