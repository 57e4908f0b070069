package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nexusfetch/nexusfetch/internals/commands"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get [key]",
		Short: "Gets a global config value (or all of them)",
		Args:  cobra.MaximumNArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		keys := make([]string, 0, len(config))
		for key := range config {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v %s\n", key, viper.Get(key), gchalk.Dim("# "+config[key].help))
		}
		return nil
	}

	key := strings.ToLower(args[0])
	if _, ok := config[key]; !ok {
		return fmt.Errorf("config key \"%s\" does not exist", key)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", key, viper.Get(key))
	return nil
}
