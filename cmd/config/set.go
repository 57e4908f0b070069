package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nexusfetch/nexusfetch/internals/commands"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a global config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct {
	// file overwrites the config file location
	file string
}

func (i *setRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	value := args[1]

	var newValue interface{}
	entry, ok := config[key]
	if !ok {
		return fmt.Errorf("config key \"%s\" does not exist", key)
	}

	switch entry.kind {
	case configKindString:
		newValue = value
	case configKindDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration \"%s\" for %s", value, key)
		}
		newValue = d.String()
	default:
		return fmt.Errorf("what? uncovered config values type")
	}

	previousValue := viper.Get(key)
	previousStringValue := fmt.Sprintf("%v", previousValue)
	if previousValue == nil {
		previousStringValue = "(unset)"
	}
	viper.Set(key, newValue)

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Changing config entry:\n  %s: %s → %v\n",
		key,
		gchalk.Strikethrough(previousStringValue),
		gchalk.Bold(fmt.Sprintf("%v", newValue)),
	)

	file := i.file
	if file == "" {
		var err error
		if file, err = File(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return err
	}

	return viper.WriteConfigAs(file)
}
