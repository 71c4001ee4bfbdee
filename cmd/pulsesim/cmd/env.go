// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables providing defaults for unset flags.
const (
	envInput   = "PULSESIM_INPUT"
	envPresses = "PULSESIM_PRESSES"
	envSink    = "PULSESIM_SINK"
)

// loadEnv loads variables from the named file into the environment. Variables
// already set are kept. A missing file is not an error.
func loadEnv(file string) error {
	if file == "" {
		return nil
	}
	err := godotenv.Load(file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load "+file)
	}
	return nil
}

func envUint(name string, v *uint64) error {
	s, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errors.Wrap(err, name)
	}
	*v = n
	return nil
}

func envString(name string, v *string) {
	if s, ok := os.LookupEnv(name); ok {
		*v = s
	}
}
