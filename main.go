package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/memoriqr/clearpng/clearpng"
	"github.com/unixpickle/essentials"
)

const dirEnvVar = "CLEARPNG_DIR"

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "",
		"directory holding the logo files (default $"+dirEnvVar+" or the current directory)")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Makes the near-white background of the logo PNGs transparent, in place.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	flag.Parse()

	if len(flag.Args()) != 0 {
		flag.Usage()
	}

	dir, err := resolveDir(dir)
	if err != nil {
		essentials.Die(err)
	}

	essentials.Must(clearpng.Run(clearpng.DefaultConfig(dir), os.Stdout))
}

// resolveDir picks the -dir flag, then $CLEARPNG_DIR, then
// the current directory, and checks that it is a directory.
func resolveDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "" {
		dir = os.Getenv(dirEnvVar)
	}
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}
	return dir, nil
}
