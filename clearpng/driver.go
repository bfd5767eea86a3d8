package clearpng

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Config lists the files that Run converts.
type Config struct {
	// Dir is the directory that file names are resolved in.
	Dir string

	// Required is always converted, so a missing file is an
	// error.
	Required string

	// Optional files are converted in order, but skipped
	// when they do not exist.
	Optional []string
}

// DefaultConfig returns the logo files of the site's
// public directory, resolved in dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Dir:      dir,
		Required: "logo-badge.png",
		Optional: []string{"logo-stacked.png", "logo.png"},
	}
}

// Run converts the files listed in c and reports each one
// to w, followed by a final "Done!" line.
//
// The first error stops the run, leaving any later files
// untouched.
func Run(c *Config, w io.Writer) error {
	if c == nil {
		c = DefaultConfig(".")
	}
	if err := runFile(c.Dir, c.Required, w); err != nil {
		return err
	}
	for _, name := range c.Optional {
		if _, err := os.Stat(filepath.Join(c.Dir, name)); os.IsNotExist(err) {
			continue
		} else if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := runFile(c.Dir, name, w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "Done!")
	return err
}

func runFile(dir, name string, w io.Writer) error {
	size, cleared, err := convertFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "%s: made background transparent (%s pixels, %s, %d bytes)\n",
		name, humanize.Comma(int64(cleared)), humanize.Bytes(uint64(size)), size)
	return err
}
