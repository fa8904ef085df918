package cli

import (
	"fmt"
	"path/filepath"
)

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // output path without extension
	output    string // explicit -o value, used as-is for a single format
	cacheHit  bool
	protect   string // input file that must not be overwritten
}

// writeArtifacts writes one file per format. A single format with an
// explicit output path is written to exactly that path.
func writeArtifacts(p artifactWriteParams) error {
	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s artifact was produced", format)
		}
		path := p.base + "." + format
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}

		if p.protect != "" && filepath.Clean(path) == filepath.Clean(p.protect) {
			return fmt.Errorf("refusing to overwrite input %s; pass -o", path)
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		_, werr := out.Write(data)
		cerr := out.Close()
		if werr != nil {
			return fmt.Errorf("write %s: %w", path, werr)
		}
		if cerr != nil {
			return fmt.Errorf("close %s: %w", path, cerr)
		}
		written = append(written, path)
	}

	if len(written) == 1 && written[0] == "-" {
		return nil
	}
	status := "Rendered"
	if p.cacheHit {
		status = "Rendered (" + iconCached + ")"
	}
	printSuccess("%s %d artifact(s)", status, len(written))
	for _, path := range written {
		printFile(path)
	}
	return nil
}
