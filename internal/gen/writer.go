package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ugc-mapper/internal/ugc"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultOutputName names the output file of an instance without a name.
const DefaultOutputName = "output"

const jsonExt = ".json"

// OutputFileName returns the file name for an instance: its name, or
// DefaultOutputName, with a ".json" suffix. Path separators are replaced
// so the name always stays inside the output directory.
func OutputFileName(in *ugc.Instance) string {
	name := ""
	if in != nil {
		name = strings.TrimSpace(in.Name)
	}

	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		name = DefaultOutputName
	}

	if !strings.EqualFold(filepath.Ext(name), jsonExt) {
		name += jsonExt
	}

	return name
}

// Encode renders an instance as indented JSON followed by a newline.
// Characters such as < and & are written as is.
func Encode(in *ugc.Instance) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(in); err != nil {
		return nil, fmt.Errorf("encoding instance: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes an instance into outputDir under OutputFileName and
// returns the written path. The directory is created if missing.
func WriteFile(in *ugc.Instance, outputDir string) (string, error) {
	data, err := Encode(in)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, OutputFileName(in))

	err = os.WriteFile(path, data, filePerm)
	if err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}

	return path, nil
}
