package series

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zubairmh/llm-chess/pkg/common"
)

// Directory is where series are saved, by name.
var Directory = common.SeriesDirectory

// Path returns the file the series named name is saved to.
func Path(name string) string {
	return filepath.Join(Directory, name+".yaml")
}

// Save writes the series' configuration and state to Path(series.Name).
func (series *Series) Save() error {
	data, err := yaml.Marshal(series.Config)
	if err != nil {
		return err
	}

	common.TryMkdir(Directory)
	return os.WriteFile(Path(series.Name), data, common.FilePermissions)
}

// Load reads a saved series by name, ready to be continued with Run.
func Load(name string) (*Series, error) {
	file, err := os.ReadFile(Path(name))
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return nil, err
	}

	return New(config)
}
