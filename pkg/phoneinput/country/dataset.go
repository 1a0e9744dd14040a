package country

import (
	_ "embed"
	"io"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed countries.toml
var bundledDataset []byte

var (
	bundledOnce sync.Once
	bundled     *Directory
)

type dataset struct {
	Default   string          `toml:"default"`
	Countries []datasetRecord `toml:"country"`
}

type datasetRecord struct {
	Code        string `toml:"code"`
	Name        string `toml:"name"`
	CallingCode string `toml:"calling_code"`
	Flag        string `toml:"flag"`
}

// Bundled returns the directory shipped with the package.
// It is parsed on first use and shared afterwards.
func Bundled() *Directory {
	bundledOnce.Do(func() {
		d, err := parse(string(bundledDataset))
		if err != nil {
			panic(err)
		}
		bundled = d
	})
	return bundled
}

// Load reads a TOML dataset:
//
//	default = "US"
//
//	[[country]]
//	code = "US"
//	name = "United States"
//	calling_code = "1"
//	flag = "🇺🇸"
func Load(r io.Reader) (*Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConfigError{Reason: "read dataset", Err: err}
	}
	return parse(string(data))
}

// LoadFile reads a TOML dataset from path.
func LoadFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Reason: "open dataset", Code: path, Err: err}
	}
	defer f.Close()

	return Load(f)
}

func parse(data string) (*Directory, error) {
	var ds dataset
	md, err := toml.Decode(data, &ds)
	if err != nil {
		return nil, &ConfigError{Reason: "decode dataset", Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &ConfigError{Reason: "unknown dataset key", Code: undecoded[0].String()}
	}

	records := make([]Record, len(ds.Countries))
	for i, c := range ds.Countries {
		records[i] = Record(c)
	}

	return newDirectory(records, ds.Default)
}
