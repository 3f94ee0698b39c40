package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"elaris/internal/domain"
)

//go:embed locales/*.toml
var dictionaryFS embed.FS

type unmarshalFunc func(data []byte) (map[string]any, error)

var decoders = map[string]unmarshalFunc{
	".toml": decodeTOML,
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

// LoadEmbedded loads the dictionaries shipped with the binary.
func LoadEmbedded() (map[domain.Language]*Dictionary, error) {
	sub, err := fs.Sub(dictionaryFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS loads one dictionary per supported language from the root of fsys.
// Files are named <lang>.<ext> with ext one of .toml, .json, .yaml, .yml.
// Files for unsupported languages are skipped. Every supported language must
// be present exactly once.
func LoadFS(fsys fs.FS) (map[domain.Language]*Dictionary, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make(map[domain.Language]*Dictionary, len(domain.SupportedLanguages()))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		decode, ok := decoders[ext]
		if !ok {
			continue
		}
		lang, err := domain.ParseLanguage(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			log.Printf("i18n: skipping %s: %v", name, err)
			continue
		}
		if _, dup := out[lang]; dup {
			return nil, fmt.Errorf("load dictionary %s: %s defined more than once", name, lang)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", name, err)
		}
		root, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", name, err)
		}
		dict, err := NewDictionary(root)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", name, err)
		}
		out[lang] = dict
	}

	for _, lang := range domain.SupportedLanguages() {
		if _, ok := out[lang]; !ok {
			return nil, fmt.Errorf("load dictionaries: %s: %w", lang, domain.ErrDictionaryMissing)
		}
	}
	return out, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return root, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return root, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return root, nil
}
