// internal/adapters/recipe/discovery.go
package recipe

import (
	"os"
	"path/filepath"
	"sort"

	"biorules/internal/core/domain"
	"biorules/internal/platform/errors"
)

// MetaFileName is the recipe metadata document looked up in each directory.
const MetaFileName = "meta.yaml"

// ListRecipes returns the names of the sub-directories of root, sorted.
func ListRecipes(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "recipes directory %s", root)
		}
		return nil, errors.Wrapf(err, "reading recipes directory %s", root)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isDir(root, e) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// FindMetaFile looks for meta.yaml in dir. If it is absent and dir holds
// exactly one sub-directory, the search descends into it, repeatedly.
func FindMetaFile(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, MetaFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", false
		}
		var only string
		count := 0
		for _, e := range entries {
			if isDir(dir, e) {
				only = e.Name()
				count++
			}
		}
		if count != 1 {
			return "", false
		}
		dir = filepath.Join(dir, only)
	}
}

// Discover resolves the metadata documents of the named recipe
// directories. Recipes without one are returned separately, by name.
func Discover(root string, names []string) (recipes []domain.Recipe, missing []string) {
	recipes = make([]domain.Recipe, 0, len(names))
	missing = []string{}
	for _, name := range names {
		path, ok := FindMetaFile(filepath.Join(root, name))
		if !ok {
			missing = append(missing, name)
			continue
		}
		recipes = append(recipes, domain.Recipe{ID: name, MetaPath: path})
	}
	return recipes, missing
}

// FileReader reads recipe documents from disk.
type FileReader struct{}

// NewFileReader creates a FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadRecipe implements ports.RecipeReader.
func (FileReader) ReadRecipe(r domain.Recipe) (string, error) {
	data, err := os.ReadFile(r.MetaPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// isDir follows symlinks, as recipe trees sometimes link variants.
func isDir(parent string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}
