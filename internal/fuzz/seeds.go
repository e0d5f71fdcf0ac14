package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"[project]\nname = \"demo\"\n",
	"[build-system]\nrequires=[\"hatchling\",\"hatch-vcs\"]\nbuild-backend=\"hatchling.build\"\n",
	"[project]\nname='a'\nrequires-python = \" >= 3.9\"\nclassifiers = [\n  \"License :: OSI Approved :: MIT License\", # why\n]\n",
	"[project]\ndependencies = [\"requests>=2.0 ; python_version<'3.10'\", \"A[x, y]\"]\n[project.optional-dependencies]\ntest = [\"pytest\"]\n",
	"[project.urls]\nhomepage = \"https://example.com\"\n[[project.authors]]\nname = \"x\"\n",
	"[tool.ruff]\nline-length = 120\nlint.select = [\"E\", \"F\"]\n[tool.ruff.lint.isort]\nknown-first-party = ['x']\n",
	"[a]\nb.c = 1\nd = { e = 2, f = [1, 2] }\n",
	"s = \"\"\"\nmulti\nline\"\"\"\nl = '''raw\\n'''\n",
	"d = 1979-05-27T07:32:00Z\nf = +inf\nn = -0x1F\n",
	"[a\n",
	"key = \n",
	"x = [1, 2\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.toml файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".toml" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
