package rules

// Sequence is the fixed order in which rule sets run.
var Sequence = []RuleSet{BuildSystem, Project, Ruff}

// TableOrder is the global table priority list: packaging metadata, build
// backends, linters and formatters, test tools, task runners, release
// tooling, type checkers.
var TableOrder = []string{
	"",
	"build-system",
	"project",
	// build backends
	"tool.poetry",
	"tool.poetry-dynamic-versioning",
	"tool.pdm",
	"tool.setuptools",
	"tool.distutils",
	"tool.setuptools_scm",
	"tool.hatch",
	"tool.flit",
	"tool.scikit-build",
	"tool.meson-python",
	"tool.maturin",
	"tool.whey",
	"tool.py-build-cmake",
	"tool.sphinx-theme-builder",
	// builders
	"tool.cibuildwheel",
	// formatters and linters
	"tool.autopep8",
	"tool.black",
	"tool.ruff",
	"tool.isort",
	"tool.flake8",
	"tool.pycln",
	"tool.nbqa",
	"tool.pylint",
	"tool.repo-review",
	"tool.codespell",
	"tool.docformatter",
	"tool.pydoclint",
	"tool.tomlsort",
	"tool.check-manifest",
	"tool.check-sdist",
	"tool.check-wheel-contents",
	"tool.deptry",
	"tool.pyproject-fmt",
	// testing
	"tool.pytest",
	"tool.pytest_env",
	"tool.pytest-enabler",
	"tool.coverage",
	// runners
	"tool.doit",
	"tool.spin",
	"tool.tox",
	// releasers
	"tool.bumpversion",
	"tool.jupyter-releaser",
	"tool.tbump",
	"tool.towncrier",
	"tool.vendoring",
	// type checkers
	"tool.mypy",
	"tool.pyright",
}
